package handler

import (
	inventoryapp "github.com/farmstore/backend/internal/application/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// StockHandler handles batch listing and availability endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// stockListQuery is the batch listing query string
type stockListQuery struct {
	dto.ListRequest
	Status string `form:"status" binding:"omitempty,oneof=active expiring expired"`
}

// ListBatches lists every batch, optionally narrowed to an expiry status
func (h *StockHandler) ListBatches(c *gin.Context) {
	var query stockListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batches, err := h.stockService.ListBatches(c.Request.Context(), query.Status, shared.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batches)
}

// ListProductBatches lists one product's batches FIFO ordered
func (h *StockHandler) ListProductBatches(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	status := c.Query("status")
	batches, err := h.stockService.ListProductBatches(c.Request.Context(), id, status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batches)
}

// ProductAvailability returns the total sellable quantity for a product
func (h *StockHandler) ProductAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	available, err := h.stockService.ProductAvailability(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"product_id": id.String(), "available": available})
}
