package handler

import (
	inventoryapp "github.com/farmstore/backend/internal/application/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WriteOffHandler handles write-off endpoints
type WriteOffHandler struct {
	BaseHandler
	writeOffService *inventoryapp.WriteOffService
}

// NewWriteOffHandler creates a new WriteOffHandler
func NewWriteOffHandler(writeOffService *inventoryapp.WriteOffService) *WriteOffHandler {
	return &WriteOffHandler{writeOffService: writeOffService}
}

// WriteOffBatchRequest removes one batch from stock with an audit reason
type WriteOffBatchRequest struct {
	BatchID string `json:"batch_id" binding:"required,uuid"`
	Reason  string `json:"reason" binding:"required"`
}

// writeOffListQuery is the write-off listing query string
type writeOffListQuery struct {
	dto.ListRequest
	ProductID string `form:"product_id" binding:"omitempty,uuid"`
}

// Create writes off a whole batch
func (h *WriteOffHandler) Create(c *gin.Context) {
	var req WriteOffBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		h.BadRequest(c, "Invalid batch ID")
		return
	}

	writeOff, err := h.writeOffService.WriteOffBatch(c.Request.Context(), batchID, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, writeOff)
}

// List returns write-off records, newest first
func (h *WriteOffHandler) List(c *gin.Context) {
	var query writeOffListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.ProductID != "" {
		productID, err := uuid.Parse(query.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product ID")
			return
		}
		filter.Filters = map[string]any{"product_id": productID}
	}

	writeOffs, err := h.writeOffService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, writeOffs)
}
