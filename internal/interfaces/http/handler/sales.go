package handler

import (
	"strconv"

	salesapp "github.com/farmstore/backend/internal/application/sales"
	"github.com/farmstore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// SalesHandler handles checkout draft and sale history endpoints
type SalesHandler struct {
	BaseHandler
	salesService *salesapp.SalesService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(salesService *salesapp.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// AddSaleLineRequest is one checkout line to merge into the draft
type AddSaleLineRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  string `json:"quantity" binding:"required"`
}

// historyQuery is the sale history query string
type historyQuery struct {
	Period    string `form:"period" binding:"omitempty,oneof=today yesterday week month custom"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	ProductID string `form:"product_id" binding:"omitempty,uuid"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AddLine merges a checkout line into the session draft
func (h *SalesHandler) AddLine(c *gin.Context) {
	var req AddSaleLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	draft, err := h.salesService.AddLine(c.Request.Context(), middleware.GetSessionID(c),
		salesapp.AddSaleLineRequest{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, draft)
}

// RemoveLine drops the draft line at the given index
func (h *SalesHandler) RemoveLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.BadRequest(c, "Invalid line index")
		return
	}

	draft, err := h.salesService.RemoveLine(c.Request.Context(), middleware.GetSessionID(c), index)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, draft)
}

// GetDraft returns the session's checkout draft
func (h *SalesHandler) GetDraft(c *gin.Context) {
	draft, err := h.salesService.GetDraft(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, draft)
}

// ClearDraft discards the session's checkout draft
func (h *SalesHandler) ClearDraft(c *gin.Context) {
	if err := h.salesService.ClearDraft(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Confirm allocates stock FIFO and records the sale
func (h *SalesHandler) Confirm(c *gin.Context) {
	sale, err := h.salesService.Confirm(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// History lists confirmed sales for a period
func (h *SalesHandler) History(c *gin.Context) {
	var query historyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sales, err := h.salesService.History(c.Request.Context(), salesapp.HistoryRequest{
		Period:    query.Period,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		ProductID: query.ProductID,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sales)
}
