package handler

import (
	"strconv"

	inventoryapp "github.com/farmstore/backend/internal/application/inventory"
	"github.com/farmstore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// SupplyHandler handles intake draft endpoints
type SupplyHandler struct {
	BaseHandler
	supplyService *inventoryapp.SupplyService
}

// NewSupplyHandler creates a new SupplyHandler
func NewSupplyHandler(supplyService *inventoryapp.SupplyService) *SupplyHandler {
	return &SupplyHandler{supplyService: supplyService}
}

// AddSupplyLineRequest is one intake line to add to the draft
type AddSupplyLineRequest struct {
	ProductID  string `json:"product_id" binding:"required,uuid"`
	Quantity   string `json:"quantity" binding:"required"`
	ProducedAt string `json:"produced_at"` // 2006-01-02, empty means today
}

// AddLine adds an intake line to the session draft
func (h *SupplyHandler) AddLine(c *gin.Context) {
	var req AddSupplyLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	draft, err := h.supplyService.AddLine(c.Request.Context(), middleware.GetSessionID(c),
		inventoryapp.AddSupplyLineRequest{
			ProductID:  req.ProductID,
			Quantity:   req.Quantity,
			ProducedAt: req.ProducedAt,
		})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, draft)
}

// RemoveLine drops the draft line at the given index
func (h *SupplyHandler) RemoveLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.BadRequest(c, "Invalid line index")
		return
	}

	draft, err := h.supplyService.RemoveLine(c.Request.Context(), middleware.GetSessionID(c), index)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, draft)
}

// GetDraft returns the session's intake draft
func (h *SupplyHandler) GetDraft(c *gin.Context) {
	draft, err := h.supplyService.GetDraft(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, draft)
}

// ClearDraft discards the session's intake draft
func (h *SupplyHandler) ClearDraft(c *gin.Context) {
	if err := h.supplyService.ClearDraft(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Confirm turns the draft into persisted batches
func (h *SupplyHandler) Confirm(c *gin.Context) {
	batches, err := h.supplyService.Confirm(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, batches)
}
