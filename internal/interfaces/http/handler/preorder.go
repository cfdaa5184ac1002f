package handler

import (
	preorderapp "github.com/farmstore/backend/internal/application/preorder"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/interfaces/http/dto"
	"github.com/farmstore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PreorderHandler handles pickup preorder endpoints
type PreorderHandler struct {
	BaseHandler
	preorderService *preorderapp.Service
}

// NewPreorderHandler creates a new PreorderHandler
func NewPreorderHandler(preorderService *preorderapp.Service) *PreorderHandler {
	return &PreorderHandler{preorderService: preorderService}
}

// CancelPreorderRequest carries an optional cancellation reason
type CancelPreorderRequest struct {
	Reason string `json:"reason"`
}

// preorderListQuery is the staff preorder listing query string
type preorderListQuery struct {
	dto.ListRequest
	Status string `form:"status" binding:"omitempty,oneof=open completed cancelled"`
}

// Create places a pickup preorder for the authenticated user
func (h *PreorderHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req preorderapp.CreatePreorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.preorderService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// Get returns one preorder. Customers can only see their own.
func (h *PreorderHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid preorder ID")
		return
	}

	order, err := h.preorderService.GetByID(c.Request.Context(), id, userID, middleware.IsAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// ListMine lists the authenticated user's preorders
func (h *PreorderHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query dto.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, err := h.preorderService.ListMine(c.Request.Context(), userID, shared.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// ListAll lists preorders for staff, optionally filtered by status
func (h *PreorderHandler) ListAll(c *gin.Context) {
	var query preorderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, err := h.preorderService.ListAll(c.Request.Context(), query.Status, shared.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// Complete marks an open preorder as picked up
func (h *PreorderHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid preorder ID")
		return
	}

	order, err := h.preorderService.Complete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel cancels an open preorder. Customers can only cancel their own.
func (h *PreorderHandler) Cancel(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid preorder ID")
		return
	}

	var req CancelPreorderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.preorderService.Cancel(c.Request.Context(), id, userID, middleware.IsAdmin(c), req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
