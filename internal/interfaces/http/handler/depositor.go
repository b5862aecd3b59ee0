package handler

import (
	partnerapp "github.com/rentops/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// DepositorHandler handles depositor endpoints
type DepositorHandler struct {
	BaseHandler
	depositorService *partnerapp.DepositorService
}

// NewDepositorHandler creates a new DepositorHandler
func NewDepositorHandler(depositorService *partnerapp.DepositorService) *DepositorHandler {
	return &DepositorHandler{depositorService: depositorService}
}

// RegisterRoutes registers depositor endpoints
func (h *DepositorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	depositors := rg.Group("/depositors")
	{
		depositors.POST("", h.Create)
		depositors.GET("", h.List)
		depositors.GET("/:id", h.GetByID)
		depositors.PUT("/:id", h.Update)
		depositors.POST("/:id/deactivate", h.Deactivate)
		depositors.DELETE("/:id", h.Delete)
	}
}

// Create registers a new depositor
func (h *DepositorHandler) Create(c *gin.Context) {
	var req partnerapp.CreateDepositorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.depositorService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns depositors matching the filter
func (h *DepositorHandler) List(c *gin.Context) {
	var filter partnerapp.DepositorListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	depositors, total, err := h.depositorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, depositors, total, filter.Page, filter.PageSize)
}

// GetByID returns one depositor
func (h *DepositorHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.depositorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update modifies a depositor's contact details
func (h *DepositorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req partnerapp.UpdateDepositorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.depositorService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate marks a depositor as inactive
func (h *DepositorHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.depositorService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a depositor
func (h *DepositorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.depositorService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
