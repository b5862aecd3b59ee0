package handler

import (
	fleetapp "github.com/rentops/backend/internal/application/fleet"
	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/gin-gonic/gin"
)

// VehicleHandler handles fleet vehicle endpoints
type VehicleHandler struct {
	BaseHandler
	vehicleService     *fleetapp.VehicleService
	maintenanceService *fleetapp.MaintenanceService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(vehicleService *fleetapp.VehicleService, maintenanceService *fleetapp.MaintenanceService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService:     vehicleService,
		maintenanceService: maintenanceService,
	}
}

// SetStatusRequest changes a vehicle's availability status
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=AVAILABLE UNAVAILABLE ARCHIVED"`
}

// RegisterRoutes registers vehicle endpoints
func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.Create)
		vehicles.GET("", h.List)
		vehicles.GET("/:id", h.GetByID)
		vehicles.PUT("/:id", h.Update)
		vehicles.DELETE("/:id", h.Delete)
		vehicles.PUT("/:id/status", h.SetStatus)
		vehicles.PUT("/:id/commission-terms", h.SetCommissionTerms)
		vehicles.POST("/:id/maintenance", h.CreateMaintenance)
		vehicles.GET("/:id/maintenance", h.ListMaintenance)
	}
	rg.DELETE("/maintenance/:id", h.DeleteMaintenance)
}

// Create registers a new vehicle
func (h *VehicleHandler) Create(c *gin.Context) {
	var req fleetapp.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns vehicles matching the filter
func (h *VehicleHandler) List(c *gin.Context) {
	var filter fleetapp.VehicleListFilter
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

	vehicles, total, err := h.vehicleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, vehicles, total, filter.Page, filter.PageSize)
}

// GetByID returns one vehicle
func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update modifies a vehicle
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req fleetapp.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.vehicleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a vehicle
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SetStatus changes the vehicle's availability status
func (h *VehicleHandler) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.vehicleService.SetStatus(c.Request.Context(), id, fleet.VehicleStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetCommissionTerms sets the commission terms of a depositor-owned vehicle
func (h *VehicleHandler) SetCommissionTerms(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req fleetapp.SetCommissionTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.vehicleService.SetCommissionTerms(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateMaintenance adds a maintenance record to a vehicle
func (h *VehicleHandler) CreateMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req fleetapp.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.maintenanceService.Create(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListMaintenance returns a vehicle's maintenance history
func (h *VehicleHandler) ListMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	records, err := h.maintenanceService.ListByVehicle(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// DeleteMaintenance removes a maintenance record
func (h *VehicleHandler) DeleteMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.maintenanceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
