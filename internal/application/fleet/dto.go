package fleet

import (
	"time"

	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Vehicle DTOs
// =============================================================================

// CreateVehicleRequest represents a request to register a new vehicle
type CreateVehicleRequest struct {
	Plate     string          `json:"plate" binding:"required,min=1,max=20"`
	Make      string          `json:"make" binding:"max=100"`
	Model     string          `json:"model" binding:"max=100"`
	Year      int             `json:"year" binding:"omitempty,min=1950,max=2100"`
	DailyRate decimal.Decimal `json:"daily_rate" binding:"required"`
	Ownership string          `json:"ownership" binding:"required,oneof=OWNED RENTING COMMISSION"`
	Notes     string          `json:"notes"`
}

// UpdateVehicleRequest represents a request to update a vehicle
type UpdateVehicleRequest struct {
	Make      *string          `json:"make" binding:"omitempty,max=100"`
	Model     *string          `json:"model" binding:"omitempty,max=100"`
	Year      *int             `json:"year" binding:"omitempty,min=1950,max=2100"`
	DailyRate *decimal.Decimal `json:"daily_rate"`
	Notes     *string          `json:"notes"`
}

// SetCommissionTermsRequest configures a vehicle's commission split
type SetCommissionTermsRequest struct {
	DepositorID       *uuid.UUID       `json:"depositor_id"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
	MonthlyFixedCosts *decimal.Decimal `json:"monthly_fixed_costs"`
}

// VehicleResponse represents a vehicle in API responses
type VehicleResponse struct {
	ID                uuid.UUID        `json:"id"`
	Plate             string           `json:"plate"`
	Make              string           `json:"make"`
	Model             string           `json:"model"`
	Year              int              `json:"year"`
	DailyRate         decimal.Decimal  `json:"daily_rate"`
	Status            string           `json:"status"`
	Ownership         string           `json:"ownership"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	MonthlyFixedCosts *decimal.Decimal `json:"monthly_fixed_costs,omitempty"`
	DepositorID       *uuid.UUID       `json:"depositor_id,omitempty"`
	Notes             string           `json:"notes"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Version           int              `json:"version"`
}

// VehicleListFilter represents filter options for the vehicle list
type VehicleListFilter struct {
	Search    string `form:"search"`
	Status    string `form:"status" binding:"omitempty,oneof=AVAILABLE UNAVAILABLE ARCHIVED"`
	Ownership string `form:"ownership" binding:"omitempty,oneof=OWNED RENTING COMMISSION"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ToVehicleResponse converts a domain Vehicle to a VehicleResponse
func ToVehicleResponse(v *fleet.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                v.ID,
		Plate:             v.Plate,
		Make:              v.Make,
		Model:             v.Model,
		Year:              v.Year,
		DailyRate:         v.DailyRate,
		Status:            v.Status.String(),
		Ownership:         v.Ownership.String(),
		CommissionPercent: v.CommissionPercent,
		MonthlyFixedCosts: v.MonthlyFixedCosts,
		DepositorID:       v.DepositorID,
		Notes:             v.Notes,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
		Version:           v.Version,
	}
}

// =============================================================================
// Maintenance DTOs
// =============================================================================

// CreateMaintenanceRequest represents a request to log a maintenance intervention
type CreateMaintenanceRequest struct {
	Type        string          `json:"type" binding:"required,oneof=SERVICE REPAIR INSPECTION TIRES OTHER"`
	Description string          `json:"description" binding:"required,min=1"`
	Cost        decimal.Decimal `json:"cost" binding:"required"`
	PerformedAt time.Time       `json:"performed_at" binding:"required"`
	OdometerKM  *int            `json:"odometer_km"`
}

// MaintenanceResponse represents a maintenance record in API responses
type MaintenanceResponse struct {
	ID          uuid.UUID       `json:"id"`
	VehicleID   uuid.UUID       `json:"vehicle_id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	PerformedAt time.Time       `json:"performed_at"`
	OdometerKM  *int            `json:"odometer_km,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToMaintenanceResponse converts a domain MaintenanceRecord to a MaintenanceResponse
func ToMaintenanceResponse(r *fleet.MaintenanceRecord) MaintenanceResponse {
	return MaintenanceResponse{
		ID:          r.ID,
		VehicleID:   r.VehicleID,
		Type:        string(r.Type),
		Description: r.Description,
		Cost:        r.Cost,
		PerformedAt: r.PerformedAt,
		OdometerKM:  r.OdometerKM,
		CreatedAt:   r.CreatedAt,
	}
}
