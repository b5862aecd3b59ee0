package fleet

import (
	"time"

	"github.com/rentops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaintenanceType categorizes maintenance interventions
type MaintenanceType string

const (
	MaintenanceService    MaintenanceType = "SERVICE"
	MaintenanceRepair     MaintenanceType = "REPAIR"
	MaintenanceInspection MaintenanceType = "INSPECTION"
	MaintenanceTires      MaintenanceType = "TIRES"
	MaintenanceOther      MaintenanceType = "OTHER"
)

// IsValid checks if the type is a valid MaintenanceType
func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenanceService, MaintenanceRepair, MaintenanceInspection, MaintenanceTires, MaintenanceOther:
		return true
	}
	return false
}

// MaintenanceRecord tracks a maintenance intervention on a vehicle
type MaintenanceRecord struct {
	shared.BaseEntity
	VehicleID   uuid.UUID       `json:"vehicle_id"`
	Type        MaintenanceType `json:"type"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	PerformedAt time.Time       `json:"performed_at"`
	OdometerKM  *int            `json:"odometer_km"`
}

// NewMaintenanceRecord creates a maintenance record for a vehicle
func NewMaintenanceRecord(vehicleID uuid.UUID, mType MaintenanceType, description string, cost decimal.Decimal, performedAt time.Time) (*MaintenanceRecord, error) {
	if vehicleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VEHICLE", "Vehicle ID cannot be empty")
	}
	if !mType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MAINTENANCE_TYPE", "Maintenance type is not valid")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}
	if performedAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Performed-at date is required")
	}

	return &MaintenanceRecord{
		BaseEntity:  shared.NewBaseEntity(),
		VehicleID:   vehicleID,
		Type:        mType,
		Description: description,
		Cost:        cost,
		PerformedAt: performedAt,
	}, nil
}

// SetOdometer records the odometer reading at the time of the intervention
func (m *MaintenanceRecord) SetOdometer(km int) error {
	if km < 0 {
		return shared.NewDomainError("INVALID_ODOMETER", "Odometer reading cannot be negative")
	}
	m.OdometerKM = &km
	m.Touch()
	return nil
}
