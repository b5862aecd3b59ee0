package models

import (
	"time"

	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleModel is the GORM model for vehicles
type VehicleModel struct {
	AggregateModel
	Plate             string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	Make              string           `gorm:"type:varchar(100)"`
	Model             string           `gorm:"type:varchar(100)"`
	Year              int              `gorm:"not null;default:0"`
	DailyRate         decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Status            string           `gorm:"type:varchar(20);not null;index"`
	Ownership         string           `gorm:"type:varchar(20);not null;index"`
	CommissionPercent *decimal.Decimal `gorm:"type:decimal(5,2)"`
	MonthlyFixedCosts *decimal.Decimal `gorm:"type:decimal(12,2)"`
	DepositorID       *uuid.UUID       `gorm:"type:uuid;index"`
	Notes             string           `gorm:"type:text"`
}

// TableName specifies the table name for VehicleModel
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts VehicleModel to domain Vehicle
func (m *VehicleModel) ToDomain() *fleet.Vehicle {
	return &fleet.Vehicle{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Plate:             m.Plate,
		Make:              m.Make,
		Model:             m.Model,
		Year:              m.Year,
		DailyRate:         m.DailyRate,
		Status:            fleet.VehicleStatus(m.Status),
		Ownership:         fleet.OwnershipType(m.Ownership),
		CommissionPercent: m.CommissionPercent,
		MonthlyFixedCosts: m.MonthlyFixedCosts,
		DepositorID:       m.DepositorID,
		Notes:             m.Notes,
	}
}

// VehicleModelFromDomain converts domain Vehicle to VehicleModel
func VehicleModelFromDomain(v *fleet.Vehicle) *VehicleModel {
	m := &VehicleModel{
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
	}
	m.FromDomainAggregateRoot(v.BaseAggregateRoot)
	return m
}

// MaintenanceRecordModel is the GORM model for maintenance records
type MaintenanceRecordModel struct {
	BaseModel
	VehicleID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Description string          `gorm:"type:text;not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PerformedAt time.Time       `gorm:"not null;index"`
	OdometerKM  *int            `gorm:""`
}

// TableName specifies the table name for MaintenanceRecordModel
func (MaintenanceRecordModel) TableName() string {
	return "maintenance_records"
}

// ToDomain converts MaintenanceRecordModel to domain MaintenanceRecord
func (m *MaintenanceRecordModel) ToDomain() *fleet.MaintenanceRecord {
	return &fleet.MaintenanceRecord{
		BaseEntity:  m.BaseModel.ToDomain(),
		VehicleID:   m.VehicleID,
		Type:        fleet.MaintenanceType(m.Type),
		Description: m.Description,
		Cost:        m.Cost,
		PerformedAt: m.PerformedAt,
		OdometerKM:  m.OdometerKM,
	}
}

// MaintenanceRecordModelFromDomain converts domain MaintenanceRecord to MaintenanceRecordModel
func MaintenanceRecordModelFromDomain(r *fleet.MaintenanceRecord) *MaintenanceRecordModel {
	m := &MaintenanceRecordModel{
		VehicleID:   r.VehicleID,
		Type:        string(r.Type),
		Description: r.Description,
		Cost:        r.Cost,
		PerformedAt: r.PerformedAt,
		OdometerKM:  r.OdometerKM,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
