package fleet

import (
	"fmt"

	"github.com/rentops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleStatus represents the fleet availability state of a vehicle
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusUnavailable VehicleStatus = "UNAVAILABLE"
	VehicleStatusArchived    VehicleStatus = "ARCHIVED"
)

// IsValid checks if the status is a valid VehicleStatus
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusUnavailable, VehicleStatusArchived:
		return true
	}
	return false
}

// String returns the string representation of VehicleStatus
func (s VehicleStatus) String() string {
	return string(s)
}

// OwnershipType describes how the operator holds a vehicle
type OwnershipType string

const (
	// OwnershipOwned means the operator owns the vehicle outright
	OwnershipOwned OwnershipType = "OWNED"
	// OwnershipRenting means the operator rents the vehicle from a third party
	OwnershipRenting OwnershipType = "RENTING"
	// OwnershipCommission means net profit is split with an external depositor
	OwnershipCommission OwnershipType = "COMMISSION"
)

// IsValid checks if the type is a valid OwnershipType
func (o OwnershipType) IsValid() bool {
	switch o {
	case OwnershipOwned, OwnershipRenting, OwnershipCommission:
		return true
	}
	return false
}

// String returns the string representation of OwnershipType
func (o OwnershipType) String() string {
	return string(o)
}

// Vehicle is a rentable fleet unit aggregate root
type Vehicle struct {
	shared.BaseAggregateRoot
	Plate             string           `json:"plate"`
	Make              string           `json:"make"`
	Model             string           `json:"model"`
	Year              int              `json:"year"`
	DailyRate         decimal.Decimal  `json:"daily_rate"`
	Status            VehicleStatus    `json:"status"`
	Ownership         OwnershipType    `json:"ownership"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
	MonthlyFixedCosts *decimal.Decimal `json:"monthly_fixed_costs"`
	DepositorID       *uuid.UUID       `json:"depositor_id"`
	Notes             string           `json:"notes"`
}

// NewVehicle creates a new available vehicle
func NewVehicle(plate, make, model string, year int, dailyRate decimal.Decimal, ownership OwnershipType) (*Vehicle, error) {
	if plate == "" {
		return nil, shared.NewDomainError("INVALID_PLATE", "Registration plate cannot be empty")
	}
	if len(plate) > 20 {
		return nil, shared.NewDomainError("INVALID_PLATE", "Registration plate cannot exceed 20 characters")
	}
	if dailyRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Daily rate cannot be negative")
	}
	if !ownership.IsValid() {
		return nil, shared.NewDomainError("INVALID_OWNERSHIP", "Ownership type is not valid")
	}

	return &Vehicle{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Plate:             plate,
		Make:              make,
		Model:             model,
		Year:              year,
		DailyRate:         dailyRate,
		Status:            VehicleStatusAvailable,
		Ownership:         ownership,
	}, nil
}

// Update replaces the vehicle's descriptive fields and daily rate
func (v *Vehicle) Update(make, model string, year int, dailyRate decimal.Decimal, notes string) error {
	if v.Status == VehicleStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Cannot update an archived vehicle")
	}
	if dailyRate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Daily rate cannot be negative")
	}
	v.Make = make
	v.Model = model
	v.Year = year
	v.DailyRate = dailyRate
	v.Notes = notes
	v.Touch()
	return nil
}

// SetCommissionTerms configures the commission split and fixed costs.
// A commission percentage is only meaningful for COMMISSION vehicles and
// must lie in [0, 100].
func (v *Vehicle) SetCommissionTerms(depositorID *uuid.UUID, percent *decimal.Decimal, monthlyFixedCosts *decimal.Decimal) error {
	if percent != nil {
		if v.Ownership != OwnershipCommission {
			return shared.NewDomainError("INVALID_OWNERSHIP", fmt.Sprintf("Commission percentage is not applicable to %s vehicles", v.Ownership))
		}
		if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
			return shared.NewDomainError("INVALID_COMMISSION", "Commission percentage must be between 0 and 100")
		}
	}
	if monthlyFixedCosts != nil && monthlyFixedCosts.IsNegative() {
		return shared.NewDomainError("INVALID_COSTS", "Monthly fixed costs cannot be negative")
	}
	v.DepositorID = depositorID
	v.CommissionPercent = percent
	v.MonthlyFixedCosts = monthlyFixedCosts
	v.Touch()
	return nil
}

// MarkUnavailable takes the vehicle out of the bookable fleet
func (v *Vehicle) MarkUnavailable() error {
	if v.Status == VehicleStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Cannot change status of an archived vehicle")
	}
	v.Status = VehicleStatusUnavailable
	v.Touch()
	return nil
}

// MarkAvailable returns the vehicle to the bookable fleet
func (v *Vehicle) MarkAvailable() error {
	if v.Status == VehicleStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Cannot change status of an archived vehicle")
	}
	v.Status = VehicleStatusAvailable
	v.Touch()
	return nil
}

// Archive permanently retires the vehicle from the fleet
func (v *Vehicle) Archive() error {
	if v.Status == VehicleStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Vehicle is already archived")
	}
	v.Status = VehicleStatusArchived
	v.Touch()
	return nil
}

// IsBookable reports whether new bookings may be created for the vehicle
func (v *Vehicle) IsBookable() bool {
	return v.Status == VehicleStatusAvailable
}

// EligibleForCommissionReport reports whether the vehicle participates in
// commission reporting: ownership must be COMMISSION and a depositor must be
// assigned. Vehicles without a counter-party are excluded as a business rule,
// not an error.
func (v *Vehicle) EligibleForCommissionReport() bool {
	return v.Ownership == OwnershipCommission && v.DepositorID != nil
}

// EffectiveCommissionPercent returns the configured commission percentage,
// treating an unset value as zero.
func (v *Vehicle) EffectiveCommissionPercent() decimal.Decimal {
	if v.CommissionPercent == nil {
		return decimal.Zero
	}
	return *v.CommissionPercent
}

// EffectiveMonthlyFixedCosts returns the configured fixed costs, treating an
// unset value as zero.
func (v *Vehicle) EffectiveMonthlyFixedCosts() decimal.Decimal {
	if v.MonthlyFixedCosts == nil {
		return decimal.Zero
	}
	return *v.MonthlyFixedCosts
}
