package booking

import (
	"fmt"
	"time"

	"github.com/rentops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// Blocks reports whether a booking in this status occupies the vehicle.
// Completed and cancelled bookings never conflict with new requests.
func (s BookingStatus) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInProgress
}

// IsTerminal returns true if the booking is in a terminal state
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// BlockingStatuses returns the statuses that occupy a vehicle
func BlockingStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusConfirmed, StatusInProgress}
}

// Booking is a reservation of a vehicle over a concrete period
type Booking struct {
	shared.BaseAggregateRoot
	VehicleID     uuid.UUID       `json:"vehicle_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	PickupAt      time.Time       `json:"pickup_at"`
	ReturnAt      time.Time       `json:"return_at"`
	Status        BookingStatus   `json:"status"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Deposit       decimal.Decimal `json:"deposit"`
	ContractKey   string          `json:"contract_key"`
	Notes         string          `json:"notes"`
	CancelledAt   *time.Time      `json:"cancelled_at"`
	CancelReason  string          `json:"cancel_reason"`
}

// NewBooking creates a pending booking for the given vehicle and period
func NewBooking(vehicleID uuid.UUID, customerName string, period DateRange, quote Quote) (*Booking, error) {
	if vehicleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VEHICLE", "Vehicle ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}
	if len(customerName) > 200 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot exceed 200 characters")
	}

	return &Booking{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VehicleID:         vehicleID,
		CustomerName:      customerName,
		PickupAt:          period.Start,
		ReturnAt:          period.End,
		Status:            StatusPending,
		TotalPrice:        quote.Total.Amount(),
		Deposit:           quote.Deposit.Amount(),
	}, nil
}

// Period returns the booking's rental period
func (b *Booking) Period() DateRange {
	return DateRange{Start: b.PickupAt, End: b.ReturnAt}
}

// Confirm moves a pending booking to confirmed
func (b *Booking) Confirm() error {
	if b.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot confirm booking in %s status", b.Status))
	}
	b.Status = StatusConfirmed
	b.Touch()
	return nil
}

// Start marks the booking as in progress (vehicle picked up)
func (b *Booking) Start() error {
	if b.Status != StatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot start booking in %s status", b.Status))
	}
	b.Status = StatusInProgress
	b.Touch()
	return nil
}

// Complete marks the booking as completed (vehicle returned)
func (b *Booking) Complete() error {
	if b.Status != StatusInProgress {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot complete booking in %s status", b.Status))
	}
	b.Status = StatusCompleted
	b.Touch()
	return nil
}

// Cancel cancels a booking that has not started yet
func (b *Booking) Cancel(reason string) error {
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel booking in %s status", b.Status))
	}
	now := time.Now()
	b.Status = StatusCancelled
	b.CancelledAt = &now
	b.CancelReason = reason
	b.Touch()
	return nil
}

// Reschedule replaces the booking period and repriced totals. The caller is
// responsible for re-checking availability before persisting.
func (b *Booking) Reschedule(period DateRange, quote Quote) error {
	if b.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot reschedule booking in %s status", b.Status))
	}
	b.PickupAt = period.Start
	b.ReturnAt = period.End
	b.TotalPrice = quote.Total.Amount()
	b.Deposit = quote.Deposit.Amount()
	b.Touch()
	return nil
}

// SetContactDetails sets the optional customer contact fields
func (b *Booking) SetContactDetails(email, phone string) {
	b.CustomerEmail = email
	b.CustomerPhone = phone
	b.Touch()
}

// AttachContract records the object-storage key of the generated contract PDF
func (b *Booking) AttachContract(objectKey string) {
	b.ContractKey = objectKey
	b.Touch()
}
