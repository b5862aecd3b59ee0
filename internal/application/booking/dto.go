package booking

import (
	"time"

	"github.com/rentops/backend/internal/domain/booking"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AvailabilityRequest asks whether a vehicle is free for a period.
// ExcludeBookingID skips one booking in the conflict scan so that re-checking
// an existing booking's own dates never reports it as its own conflict.
type AvailabilityRequest struct {
	VehicleID        uuid.UUID  `form:"vehicle_id" json:"vehicle_id" binding:"required"`
	PickupAt         time.Time  `form:"pickup_at" json:"pickup_at" binding:"required"`
	ReturnAt         time.Time  `form:"return_at" json:"return_at" binding:"required"`
	ExcludeBookingID *uuid.UUID `form:"exclude_booking_id" json:"exclude_booking_id,omitempty"`
}

// AvailabilityResponse reports the outcome of an availability check
type AvailabilityResponse struct {
	Available            bool       `json:"available"`
	ConflictingBookingID *uuid.UUID `json:"conflicting_booking_id,omitempty"`
}

// QuoteRequest asks for the price of a vehicle over a period
type QuoteRequest struct {
	VehicleID uuid.UUID `form:"vehicle_id" json:"vehicle_id" binding:"required"`
	PickupAt  time.Time `form:"pickup_at" json:"pickup_at" binding:"required"`
	ReturnAt  time.Time `form:"return_at" json:"return_at" binding:"required"`
}

// QuoteResponse is the computed price for a rental period
type QuoteResponse struct {
	VehicleID  uuid.UUID       `json:"vehicle_id"`
	Days       int             `json:"days"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Deposit    decimal.Decimal `json:"deposit"`
	Currency   string          `json:"currency"`
}

// CreateBookingRequest represents a request to create a booking
type CreateBookingRequest struct {
	VehicleID      uuid.UUID `json:"vehicle_id" binding:"required"`
	CustomerName   string    `json:"customer_name" binding:"required,min=1,max=200"`
	CustomerEmail  string    `json:"customer_email" binding:"omitempty,email,max=200"`
	CustomerPhone  string    `json:"customer_phone" binding:"max=50"`
	PickupAt       time.Time `json:"pickup_at" binding:"required"`
	ReturnAt       time.Time `json:"return_at" binding:"required"`
	Notes          string    `json:"notes"`
	IdempotencyKey string    `json:"-"` // From the Idempotency-Key header, not the body
}

// RescheduleBookingRequest moves a booking to a new period
type RescheduleBookingRequest struct {
	PickupAt time.Time `json:"pickup_at" binding:"required"`
	ReturnAt time.Time `json:"return_at" binding:"required"`
}

// CancelBookingRequest cancels a booking with an optional reason
type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID            uuid.UUID       `json:"id"`
	VehicleID     uuid.UUID       `json:"vehicle_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	PickupAt      time.Time       `json:"pickup_at"`
	ReturnAt      time.Time       `json:"return_at"`
	Status        string          `json:"status"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Deposit       decimal.Decimal `json:"deposit"`
	ContractKey   string          `json:"contract_key,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	CancelReason  string          `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// BookingListFilter represents filter options for the booking list
type BookingListFilter struct {
	VehicleID *uuid.UUID `form:"vehicle_id"`
	Status    string     `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
	From      *time.Time `form:"from"`
	To        *time.Time `form:"to"`
	Search    string     `form:"search"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ToBookingResponse converts a domain Booking to a BookingResponse
func ToBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		VehicleID:     b.VehicleID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		PickupAt:      b.PickupAt,
		ReturnAt:      b.ReturnAt,
		Status:        b.Status.String(),
		TotalPrice:    b.TotalPrice,
		Deposit:       b.Deposit,
		ContractKey:   b.ContractKey,
		Notes:         b.Notes,
		CancelledAt:   b.CancelledAt,
		CancelReason:  b.CancelReason,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Version:       b.Version,
	}
}
