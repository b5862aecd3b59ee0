package booking

import (
	"context"
	"time"

	"github.com/rentops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ListFilter defines filtering options for booking list queries
type ListFilter struct {
	VehicleID *uuid.UUID
	Status    *BookingStatus
	From      *time.Time
	To        *time.Time
	Search    string
	Page      int
	PageSize  int
	OrderBy   string
	OrderDir  string
}

// BookingRepository defines persistence operations for bookings.
//
// CreateIfAvailable and RescheduleIfAvailable run the availability check and
// the write inside one transaction that locks the vehicle row, so two
// concurrent requests for the same vehicle serialize instead of both passing
// the check and double-booking.
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Booking, int64, error)

	// FindBlockingByVehicle returns the bookings that currently occupy the
	// vehicle (blocking statuses only).
	FindBlockingByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]Booking, error)

	// FindByVehiclePickupBetween returns the vehicle's bookings whose pickup
	// instant falls in [from, to), regardless of status.
	FindByVehiclePickupBetween(ctx context.Context, vehicleID uuid.UUID, from, to time.Time) ([]Booking, error)

	CreateIfAvailable(ctx context.Context, b *Booking) error
	RescheduleIfAvailable(ctx context.Context, b *Booking) error
	Save(ctx context.Context, b *Booking) error
	SaveWithLock(ctx context.Context, b *Booking) error
}

// NewConflictError builds the domain error reported when a requested period
// collides with an existing booking.
func NewConflictError(conflictingID uuid.UUID) *shared.DomainError {
	return shared.NewDomainError("BOOKING_CONFLICT", "Vehicle is already booked for the requested dates by booking "+conflictingID.String())
}
