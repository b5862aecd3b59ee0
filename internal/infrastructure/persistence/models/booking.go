package models

import (
	"time"

	"github.com/rentops/backend/internal/domain/booking"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingModel is the GORM model for bookings
type BookingModel struct {
	AggregateModel
	VehicleID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_bookings_vehicle_period"`
	CustomerName  string          `gorm:"type:varchar(200);not null"`
	CustomerEmail string          `gorm:"type:varchar(200)"`
	CustomerPhone string          `gorm:"type:varchar(50)"`
	PickupAt      time.Time       `gorm:"not null;index:idx_bookings_vehicle_period"`
	ReturnAt      time.Time       `gorm:"not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Deposit       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ContractKey   string          `gorm:"type:varchar(500)"`
	Notes         string          `gorm:"type:text"`
	CancelledAt   *time.Time      `gorm:""`
	CancelReason  string          `gorm:"type:text"`
}

// TableName specifies the table name for BookingModel
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts BookingModel to domain Booking
func (m *BookingModel) ToDomain() *booking.Booking {
	return &booking.Booking{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		VehicleID:         m.VehicleID,
		CustomerName:      m.CustomerName,
		CustomerEmail:     m.CustomerEmail,
		CustomerPhone:     m.CustomerPhone,
		PickupAt:          m.PickupAt,
		ReturnAt:          m.ReturnAt,
		Status:            booking.BookingStatus(m.Status),
		TotalPrice:        m.TotalPrice,
		Deposit:           m.Deposit,
		ContractKey:       m.ContractKey,
		Notes:             m.Notes,
		CancelledAt:       m.CancelledAt,
		CancelReason:      m.CancelReason,
	}
}

// BookingModelFromDomain converts domain Booking to BookingModel
func BookingModelFromDomain(b *booking.Booking) *BookingModel {
	m := &BookingModel{
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
	}
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	return m
}
