package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentops/backend/internal/domain/booking"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookingRepository implements booking.BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID finds a booking by its ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds bookings matching the filter, returning the page and the
// total count before pagination
func (r *GormBookingRepository) FindAll(ctx context.Context, filter booking.ListFilter) ([]booking.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BookingModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, BookingSortFields, "pickup_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	var bookingModels []models.BookingModel
	if err := query.Find(&bookingModels).Error; err != nil {
		return nil, 0, err
	}
	bookings := make([]booking.Booking, len(bookingModels))
	for i, model := range bookingModels {
		bookings[i] = *model.ToDomain()
	}
	return bookings, total, nil
}

// FindBlockingByVehicle returns the bookings that currently occupy the vehicle
func (r *GormBookingRepository) FindBlockingByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]booking.Booking, error) {
	return r.findBlocking(r.db.WithContext(ctx), vehicleID)
}

func (r *GormBookingRepository) findBlocking(tx *gorm.DB, vehicleID uuid.UUID) ([]booking.Booking, error) {
	var bookingModels []models.BookingModel
	if err := tx.
		Where("vehicle_id = ? AND status IN ?", vehicleID, blockingStatusStrings()).
		Order("pickup_at ASC").
		Find(&bookingModels).Error; err != nil {
		return nil, err
	}
	bookings := make([]booking.Booking, len(bookingModels))
	for i, model := range bookingModels {
		bookings[i] = *model.ToDomain()
	}
	return bookings, nil
}

// FindByVehiclePickupBetween returns the vehicle's bookings whose pickup
// instant falls in [from, to), regardless of status
func (r *GormBookingRepository) FindByVehiclePickupBetween(ctx context.Context, vehicleID uuid.UUID, from, to time.Time) ([]booking.Booking, error) {
	var bookingModels []models.BookingModel
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND pickup_at >= ? AND pickup_at < ?", vehicleID, from, to).
		Order("pickup_at ASC").
		Find(&bookingModels).Error; err != nil {
		return nil, err
	}
	bookings := make([]booking.Booking, len(bookingModels))
	for i, model := range bookingModels {
		bookings[i] = *model.ToDomain()
	}
	return bookings, nil
}

// CreateIfAvailable inserts the booking only if the vehicle is free for the
// requested period. The availability check and the insert run in one
// transaction that locks the vehicle row, so concurrent requests for the same
// vehicle serialize instead of both passing the check.
func (r *GormBookingRepository) CreateIfAvailable(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockVehicleRow(tx, b.VehicleID); err != nil {
			return err
		}

		existing, err := r.findBlocking(tx, b.VehicleID)
		if err != nil {
			return err
		}
		if conflict := booking.FindConflict(existing, b.Period(), nil); conflict != nil {
			return booking.NewConflictError(conflict.ID)
		}

		return tx.Create(models.BookingModelFromDomain(b)).Error
	})
}

// RescheduleIfAvailable persists a period change only if the new period is
// free, excluding the booking itself from the conflict scan. Runs under the
// same vehicle row lock as CreateIfAvailable.
func (r *GormBookingRepository) RescheduleIfAvailable(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockVehicleRow(tx, b.VehicleID); err != nil {
			return err
		}

		existing, err := r.findBlocking(tx, b.VehicleID)
		if err != nil {
			return err
		}
		excludeID := b.ID
		if conflict := booking.FindConflict(existing, b.Period(), &excludeID); conflict != nil {
			return booking.NewConflictError(conflict.ID)
		}

		return tx.Save(models.BookingModelFromDomain(b)).Error
	})
}

func (r *GormBookingRepository) lockVehicleRow(tx *gorm.DB, vehicleID uuid.UUID) error {
	var vehicle models.VehicleModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}
	return nil
}

// Save creates or updates a booking
func (r *GormBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	model := models.BookingModelFromDomain(b)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves the booking with optimistic locking
func (r *GormBookingRepository) SaveWithLock(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.BookingModel
		if err := tx.Select("version").Where("id = ?", b.GetID()).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				model := models.BookingModelFromDomain(b)
				return tx.Create(model).Error
			}
			return err
		}

		expectedVersion := b.GetVersion()
		if current.Version != expectedVersion {
			return shared.ErrConcurrencyConflict
		}

		b.IncrementVersion()
		model := models.BookingModelFromDomain(b)
		result := tx.Model(&models.BookingModel{}).
			Where("id = ? AND version = ?", b.GetID(), expectedVersion).
			Select("*").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

func (r *GormBookingRepository) applyFilterWithoutPagination(query *gorm.DB, filter booking.ListFilter) *gorm.DB {
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("return_at > ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("pickup_at < ?", *filter.To)
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("(customer_name ILIKE ? OR customer_email ILIKE ?)", searchPattern, searchPattern)
	}
	return query
}

func blockingStatusStrings() []string {
	statuses := booking.BlockingStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
