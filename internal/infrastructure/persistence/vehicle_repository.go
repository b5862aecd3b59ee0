package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements fleet.VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByID finds a vehicle by its ID
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPlate finds a vehicle by its registration plate
func (r *GormVehicleRepository) FindByPlate(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).First(&model, "plate = ?", plate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds vehicles matching the filter, returning the page and the
// total count before pagination
func (r *GormVehicleRepository) FindAll(ctx context.Context, filter fleet.VehicleListFilter) ([]fleet.Vehicle, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.VehicleModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, VehicleSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	var vehicleModels []models.VehicleModel
	if err := query.Find(&vehicleModels).Error; err != nil {
		return nil, 0, err
	}
	vehicles := make([]fleet.Vehicle, len(vehicleModels))
	for i, model := range vehicleModels {
		vehicles[i] = *model.ToDomain()
	}
	return vehicles, total, nil
}

// FindCommissionVehicles returns vehicles eligible for commission reporting:
// ownership COMMISSION with a depositor assigned, archived vehicles included
// so historical months still report
func (r *GormVehicleRepository) FindCommissionVehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	var vehicleModels []models.VehicleModel
	if err := r.db.WithContext(ctx).
		Where("ownership = ? AND depositor_id IS NOT NULL", fleet.OwnershipCommission.String()).
		Order("plate ASC").
		Find(&vehicleModels).Error; err != nil {
		return nil, err
	}
	vehicles := make([]fleet.Vehicle, len(vehicleModels))
	for i, model := range vehicleModels {
		vehicles[i] = *model.ToDomain()
	}
	return vehicles, nil
}

// Save creates or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, v *fleet.Vehicle) error {
	model := models.VehicleModelFromDomain(v)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves the vehicle with optimistic locking
func (r *GormVehicleRepository) SaveWithLock(ctx context.Context, v *fleet.Vehicle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.VehicleModel
		if err := tx.Select("version").Where("id = ?", v.GetID()).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				model := models.VehicleModelFromDomain(v)
				return tx.Create(model).Error
			}
			return err
		}

		expectedVersion := v.GetVersion()
		if current.Version != expectedVersion {
			return shared.ErrConcurrencyConflict
		}

		v.IncrementVersion()
		model := models.VehicleModelFromDomain(v)
		result := tx.Model(&models.VehicleModel{}).
			Where("id = ? AND version = ?", v.GetID(), expectedVersion).
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

// Delete removes a vehicle
func (r *GormVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.VehicleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormVehicleRepository) applyFilterWithoutPagination(query *gorm.DB, filter fleet.VehicleListFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Ownership != nil {
		query = query.Where("ownership = ?", *filter.Ownership)
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("(plate ILIKE ? OR make ILIKE ? OR model ILIKE ?)", searchPattern, searchPattern, searchPattern)
	}
	return query
}
