package persistence

import (
	"context"
	"errors"

	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMaintenanceRecordRepository implements fleet.MaintenanceRecordRepository using GORM
type GormMaintenanceRecordRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRecordRepository creates a new GormMaintenanceRecordRepository
func NewGormMaintenanceRecordRepository(db *gorm.DB) *GormMaintenanceRecordRepository {
	return &GormMaintenanceRecordRepository{db: db}
}

// FindByID finds a maintenance record by its ID
func (r *GormMaintenanceRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.MaintenanceRecord, error) {
	var model models.MaintenanceRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByVehicle finds all maintenance records for a vehicle, most recent first
func (r *GormMaintenanceRecordRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]fleet.MaintenanceRecord, error) {
	var recordModels []models.MaintenanceRecordModel
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("performed_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]fleet.MaintenanceRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Save creates or updates a maintenance record
func (r *GormMaintenanceRecordRepository) Save(ctx context.Context, record *fleet.MaintenanceRecord) error {
	model := models.MaintenanceRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a maintenance record
func (r *GormMaintenanceRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MaintenanceRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
