package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentops/backend/internal/domain/partner"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDepositorRepository implements partner.DepositorRepository using GORM
type GormDepositorRepository struct {
	db *gorm.DB
}

// NewGormDepositorRepository creates a new GormDepositorRepository
func NewGormDepositorRepository(db *gorm.DB) *GormDepositorRepository {
	return &GormDepositorRepository{db: db}
}

// FindByID finds a depositor by its ID
func (r *GormDepositorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Depositor, error) {
	var model models.DepositorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs loads a set of depositors keyed by ID. Missing IDs are simply
// absent from the result, not an error.
func (r *GormDepositorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]partner.Depositor, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]partner.Depositor{}, nil
	}
	var depositorModels []models.DepositorModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&depositorModels).Error; err != nil {
		return nil, err
	}
	result := make(map[uuid.UUID]partner.Depositor, len(depositorModels))
	for _, model := range depositorModels {
		result[model.ID] = *model.ToDomain()
	}
	return result, nil
}

// FindAll finds depositors matching the filter, returning the page and the
// total count before pagination
func (r *GormDepositorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Depositor, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DepositorModel{})
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("(name ILIKE ? OR email ILIKE ?)", searchPattern, searchPattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, DepositorSortFields, "name")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := filter.Offset(); offset > 0 {
			query = query.Offset(offset)
		}
	}

	var depositorModels []models.DepositorModel
	if err := query.Find(&depositorModels).Error; err != nil {
		return nil, 0, err
	}
	depositors := make([]partner.Depositor, len(depositorModels))
	for i, model := range depositorModels {
		depositors[i] = *model.ToDomain()
	}
	return depositors, total, nil
}

// Save creates or updates a depositor
func (r *GormDepositorRepository) Save(ctx context.Context, d *partner.Depositor) error {
	model := models.DepositorModelFromDomain(d)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a depositor
func (r *GormDepositorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DepositorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
