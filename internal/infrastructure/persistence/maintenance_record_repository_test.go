package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMaintenanceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.MaintenanceRecordModel{}))
	return db
}

func newRecord(t *testing.T, vehicleID uuid.UUID, performedAt time.Time) *fleet.MaintenanceRecord {
	t.Helper()
	r, err := fleet.NewMaintenanceRecord(vehicleID, fleet.MaintenanceService, "Oil change", decimal.NewFromInt(120), performedAt)
	require.NoError(t, err)
	return r
}

func TestGormMaintenanceRecordRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by id", func(t *testing.T) {
		db := setupMaintenanceTestDB(t)
		repo := NewGormMaintenanceRecordRepository(db)

		record := newRecord(t, uuid.New(), time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.Save(ctx, record))

		found, err := repo.FindByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.VehicleID, found.VehicleID)
		assert.Equal(t, fleet.MaintenanceService, found.Type)
		assert.True(t, found.Cost.Equal(decimal.NewFromInt(120)))
	})

	t.Run("find by vehicle orders most recent first", func(t *testing.T) {
		db := setupMaintenanceTestDB(t)
		repo := NewGormMaintenanceRecordRepository(db)

		vehicleID := uuid.New()
		older := newRecord(t, vehicleID, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
		newer := newRecord(t, vehicleID, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))
		other := newRecord(t, uuid.New(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.Save(ctx, older))
		require.NoError(t, repo.Save(ctx, newer))
		require.NoError(t, repo.Save(ctx, other))

		records, err := repo.FindByVehicle(ctx, vehicleID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, newer.ID, records[0].ID)
		assert.Equal(t, older.ID, records[1].ID)
	})

	t.Run("missing record returns not found", func(t *testing.T) {
		db := setupMaintenanceTestDB(t)
		repo := NewGormMaintenanceRecordRepository(db)

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		db := setupMaintenanceTestDB(t)
		repo := NewGormMaintenanceRecordRepository(db)

		record := newRecord(t, uuid.New(), time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.Save(ctx, record))
		require.NoError(t, repo.Delete(ctx, record.ID))

		_, err := repo.FindByID(ctx, record.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		// Deleting twice reports not found
		assert.ErrorIs(t, repo.Delete(ctx, record.ID), shared.ErrNotFound)
	})
}
