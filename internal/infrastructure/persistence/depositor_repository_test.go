package persistence

import (
	"context"
	"testing"

	"github.com/rentops/backend/internal/domain/partner"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDepositorTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.DepositorModel{}))
	return db
}

func TestGormDepositorRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by id", func(t *testing.T) {
		db := setupDepositorTestDB(t)
		repo := NewGormDepositorRepository(db)

		d, err := partner.NewDepositor("Ion Marinescu", "ion@example.com", "+40 700 000 001")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, d))

		found, err := repo.FindByID(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ion Marinescu", found.Name)
		assert.Equal(t, "ion@example.com", found.Email)
		assert.True(t, found.Active)
	})

	t.Run("find by ids skips missing", func(t *testing.T) {
		db := setupDepositorTestDB(t)
		repo := NewGormDepositorRepository(db)

		d1, err := partner.NewDepositor("Ion Marinescu", "", "")
		require.NoError(t, err)
		d2, err := partner.NewDepositor("Maria Ionescu", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, d1))
		require.NoError(t, repo.Save(ctx, d2))

		missing := uuid.New()
		result, err := repo.FindByIDs(ctx, []uuid.UUID{d1.ID, d2.ID, missing})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Ion Marinescu", result[d1.ID].Name)
		assert.Equal(t, "Maria Ionescu", result[d2.ID].Name)
		_, ok := result[missing]
		assert.False(t, ok)
	})

	t.Run("empty id set short-circuits", func(t *testing.T) {
		db := setupDepositorTestDB(t)
		repo := NewGormDepositorRepository(db)

		result, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("save persists updates", func(t *testing.T) {
		db := setupDepositorTestDB(t)
		repo := NewGormDepositorRepository(db)

		d, err := partner.NewDepositor("Ion Marinescu", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, d))

		require.NoError(t, d.Update("Ion M. Marinescu", "ion@example.com", "", "RO49AAAA1B31007593840000", "preferred partner"))
		require.NoError(t, repo.Save(ctx, d))

		found, err := repo.FindByID(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ion M. Marinescu", found.Name)
		assert.Equal(t, "RO49AAAA1B31007593840000", found.IBAN)
	})

	t.Run("delete missing depositor reports not found", func(t *testing.T) {
		db := setupDepositorTestDB(t)
		repo := NewGormDepositorRepository(db)

		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}
