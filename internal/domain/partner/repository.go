package partner

import (
	"context"

	"github.com/rentops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DepositorRepository defines persistence operations for depositors
type DepositorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Depositor, error)
	// FindByIDs loads a set of depositors keyed by ID. Missing IDs are
	// absent from the result, not an error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Depositor, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Depositor, int64, error)
	Save(ctx context.Context, d *Depositor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
