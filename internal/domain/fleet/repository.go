package fleet

import (
	"context"

	"github.com/google/uuid"
)

// VehicleListFilter defines filtering options for vehicle list queries
type VehicleListFilter struct {
	Status    *VehicleStatus
	Ownership *OwnershipType
	Search    string
	Page      int
	PageSize  int
	OrderBy   string
	OrderDir  string
}

// VehicleRepository defines persistence operations for vehicles
type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*Vehicle, error)
	FindAll(ctx context.Context, filter VehicleListFilter) ([]Vehicle, int64, error)

	// FindCommissionVehicles returns vehicles eligible for commission
	// reporting: ownership COMMISSION with a depositor assigned.
	FindCommissionVehicles(ctx context.Context) ([]Vehicle, error)

	Save(ctx context.Context, v *Vehicle) error
	SaveWithLock(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenanceRecordRepository defines persistence operations for maintenance records
type MaintenanceRecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MaintenanceRecord, error)
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]MaintenanceRecord, error)
	Save(ctx context.Context, r *MaintenanceRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
