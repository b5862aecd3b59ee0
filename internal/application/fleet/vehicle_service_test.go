package fleet

import (
	"context"
	"testing"

	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/rentops/backend/internal/domain/partner"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVehicleRepository is a mock implementation of fleet.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByPlate(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindAll(ctx context.Context, filter fleet.VehicleListFilter) ([]fleet.Vehicle, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]fleet.Vehicle), args.Get(1).(int64), args.Error(2)
}

func (m *MockVehicleRepository) FindCommissionVehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) SaveWithLock(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDepositorRepository is a mock implementation of partner.DepositorRepository
type MockDepositorRepository struct {
	mock.Mock
}

func (m *MockDepositorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Depositor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Depositor), args.Error(1)
}

func (m *MockDepositorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]partner.Depositor, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]partner.Depositor), args.Error(1)
}

func (m *MockDepositorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Depositor, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]partner.Depositor), args.Get(1).(int64), args.Error(2)
}

func (m *MockDepositorRepository) Save(ctx context.Context, d *partner.Depositor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDepositorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestVehicleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		vehicleRepo.On("FindByPlate", ctx, "CJ-99-XYZ").Return(nil, shared.ErrNotFound)
		vehicleRepo.On("Save", ctx, mock.AnythingOfType("*fleet.Vehicle")).Return(nil)

		resp, err := service.Create(ctx, CreateVehicleRequest{
			Plate:     "CJ-99-XYZ",
			Make:      "Dacia",
			Model:     "Duster",
			Year:      2023,
			DailyRate: decimal.NewFromInt(65),
			Ownership: string(fleet.OwnershipOwned),
		})

		require.NoError(t, err)
		assert.Equal(t, "CJ-99-XYZ", resp.Plate)
		assert.Equal(t, string(fleet.VehicleStatusAvailable), resp.Status)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate plate", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		existing, err := fleet.NewVehicle("CJ-99-XYZ", "Dacia", "Duster", 2023, decimal.NewFromInt(65), fleet.OwnershipOwned)
		require.NoError(t, err)
		vehicleRepo.On("FindByPlate", ctx, "CJ-99-XYZ").Return(existing, nil)

		_, err = service.Create(ctx, CreateVehicleRequest{
			Plate:     "CJ-99-XYZ",
			DailyRate: decimal.NewFromInt(65),
			Ownership: string(fleet.OwnershipOwned),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		vehicleRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects invalid ownership", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		vehicleRepo.On("FindByPlate", ctx, "CJ-99-XYZ").Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateVehicleRequest{
			Plate:     "CJ-99-XYZ",
			DailyRate: decimal.NewFromInt(65),
			Ownership: "LEASED",
		})

		require.Error(t, err)
		vehicleRepo.AssertNotCalled(t, "Save")
	})
}

func TestVehicleService_SetCommissionTerms(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns depositor and terms", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		vehicle, err := fleet.NewVehicle("B-77-AAA", "VW", "Golf", 2020, decimal.NewFromInt(55), fleet.OwnershipCommission)
		require.NoError(t, err)
		depositor, err := partner.NewDepositor("Ion Marinescu", "", "")
		require.NoError(t, err)

		vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
		depositorRepo.On("FindByID", ctx, depositor.ID).Return(depositor, nil)
		vehicleRepo.On("SaveWithLock", ctx, vehicle).Return(nil)

		percent := decimal.NewFromInt(35)
		costs := decimal.NewFromInt(250)
		resp, err := service.SetCommissionTerms(ctx, vehicle.ID, SetCommissionTermsRequest{
			DepositorID:       &depositor.ID,
			CommissionPercent: &percent,
			MonthlyFixedCosts: &costs,
		})

		require.NoError(t, err)
		require.NotNil(t, resp.DepositorID)
		assert.Equal(t, depositor.ID, *resp.DepositorID)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("unknown depositor rejected", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		vehicle, err := fleet.NewVehicle("B-77-AAA", "VW", "Golf", 2020, decimal.NewFromInt(55), fleet.OwnershipCommission)
		require.NoError(t, err)
		missingID := uuid.New()

		vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
		depositorRepo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

		_, err = service.SetCommissionTerms(ctx, vehicle.ID, SetCommissionTermsRequest{
			DepositorID: &missingID,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DEPOSITOR_NOT_FOUND", domainErr.Code)
		vehicleRepo.AssertNotCalled(t, "SaveWithLock")
	})
}

func TestVehicleService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("archives a vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		vehicle, err := fleet.NewVehicle("B-77-AAA", "VW", "Golf", 2020, decimal.NewFromInt(55), fleet.OwnershipOwned)
		require.NoError(t, err)
		vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
		vehicleRepo.On("SaveWithLock", ctx, vehicle).Return(nil)

		resp, err := service.SetStatus(ctx, vehicle.ID, fleet.VehicleStatusArchived)

		require.NoError(t, err)
		assert.Equal(t, string(fleet.VehicleStatusArchived), resp.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		vehicle, err := fleet.NewVehicle("B-77-AAA", "VW", "Golf", 2020, decimal.NewFromInt(55), fleet.OwnershipOwned)
		require.NoError(t, err)
		vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)

		_, err = service.SetStatus(ctx, vehicle.ID, fleet.VehicleStatus("SCRAPPED"))

		require.Error(t, err)
		vehicleRepo.AssertNotCalled(t, "SaveWithLock")
	})
}

func TestVehicleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		vehicle, err := fleet.NewVehicle("B-77-AAA", "VW", "Golf", 2020, decimal.NewFromInt(55), fleet.OwnershipOwned)
		require.NoError(t, err)
		vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
		vehicleRepo.On("SaveWithLock", ctx, vehicle).Return(nil)

		newRate := decimal.NewFromInt(70)
		resp, err := service.Update(ctx, vehicle.ID, UpdateVehicleRequest{DailyRate: &newRate})

		require.NoError(t, err)
		assert.True(t, resp.DailyRate.Equal(newRate))
		assert.Equal(t, "VW", resp.Make)
		assert.Equal(t, "Golf", resp.Model)
	})

	t.Run("archived vehicle cannot be updated", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepository)
		depositorRepo := new(MockDepositorRepository)
		service := NewVehicleService(vehicleRepo, depositorRepo)

		vehicle, err := fleet.NewVehicle("B-77-AAA", "VW", "Golf", 2020, decimal.NewFromInt(55), fleet.OwnershipOwned)
		require.NoError(t, err)
		require.NoError(t, vehicle.Archive())
		vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)

		newRate := decimal.NewFromInt(70)
		_, err = service.Update(ctx, vehicle.ID, UpdateVehicleRequest{DailyRate: &newRate})

		require.Error(t, err)
		vehicleRepo.AssertNotCalled(t, "SaveWithLock")
	})
}
