package fleet

import (
	"context"
	"errors"

	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/rentops/backend/internal/domain/partner"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VehicleService handles fleet management operations
type VehicleService struct {
	vehicleRepo   fleet.VehicleRepository
	depositorRepo partner.DepositorRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo fleet.VehicleRepository, depositorRepo partner.DepositorRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo:   vehicleRepo,
		depositorRepo: depositorRepo,
	}
}

// Create registers a new vehicle in the fleet
func (s *VehicleService) Create(ctx context.Context, req CreateVehicleRequest) (*VehicleResponse, error) {
	existing, err := s.vehicleRepo.FindByPlate(ctx, req.Plate)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vehicle with this plate already exists")
	}

	vehicle, err := fleet.NewVehicle(req.Plate, req.Make, req.Model, req.Year, req.DailyRate, fleet.OwnershipType(req.Ownership))
	if err != nil {
		return nil, err
	}
	vehicle.Notes = req.Notes

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// List retrieves vehicles matching the filter
func (s *VehicleService) List(ctx context.Context, filter VehicleListFilter) ([]VehicleResponse, int64, error) {
	domainFilter := fleet.VehicleListFilter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}
	if filter.Status != "" {
		status := fleet.VehicleStatus(filter.Status)
		domainFilter.Status = &status
	}
	if filter.Ownership != "" {
		ownership := fleet.OwnershipType(filter.Ownership)
		domainFilter.Ownership = &ownership
	}

	vehicles, total, err := s.vehicleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses, total, nil
}

// Update modifies a vehicle's descriptive fields
func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	make := vehicle.Make
	if req.Make != nil {
		make = *req.Make
	}
	model := vehicle.Model
	if req.Model != nil {
		model = *req.Model
	}
	year := vehicle.Year
	if req.Year != nil {
		year = *req.Year
	}
	dailyRate := vehicle.DailyRate
	if req.DailyRate != nil {
		dailyRate = *req.DailyRate
	}
	notes := vehicle.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := vehicle.Update(make, model, year, dailyRate, notes); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.SaveWithLock(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// SetCommissionTerms configures the vehicle's commission split and fixed costs
func (s *VehicleService) SetCommissionTerms(ctx context.Context, id uuid.UUID, req SetCommissionTermsRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepositorID != nil {
		if _, err := s.depositorRepo.FindByID(ctx, *req.DepositorID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("DEPOSITOR_NOT_FOUND", "Depositor does not exist")
			}
			return nil, err
		}
	}

	if err := vehicle.SetCommissionTerms(req.DepositorID, req.CommissionPercent, req.MonthlyFixedCosts); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.SaveWithLock(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// SetStatus moves the vehicle between AVAILABLE, UNAVAILABLE and ARCHIVED
func (s *VehicleService) SetStatus(ctx context.Context, id uuid.UUID, status fleet.VehicleStatus) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case fleet.VehicleStatusAvailable:
		err = vehicle.MarkAvailable()
	case fleet.VehicleStatusUnavailable:
		err = vehicle.MarkUnavailable()
	case fleet.VehicleStatusArchived:
		err = vehicle.Archive()
	default:
		err = shared.NewDomainError("INVALID_STATUS", "Unknown vehicle status")
	}
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.SaveWithLock(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// Delete removes a vehicle from the fleet
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.vehicleRepo.Delete(ctx, id)
}
