package fleet

import (
	"context"

	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/google/uuid"
)

// MaintenanceService handles maintenance record operations
type MaintenanceService struct {
	vehicleRepo     fleet.VehicleRepository
	maintenanceRepo fleet.MaintenanceRecordRepository
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(vehicleRepo fleet.VehicleRepository, maintenanceRepo fleet.MaintenanceRecordRepository) *MaintenanceService {
	return &MaintenanceService{
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// Create logs a maintenance intervention for a vehicle
func (s *MaintenanceService) Create(ctx context.Context, vehicleID uuid.UUID, req CreateMaintenanceRequest) (*MaintenanceResponse, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	record, err := fleet.NewMaintenanceRecord(vehicleID, fleet.MaintenanceType(req.Type), req.Description, req.Cost, req.PerformedAt)
	if err != nil {
		return nil, err
	}
	if req.OdometerKM != nil {
		if err := record.SetOdometer(*req.OdometerKM); err != nil {
			return nil, err
		}
	}

	if err := s.maintenanceRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToMaintenanceResponse(record)
	return &response, nil
}

// ListByVehicle retrieves the maintenance history of a vehicle
func (s *MaintenanceService) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]MaintenanceResponse, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	records, err := s.maintenanceRepo.FindByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	responses := make([]MaintenanceResponse, len(records))
	for i := range records {
		responses[i] = ToMaintenanceResponse(&records[i])
	}
	return responses, nil
}

// Delete removes a maintenance record
func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.maintenanceRepo.Delete(ctx, id)
}
