package partner

import (
	"context"

	"github.com/rentops/backend/internal/domain/partner"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DepositorService handles depositor management operations
type DepositorService struct {
	depositorRepo partner.DepositorRepository
}

// NewDepositorService creates a new DepositorService
func NewDepositorService(depositorRepo partner.DepositorRepository) *DepositorService {
	return &DepositorService{depositorRepo: depositorRepo}
}

// Create registers a new depositor
func (s *DepositorService) Create(ctx context.Context, req CreateDepositorRequest) (*DepositorResponse, error) {
	depositor, err := partner.NewDepositor(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	depositor.IBAN = req.IBAN
	depositor.Notes = req.Notes

	if err := s.depositorRepo.Save(ctx, depositor); err != nil {
		return nil, err
	}

	response := ToDepositorResponse(depositor)
	return &response, nil
}

// GetByID retrieves a depositor by ID
func (s *DepositorService) GetByID(ctx context.Context, id uuid.UUID) (*DepositorResponse, error) {
	depositor, err := s.depositorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToDepositorResponse(depositor)
	return &response, nil
}

// List retrieves depositors matching the filter
func (s *DepositorService) List(ctx context.Context, filter DepositorListFilter) ([]DepositorResponse, int64, error) {
	depositors, total, err := s.depositorRepo.FindAll(ctx, shared.Filter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DepositorResponse, len(depositors))
	for i := range depositors {
		responses[i] = ToDepositorResponse(&depositors[i])
	}
	return responses, total, nil
}

// Update modifies a depositor's contact details
func (s *DepositorService) Update(ctx context.Context, id uuid.UUID, req UpdateDepositorRequest) (*DepositorResponse, error) {
	depositor, err := s.depositorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := depositor.Name
	if req.Name != nil {
		name = *req.Name
	}
	email := depositor.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone := depositor.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	iban := depositor.IBAN
	if req.IBAN != nil {
		iban = *req.IBAN
	}
	notes := depositor.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := depositor.Update(name, email, phone, iban, notes); err != nil {
		return nil, err
	}
	if err := s.depositorRepo.Save(ctx, depositor); err != nil {
		return nil, err
	}

	response := ToDepositorResponse(depositor)
	return &response, nil
}

// Deactivate marks a depositor as inactive
func (s *DepositorService) Deactivate(ctx context.Context, id uuid.UUID) (*DepositorResponse, error) {
	depositor, err := s.depositorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	depositor.Deactivate()
	if err := s.depositorRepo.Save(ctx, depositor); err != nil {
		return nil, err
	}

	response := ToDepositorResponse(depositor)
	return &response, nil
}

// Delete removes a depositor
func (s *DepositorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.depositorRepo.Delete(ctx, id)
}
