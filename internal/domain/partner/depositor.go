package partner

import (
	"github.com/rentops/backend/internal/domain/shared"
)

// Depositor is an external owner or collaborator whose vehicle earns a
// commission split of the rental profit.
type Depositor struct {
	shared.BaseAggregateRoot
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	IBAN   string `json:"iban"`
	Notes  string `json:"notes"`
	Active bool   `json:"active"`
}

// NewDepositor creates an active depositor
func NewDepositor(name, email, phone string) (*Depositor, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Depositor name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Depositor name cannot exceed 200 characters")
	}

	return &Depositor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Phone:             phone,
		Active:            true,
	}, nil
}

// Update replaces the depositor's contact details
func (d *Depositor) Update(name, email, phone, iban, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Depositor name cannot be empty")
	}
	d.Name = name
	d.Email = email
	d.Phone = phone
	d.IBAN = iban
	d.Notes = notes
	d.Touch()
	return nil
}

// Deactivate marks the depositor as inactive
func (d *Depositor) Deactivate() {
	d.Active = false
	d.Touch()
}
