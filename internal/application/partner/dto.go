package partner

import (
	"time"

	"github.com/rentops/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateDepositorRequest represents a request to register a depositor
type CreateDepositorRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	Phone string `json:"phone" binding:"max=50"`
	IBAN  string `json:"iban" binding:"max=50"`
	Notes string `json:"notes"`
}

// UpdateDepositorRequest represents a request to update a depositor
type UpdateDepositorRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email *string `json:"email" binding:"omitempty,email,max=200"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	IBAN  *string `json:"iban" binding:"omitempty,max=50"`
	Notes *string `json:"notes"`
}

// DepositorResponse represents a depositor in API responses
type DepositorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IBAN      string    `json:"iban"`
	Notes     string    `json:"notes"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DepositorListFilter represents filter options for the depositor list
type DepositorListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ToDepositorResponse converts a domain Depositor to a DepositorResponse
func ToDepositorResponse(d *partner.Depositor) DepositorResponse {
	return DepositorResponse{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		IBAN:      d.IBAN,
		Notes:     d.Notes,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
