package document

import (
	"time"

	"github.com/google/uuid"
)

// ContractResponse describes a generated contract document
type ContractResponse struct {
	BookingID   uuid.UUID `json:"booking_id"`
	ObjectKey   string    `json:"object_key"`
	DownloadURL string    `json:"download_url,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// contractData feeds the contract HTML template. All money and time values
// are pre-formatted strings so the template stays dumb.
type contractData struct {
	ContractNumber string
	IssuedAt       string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	Plate          string
	Make           string
	Model          string
	Year           int
	PickupAt       string
	ReturnAt       string
	DailyRate      string
	TotalPrice     string
	Deposit        string
	Currency       string
	Notes          string
}
