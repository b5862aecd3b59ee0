package document

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/rentops/backend/internal/domain/booking"
	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PDFRenderer converts an HTML document into PDF bytes
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ObjectStorage stores contract documents and hands out presigned links
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, key string) (string, error)
}

// ContractService generates rental contract PDFs for bookings and stores
// them in object storage.
type ContractService struct {
	bookingRepo booking.BookingRepository
	vehicleRepo fleet.VehicleRepository
	renderer    PDFRenderer
	storage     ObjectStorage
	tmpl        *template.Template
	logger      *zap.Logger
}

// NewContractService creates a new ContractService
func NewContractService(
	bookingRepo booking.BookingRepository,
	vehicleRepo fleet.VehicleRepository,
	renderer PDFRenderer,
	storage ObjectStorage,
	logger *zap.Logger,
) (*ContractService, error) {
	tmpl, err := template.New("contract").Parse(contractTemplateHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract template: %w", err)
	}
	return &ContractService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		renderer:    renderer,
		storage:     storage,
		tmpl:        tmpl,
		logger:      logger.Named("contract-service"),
	}, nil
}

// Generate renders the contract PDF for a booking, uploads it and records the
// object key on the booking. Regenerating overwrites the previous document
// under the same key.
func (s *ContractService) Generate(ctx context.Context, bookingID uuid.UUID) (*ContractResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == booking.StatusCancelled {
		return nil, shared.NewDomainError("BOOKING_CANCELLED", "Cannot generate a contract for a cancelled booking")
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, b.VehicleID)
	if err != nil {
		return nil, err
	}

	html, err := s.renderHTML(b, vehicle)
	if err != nil {
		return nil, err
	}

	pdf, err := s.renderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("failed to render contract PDF: %w", err)
	}

	key := contractObjectKey(b.ID)
	if err := s.storage.Upload(ctx, key, pdf, "application/pdf"); err != nil {
		return nil, fmt.Errorf("failed to upload contract: %w", err)
	}

	b.AttachContract(key)
	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("contract generated",
		zap.String("booking_id", b.ID.String()),
		zap.String("object_key", key),
		zap.Int("pdf_bytes", len(pdf)),
	)

	url, err := s.storage.GenerateDownloadURL(ctx, key)
	if err != nil {
		// The document exists, a link can still be fetched later
		s.logger.Warn("failed to presign contract download", zap.Error(err))
		url = ""
	}

	return &ContractResponse{
		BookingID:   b.ID,
		ObjectKey:   key,
		DownloadURL: url,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// GetDownloadURL returns a presigned link for an already generated contract
func (s *ContractService) GetDownloadURL(ctx context.Context, bookingID uuid.UUID) (*ContractResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ContractKey == "" {
		return nil, shared.NewDomainError("CONTRACT_NOT_GENERATED", "No contract has been generated for this booking")
	}

	url, err := s.storage.GenerateDownloadURL(ctx, b.ContractKey)
	if err != nil {
		return nil, fmt.Errorf("failed to presign contract download: %w", err)
	}

	return &ContractResponse{
		BookingID:   b.ID,
		ObjectKey:   b.ContractKey,
		DownloadURL: url,
	}, nil
}

// renderHTML fills the contract template with booking and vehicle data
func (s *ContractService) renderHTML(b *booking.Booking, v *fleet.Vehicle) (string, error) {
	data := contractData{
		ContractNumber: contractNumber(b.ID),
		IssuedAt:       time.Now().Format("02.01.2006"),
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		Plate:          v.Plate,
		Make:           v.Make,
		Model:          v.Model,
		Year:           v.Year,
		PickupAt:       b.PickupAt.Format("02.01.2006 15:04"),
		ReturnAt:       b.ReturnAt.Format("02.01.2006 15:04"),
		DailyRate:      v.DailyRate.StringFixed(2),
		TotalPrice:     b.TotalPrice.StringFixed(2),
		Deposit:        b.Deposit.StringFixed(2),
		Currency:       string(valueobject.DefaultCurrency),
		Notes:          b.Notes,
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render contract template: %w", err)
	}
	return buf.String(), nil
}

// contractObjectKey is stable per booking so regeneration replaces the file
func contractObjectKey(bookingID uuid.UUID) string {
	return "contracts/" + bookingID.String() + ".pdf"
}

// contractNumber derives a short human-readable reference from the booking ID
func contractNumber(bookingID uuid.UUID) string {
	return "RC-" + strings.ToUpper(strings.ReplaceAll(bookingID.String(), "-", "")[:12])
}
