package booking

import (
	"context"
	"time"

	"github.com/rentops/backend/internal/domain/booking"
	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/rentops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IdempotencyStore remembers booking creation keys so retried requests do not
// create duplicate bookings.
type IdempotencyStore interface {
	// Reserve records the key if unseen. Returns false when the key was
	// already used within its retention window.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// BookingService handles the booking lifecycle: availability checks, quotes,
// creation and state transitions.
type BookingService struct {
	bookingRepo  booking.BookingRepository
	vehicleRepo  fleet.VehicleRepository
	depositRatio decimal.Decimal
	idempotency  IdempotencyStore
	idemWindow   time.Duration
	logger       *zap.Logger
}

// NewBookingService creates a new BookingService. idempotency may be nil, in
// which case creation keys are not deduplicated.
func NewBookingService(
	bookingRepo booking.BookingRepository,
	vehicleRepo fleet.VehicleRepository,
	depositRatio decimal.Decimal,
	idempotency IdempotencyStore,
	idemWindow time.Duration,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		depositRatio: depositRatio,
		idempotency:  idempotency,
		idemWindow:   idemWindow,
		logger:       logger.Named("booking-service"),
	}
}

// CheckAvailability reports whether the vehicle is free for the requested
// period. The answer is advisory: creation re-checks under a vehicle row lock.
func (s *BookingService) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResponse, error) {
	period, err := booking.NewDateRange(req.PickupAt, req.ReturnAt)
	if err != nil {
		return nil, err
	}
	if _, err := s.vehicleRepo.FindByID(ctx, req.VehicleID); err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.FindBlockingByVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	result := booking.CheckAvailability(existing, period, req.ExcludeBookingID)
	return &AvailabilityResponse{
		Available:            result.Available,
		ConflictingBookingID: result.ConflictingBookingID,
	}, nil
}

// Quote computes the price of renting the vehicle over the requested period
func (s *BookingService) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	period, err := booking.NewDateRange(req.PickupAt, req.ReturnAt)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.FindByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	quote, err := booking.CalculateQuote(valueobject.NewMoneyEUR(vehicle.DailyRate), period, s.depositRatio)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		VehicleID:  vehicle.ID,
		Days:       quote.Days,
		DailyRate:  vehicle.DailyRate,
		TotalPrice: quote.Total.Amount(),
		Deposit:    quote.Deposit.Amount(),
		Currency:   string(quote.Total.Currency()),
	}, nil
}

// Create creates a pending booking if the vehicle is free for the period.
// The availability check and the insert run atomically in the repository.
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	period, err := booking.NewDateRange(req.PickupAt, req.ReturnAt)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsBookable() {
		return nil, shared.ErrVehicleUnavailable
	}

	if s.idempotency != nil && req.IdempotencyKey != "" {
		fresh, err := s.idempotency.Reserve(ctx, "booking:create:"+req.IdempotencyKey, s.idemWindow)
		if err != nil {
			// Dedup is best effort: a broken store must not block bookings
			s.logger.Warn("idempotency store unavailable", zap.Error(err))
		} else if !fresh {
			return nil, shared.NewDomainError("DUPLICATE_REQUEST", "A booking with this idempotency key was already created")
		}
	}

	quote, err := booking.CalculateQuote(valueobject.NewMoneyEUR(vehicle.DailyRate), period, s.depositRatio)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(vehicle.ID, req.CustomerName, period, quote)
	if err != nil {
		return nil, err
	}
	b.SetContactDetails(req.CustomerEmail, req.CustomerPhone)
	b.Notes = req.Notes

	if err := s.bookingRepo.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", b.ID.String()),
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.Time("pickup_at", b.PickupAt),
		zap.Time("return_at", b.ReturnAt),
	)

	response := ToBookingResponse(b)
	return &response, nil
}

// GetByID retrieves a booking by ID
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// List retrieves bookings matching the filter
func (s *BookingService) List(ctx context.Context, filter BookingListFilter) ([]BookingResponse, int64, error) {
	domainFilter := booking.ListFilter{
		VehicleID: filter.VehicleID,
		From:      filter.From,
		To:        filter.To,
		Search:    filter.Search,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
		OrderBy:   filter.OrderBy,
		OrderDir:  filter.OrderDir,
	}
	if filter.Status != "" {
		status := booking.BookingStatus(filter.Status)
		domainFilter.Status = &status
	}

	bookings, total, err := s.bookingRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = ToBookingResponse(&bookings[i])
	}
	return responses, total, nil
}

// Confirm moves a pending booking to confirmed
func (s *BookingService) Confirm(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	return s.transition(ctx, id, (*booking.Booking).Confirm)
}

// Start marks the booking as in progress
func (s *BookingService) Start(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	return s.transition(ctx, id, (*booking.Booking).Start)
}

// Complete marks the booking as completed
func (s *BookingService) Complete(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	return s.transition(ctx, id, (*booking.Booking).Complete)
}

// Cancel cancels a booking that has not started yet
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID, req CancelBookingRequest) (*BookingResponse, error) {
	return s.transition(ctx, id, func(b *booking.Booking) error {
		return b.Cancel(req.Reason)
	})
}

func (s *BookingService) transition(ctx context.Context, id uuid.UUID, fn func(*booking.Booking) error) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(b); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// Reschedule moves a booking to a new period, repricing it at the vehicle's
// current daily rate. The conflict check excludes the booking itself.
func (s *BookingService) Reschedule(ctx context.Context, id uuid.UUID, req RescheduleBookingRequest) (*BookingResponse, error) {
	period, err := booking.NewDateRange(req.PickupAt, req.ReturnAt)
	if err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.FindByID(ctx, b.VehicleID)
	if err != nil {
		return nil, err
	}

	quote, err := booking.CalculateQuote(valueobject.NewMoneyEUR(vehicle.DailyRate), period, s.depositRatio)
	if err != nil {
		return nil, err
	}
	if err := b.Reschedule(period, quote); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.RescheduleIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	response := ToBookingResponse(b)
	return &response, nil
}
