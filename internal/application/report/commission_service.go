package report

import (
	"context"
	"sort"
	"time"

	"github.com/rentops/backend/internal/domain/booking"
	"github.com/rentops/backend/internal/domain/fleet"
	"github.com/rentops/backend/internal/domain/partner"
	"github.com/rentops/backend/internal/domain/report"
	"github.com/rentops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentVehicleFetches bounds the per-vehicle booking queries that run
// in parallel while building a report
const maxConcurrentVehicleFetches = 8

// CommissionReportService builds commission reports for depositor-owned
// vehicles over a calendar month or an arbitrary period.
type CommissionReportService struct {
	vehicleRepo   fleet.VehicleRepository
	bookingRepo   booking.BookingRepository
	depositorRepo partner.DepositorRepository
	logger        *zap.Logger
}

// NewCommissionReportService creates a new CommissionReportService
func NewCommissionReportService(
	vehicleRepo fleet.VehicleRepository,
	bookingRepo booking.BookingRepository,
	depositorRepo partner.DepositorRepository,
	logger *zap.Logger,
) *CommissionReportService {
	return &CommissionReportService{
		vehicleRepo:   vehicleRepo,
		bookingRepo:   bookingRepo,
		depositorRepo: depositorRepo,
		logger:        logger.Named("commission-report"),
	}
}

// GenerateMonthly builds the commission report for the given calendar month.
func (s *CommissionReportService) GenerateMonthly(ctx context.Context, year int, month time.Month) (*CommissionReportResponse, error) {
	periodStart, periodEnd := report.MonthPeriod(year, month)
	return s.GenerateForPeriod(ctx, periodStart, periodEnd)
}

// GenerateForPeriod builds the commission report for an arbitrary period.
//
// A booking belongs to the period of its pickup instant and counts with its
// full price regardless of status. Fixed costs are subtracted as the stored
// flat monthly figure whatever the period length. Per-vehicle aggregation is
// best effort: when a vehicle's bookings cannot be fetched its line is
// emitted with zero figures and FetchFailed set, and the report still
// completes.
func (s *CommissionReportService) GenerateForPeriod(ctx context.Context, periodStart, periodEnd time.Time) (*CommissionReportResponse, error) {
	if !periodEnd.After(periodStart) {
		return nil, shared.ErrInvalidDateRange
	}

	vehicles, err := s.vehicleRepo.FindCommissionVehicles(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]report.CommissionReportLine, len(vehicles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentVehicleFetches)

	for i := range vehicles {
		g.Go(func() error {
			v := &vehicles[i]
			bookings, err := s.bookingRepo.FindByVehiclePickupBetween(gctx, v.ID, periodStart, periodEnd)
			if err != nil {
				s.logger.Warn("failed to fetch bookings for vehicle, emitting empty line",
					zap.String("vehicle_id", v.ID.String()),
					zap.String("plate", v.Plate),
					zap.Error(err),
				)
				lines[i] = report.CommissionReportLine{
					VehicleID:         v.ID,
					Plate:             v.Plate,
					DepositorID:       v.DepositorID,
					CommissionPercent: v.EffectiveCommissionPercent(),
					FetchFailed:       true,
				}
				return nil
			}

			totalIncome := decimal.Zero
			for _, b := range bookings {
				totalIncome = totalIncome.Add(b.TotalPrice)
			}

			line := report.NewCommissionReportLine(
				v.ID,
				v.Plate,
				len(bookings),
				totalIncome,
				v.EffectiveMonthlyFixedCosts(),
				v.EffectiveCommissionPercent(),
			)
			line.DepositorID = v.DepositorID
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.attachDepositorNames(ctx, lines)

	sort.Slice(lines, func(i, j int) bool { return lines[i].Plate < lines[j].Plate })

	rep := &report.CommissionReport{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		GeneratedAt: time.Now().UTC(),
		Lines:       lines,
	}
	rep.ComputeTotals()

	response := ToCommissionReportResponse(rep)
	return &response, nil
}

// attachDepositorNames resolves depositor display names in one batch query.
// Name resolution is cosmetic, so a lookup failure only logs a warning.
func (s *CommissionReportService) attachDepositorNames(ctx context.Context, lines []report.CommissionReportLine) {
	idSet := make(map[uuid.UUID]bool)
	for _, line := range lines {
		if line.DepositorID != nil {
			idSet[*line.DepositorID] = true
		}
	}
	if len(idSet) == 0 {
		return
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	depositors, err := s.depositorRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("failed to resolve depositor names", zap.Error(err))
		return
	}
	for i := range lines {
		if lines[i].DepositorID == nil {
			continue
		}
		if d, ok := depositors[*lines[i].DepositorID]; ok {
			lines[i].DepositorName = d.Name
		}
	}
}
