package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionReportLine is the per-vehicle outcome of a commission report.
// Lines are recomputed from the booking set on every request and never
// persisted.
type CommissionReportLine struct {
	VehicleID         uuid.UUID       `json:"vehicle_id"`
	Plate             string          `json:"plate"`
	DepositorID       *uuid.UUID      `json:"depositor_id,omitempty"`
	DepositorName     string          `json:"depositor_name,omitempty"`
	BookingCount      int             `json:"booking_count"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	FixedCosts        decimal.Decimal `json:"fixed_costs"`
	NetIncome         decimal.Decimal `json:"net_income"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	OperatorShare     decimal.Decimal `json:"operator_share"`
	FetchFailed       bool            `json:"fetch_failed,omitempty"`
}

// NewCommissionReportLine computes a report line from a vehicle's period
// income. Fixed costs are subtracted as the stored flat monthly figure no
// matter how long the period is. Net income is not clamped at zero: when
// costs exceed income the commission and the operator share both go
// negative.
func NewCommissionReportLine(vehicleID uuid.UUID, plate string, bookingCount int, totalIncome, fixedCosts, commissionPercent decimal.Decimal) CommissionReportLine {
	netIncome := totalIncome.Sub(fixedCosts)
	commissionAmount := netIncome.Mul(commissionPercent).Div(decimal.NewFromInt(100))
	operatorShare := netIncome.Sub(commissionAmount)

	return CommissionReportLine{
		VehicleID:         vehicleID,
		Plate:             plate,
		BookingCount:      bookingCount,
		TotalIncome:       totalIncome,
		FixedCosts:        fixedCosts,
		NetIncome:         netIncome,
		CommissionPercent: commissionPercent,
		CommissionAmount:  commissionAmount,
		OperatorShare:     operatorShare,
	}
}

// CommissionReportTotals sums all lines of a report
type CommissionReportTotals struct {
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalFixedCosts    decimal.Decimal `json:"total_fixed_costs"`
	TotalNetIncome     decimal.Decimal `json:"total_net_income"`
	TotalCommission    decimal.Decimal `json:"total_commission"`
	TotalOperatorShare decimal.Decimal `json:"total_operator_share"`
	TotalBookings      int             `json:"total_bookings"`
}

// CommissionReport is a full commission report for a period
type CommissionReport struct {
	PeriodStart time.Time              `json:"period_start"`
	PeriodEnd   time.Time              `json:"period_end"`
	GeneratedAt time.Time              `json:"generated_at"`
	Lines       []CommissionReportLine `json:"lines"`
	Totals      CommissionReportTotals `json:"totals"`
}

// ComputeTotals recomputes the report totals from its lines
func (r *CommissionReport) ComputeTotals() {
	totals := CommissionReportTotals{
		TotalIncome:        decimal.Zero,
		TotalFixedCosts:    decimal.Zero,
		TotalNetIncome:     decimal.Zero,
		TotalCommission:    decimal.Zero,
		TotalOperatorShare: decimal.Zero,
	}
	for _, line := range r.Lines {
		totals.TotalIncome = totals.TotalIncome.Add(line.TotalIncome)
		totals.TotalFixedCosts = totals.TotalFixedCosts.Add(line.FixedCosts)
		totals.TotalNetIncome = totals.TotalNetIncome.Add(line.NetIncome)
		totals.TotalCommission = totals.TotalCommission.Add(line.CommissionAmount)
		totals.TotalOperatorShare = totals.TotalOperatorShare.Add(line.OperatorShare)
		totals.TotalBookings += line.BookingCount
	}
	r.Totals = totals
}

// MonthPeriod returns the [start, end) bounds of a calendar month in UTC
func MonthPeriod(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
