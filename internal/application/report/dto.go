package report

import (
	"time"

	"github.com/rentops/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionReportRequest selects the period of a commission report. Callers
// supply either year+month or an explicit RFC3339 start/end pair.
type CommissionReportRequest struct {
	Year  int    `form:"year" binding:"omitempty,min=2000,max=2200"`
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
	Start string `form:"start" binding:"omitempty"`
	End   string `form:"end" binding:"omitempty"`
}

// CommissionLineResponse is one vehicle's row in the commission report
type CommissionLineResponse struct {
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

// CommissionTotalsResponse sums all lines of the report
type CommissionTotalsResponse struct {
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalFixedCosts    decimal.Decimal `json:"total_fixed_costs"`
	TotalNetIncome     decimal.Decimal `json:"total_net_income"`
	TotalCommission    decimal.Decimal `json:"total_commission"`
	TotalOperatorShare decimal.Decimal `json:"total_operator_share"`
	TotalBookings      int             `json:"total_bookings"`
}

// CommissionReportResponse is the full commission report for a month
type CommissionReportResponse struct {
	PeriodStart time.Time                `json:"period_start"`
	PeriodEnd   time.Time                `json:"period_end"`
	GeneratedAt time.Time                `json:"generated_at"`
	Lines       []CommissionLineResponse `json:"lines"`
	Totals      CommissionTotalsResponse `json:"totals"`
}

// ToCommissionReportResponse converts a domain CommissionReport to its API shape
func ToCommissionReportResponse(r *report.CommissionReport) CommissionReportResponse {
	lines := make([]CommissionLineResponse, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = CommissionLineResponse{
			VehicleID:         line.VehicleID,
			Plate:             line.Plate,
			DepositorID:       line.DepositorID,
			DepositorName:     line.DepositorName,
			BookingCount:      line.BookingCount,
			TotalIncome:       line.TotalIncome,
			FixedCosts:        line.FixedCosts,
			NetIncome:         line.NetIncome,
			CommissionPercent: line.CommissionPercent,
			CommissionAmount:  line.CommissionAmount,
			OperatorShare:     line.OperatorShare,
			FetchFailed:       line.FetchFailed,
		}
	}
	return CommissionReportResponse{
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		GeneratedAt: r.GeneratedAt,
		Lines:       lines,
		Totals: CommissionTotalsResponse{
			TotalIncome:        r.Totals.TotalIncome,
			TotalFixedCosts:    r.Totals.TotalFixedCosts,
			TotalNetIncome:     r.Totals.TotalNetIncome,
			TotalCommission:    r.Totals.TotalCommission,
			TotalOperatorShare: r.Totals.TotalOperatorShare,
			TotalBookings:      r.Totals.TotalBookings,
		},
	}
}
