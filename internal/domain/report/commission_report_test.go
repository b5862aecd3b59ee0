package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCommissionReportLine(t *testing.T) {
	t.Run("standard split", func(t *testing.T) {
		line := NewCommissionReportLine(uuid.New(), "ZH-100001", 4,
			decimal.NewFromInt(900), decimal.NewFromInt(100), decimal.NewFromInt(20))

		assert.Equal(t, "800", line.NetIncome.String())
		assert.Equal(t, "160", line.CommissionAmount.String())
		assert.Equal(t, "640", line.OperatorShare.String())
	})

	t.Run("costs above income drive the split negative", func(t *testing.T) {
		line := NewCommissionReportLine(uuid.New(), "ZH-100002", 0,
			decimal.NewFromInt(100), decimal.NewFromInt(150), decimal.NewFromInt(30))

		assert.Equal(t, "-50", line.NetIncome.String())
		assert.Equal(t, "-15", line.CommissionAmount.String())
		assert.Equal(t, "-35", line.OperatorShare.String())
	})

	t.Run("zero commission percent gives everything to the operator", func(t *testing.T) {
		line := NewCommissionReportLine(uuid.New(), "ZH-100003", 2,
			decimal.NewFromInt(500), decimal.NewFromInt(50), decimal.Zero)

		assert.True(t, line.CommissionAmount.IsZero())
		assert.Equal(t, "450", line.OperatorShare.String())
	})

	t.Run("line always balances", func(t *testing.T) {
		line := NewCommissionReportLine(uuid.New(), "ZH-100004", 7,
			decimal.NewFromFloat(1234.56), decimal.NewFromFloat(321.99), decimal.NewFromFloat(17.5))

		assert.True(t, line.CommissionAmount.Add(line.OperatorShare).Equal(line.NetIncome))
	})
}

func TestCommissionReportComputeTotals(t *testing.T) {
	t.Run("totals are plain sums across lines", func(t *testing.T) {
		r := CommissionReport{
			Lines: []CommissionReportLine{
				NewCommissionReportLine(uuid.New(), "ZH-200001", 5,
					decimal.NewFromInt(900), decimal.NewFromInt(100), decimal.NewFromInt(20)),
				NewCommissionReportLine(uuid.New(), "ZH-200002", 0,
					decimal.Zero, decimal.NewFromInt(50), decimal.NewFromInt(10)),
			},
		}
		r.ComputeTotals()

		assert.Equal(t, "900", r.Totals.TotalIncome.String())
		assert.Equal(t, "150", r.Totals.TotalFixedCosts.String())
		assert.Equal(t, "750", r.Totals.TotalNetIncome.String())
		assert.Equal(t, "155", r.Totals.TotalCommission.String())
		assert.Equal(t, "595", r.Totals.TotalOperatorShare.String())
		assert.Equal(t, 5, r.Totals.TotalBookings)
	})

	t.Run("empty report totals to zero", func(t *testing.T) {
		var r CommissionReport
		r.ComputeTotals()
		assert.True(t, r.Totals.TotalIncome.IsZero())
		assert.Zero(t, r.Totals.TotalBookings)
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		r := CommissionReport{
			Lines: []CommissionReportLine{
				NewCommissionReportLine(uuid.New(), "ZH-200003", 1,
					decimal.NewFromInt(100), decimal.NewFromInt(10), decimal.NewFromInt(15)),
			},
		}
		r.ComputeTotals()
		first := r.Totals
		r.ComputeTotals()
		assert.Equal(t, first, r.Totals)
	})
}

func TestMonthPeriod(t *testing.T) {
	t.Run("regular month", func(t *testing.T) {
		start, end := MonthPeriod(2025, time.March)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("december rolls into the next year", func(t *testing.T) {
		start, end := MonthPeriod(2024, time.December)
		assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
	})
}
