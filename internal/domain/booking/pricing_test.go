package booking

import (
	"testing"
	"time"

	"github.com/rentops/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuote(t *testing.T) {
	t.Run("three day rental at flat rate", func(t *testing.T) {
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 4))
		rate := valueobject.NewMoneyEUR(decimal.NewFromInt(20))

		q, err := CalculateQuote(rate, r, DefaultDepositRatio)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Days)
		assert.Equal(t, "60.00", q.Total.StringFixed(2))
		assert.Equal(t, "12.00", q.Deposit.StringFixed(2))
	})

	t.Run("sub-day rental bills a minimum of one day", func(t *testing.T) {
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 1).Add(5*time.Hour))
		rate := valueobject.NewMoneyEUR(decimal.NewFromFloat(49.90))

		q, err := CalculateQuote(rate, r, DefaultDepositRatio)
		require.NoError(t, err)
		assert.Equal(t, 1, q.Days)
		assert.Equal(t, "49.90", q.Total.StringFixed(2))
		assert.Equal(t, "9.98", q.Deposit.StringFixed(2))
	})

	t.Run("rounding happens only on final outputs", func(t *testing.T) {
		// 33.335 * 3 = 100.005, which rounds to 100.01; per-day rounding
		// first would give 33.34 * 3 = 100.02.
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 4))
		rate, err := valueobject.NewMoneyEURFromString("33.335")
		require.NoError(t, err)

		q, err := CalculateQuote(rate, r, decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "100.01", q.Total.StringFixed(2))
	})

	t.Run("zero deposit ratio", func(t *testing.T) {
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 2))
		rate := valueobject.NewMoneyEUR(decimal.NewFromInt(100))

		q, err := CalculateQuote(rate, r, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, q.Deposit.IsZero())
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 2))
		_, err := CalculateQuote(valueobject.NewMoneyEUR(decimal.NewFromInt(-1)), r, DefaultDepositRatio)
		assert.Error(t, err)
	})

	t.Run("deposit ratio outside unit interval is rejected", func(t *testing.T) {
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 2))
		rate := valueobject.NewMoneyEUR(decimal.NewFromInt(10))

		_, err := CalculateQuote(rate, r, decimal.NewFromFloat(1.5))
		assert.Error(t, err)
		_, err = CalculateQuote(rate, r, decimal.NewFromFloat(-0.1))
		assert.Error(t, err)
	})

	t.Run("quote is deterministic", func(t *testing.T) {
		r := mustRange(t, day(2024, 3, 10), day(2024, 3, 17))
		rate := valueobject.NewMoneyEUR(decimal.NewFromFloat(75.50))

		q1, err := CalculateQuote(rate, r, DefaultDepositRatio)
		require.NoError(t, err)
		q2, err := CalculateQuote(rate, r, DefaultDepositRatio)
		require.NoError(t, err)
		assert.Equal(t, q1.Days, q2.Days)
		assert.True(t, q1.Total.Equals(q2.Total))
		assert.True(t, q1.Deposit.Equals(q2.Deposit))
	})
}
