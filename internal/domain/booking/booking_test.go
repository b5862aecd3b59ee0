package booking

import (
	"testing"

	"github.com/rentops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	period := mustRange(t, day(2024, 5, 10), day(2024, 5, 12))
	quote := Quote{
		Days:    2,
		Total:   valueobject.NewMoneyEUR(decimal.NewFromInt(100)),
		Deposit: valueobject.NewMoneyEUR(decimal.NewFromInt(20)),
	}

	t.Run("creates pending booking", func(t *testing.T) {
		b, err := NewBooking(uuid.New(), "Jane Miller", period, quote)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
		assert.True(t, b.TotalPrice.Equal(decimal.NewFromInt(100)))
		assert.True(t, b.Deposit.Equal(decimal.NewFromInt(20)))
		assert.Equal(t, period, b.Period())
	})

	t.Run("rejects nil vehicle", func(t *testing.T) {
		_, err := NewBooking(uuid.Nil, "Jane Miller", period, quote)
		assert.Error(t, err)
	})

	t.Run("rejects empty customer name", func(t *testing.T) {
		_, err := NewBooking(uuid.New(), "", period, quote)
		assert.Error(t, err)
	})
}

func TestBookingLifecycle(t *testing.T) {
	newPending := func(t *testing.T) *Booking {
		b, err := NewBooking(uuid.New(), "Jane Miller", mustRange(t, day(2024, 5, 10), day(2024, 5, 12)), Quote{})
		require.NoError(t, err)
		return b
	}

	t.Run("full happy path", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.Start())
		require.NoError(t, b.Complete())
		assert.Equal(t, StatusCompleted, b.Status)
	})

	t.Run("cannot start before confirming", func(t *testing.T) {
		b := newPending(t)
		assert.Error(t, b.Start())
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm())
		assert.Error(t, b.Confirm())
	})

	t.Run("cancel from pending and confirmed", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Cancel("customer no-show"))
		assert.Equal(t, StatusCancelled, b.Status)
		assert.NotNil(t, b.CancelledAt)
		assert.Equal(t, "customer no-show", b.CancelReason)

		b2 := newPending(t)
		require.NoError(t, b2.Confirm())
		require.NoError(t, b2.Cancel(""))
	})

	t.Run("cannot cancel once in progress", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.Start())
		assert.Error(t, b.Cancel("too late"))
	})
}

func TestBookingReschedule(t *testing.T) {
	b, err := NewBooking(uuid.New(), "Jane Miller", mustRange(t, day(2024, 5, 10), day(2024, 5, 12)), Quote{})
	require.NoError(t, err)

	newPeriod := mustRange(t, day(2024, 6, 1), day(2024, 6, 5))
	newQuote := Quote{Days: 4, Total: valueobject.NewMoneyEUR(decimal.NewFromInt(200)), Deposit: valueobject.NewMoneyEUR(decimal.NewFromInt(40))}

	require.NoError(t, b.Reschedule(newPeriod, newQuote))
	assert.Equal(t, newPeriod, b.Period())
	assert.True(t, b.TotalPrice.Equal(decimal.NewFromInt(200)))

	t.Run("terminal bookings cannot move", func(t *testing.T) {
		require.NoError(t, b.Cancel(""))
		assert.Error(t, b.Reschedule(newPeriod, newQuote))
	})
}
