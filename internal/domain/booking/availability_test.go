package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBooking(t *testing.T, vehicleID uuid.UUID, r DateRange, status BookingStatus) Booking {
	t.Helper()
	b, err := NewBooking(vehicleID, "Test Customer", r, Quote{})
	require.NoError(t, err)
	b.Status = status
	return *b
}

func TestCheckAvailability(t *testing.T) {
	vehicleID := uuid.New()

	t.Run("no bookings means available", func(t *testing.T) {
		res := CheckAvailability(nil, mustRange(t, day(2024, 5, 10), day(2024, 5, 12)), nil)
		assert.True(t, res.Available)
		assert.Nil(t, res.ConflictingBookingID)
	})

	t.Run("overlapping pending booking blocks", func(t *testing.T) {
		existing := makeBooking(t, vehicleID, mustRange(t, day(2024, 5, 11), day(2024, 5, 14)), StatusPending)
		res := CheckAvailability([]Booking{existing}, mustRange(t, day(2024, 5, 10), day(2024, 5, 12)), nil)
		assert.False(t, res.Available)
		require.NotNil(t, res.ConflictingBookingID)
		assert.Equal(t, existing.ID, *res.ConflictingBookingID)
	})

	t.Run("terminal statuses never block", func(t *testing.T) {
		overlapping := mustRange(t, day(2024, 5, 11), day(2024, 5, 14))
		for _, status := range []BookingStatus{StatusCompleted, StatusCancelled} {
			existing := makeBooking(t, vehicleID, overlapping, status)
			res := CheckAvailability([]Booking{existing}, mustRange(t, day(2024, 5, 10), day(2024, 5, 12)), nil)
			assert.True(t, res.Available, "status %s should not block", status)
		}
	})

	t.Run("adjacent ranges do not conflict", func(t *testing.T) {
		existing := makeBooking(t, vehicleID, mustRange(t, day(2024, 5, 12), day(2024, 5, 15)), StatusConfirmed)
		res := CheckAvailability([]Booking{existing}, mustRange(t, day(2024, 5, 10), day(2024, 5, 12)), nil)
		assert.True(t, res.Available)
	})

	t.Run("excluded booking never conflicts with itself", func(t *testing.T) {
		existing := makeBooking(t, vehicleID, mustRange(t, day(2024, 5, 10), day(2024, 5, 15)), StatusConfirmed)
		res := CheckAvailability([]Booking{existing}, mustRange(t, day(2024, 5, 11), day(2024, 5, 13)), &existing.ID)
		assert.True(t, res.Available)
	})

	t.Run("first conflict wins with multiple overlaps", func(t *testing.T) {
		first := makeBooking(t, vehicleID, mustRange(t, day(2024, 5, 9), day(2024, 5, 11)), StatusInProgress)
		second := makeBooking(t, vehicleID, mustRange(t, day(2024, 5, 11), day(2024, 5, 14)), StatusConfirmed)
		res := CheckAvailability([]Booking{first, second}, mustRange(t, day(2024, 5, 10), day(2024, 5, 13)), nil)
		assert.False(t, res.Available)
		assert.Equal(t, first.ID, *res.ConflictingBookingID)
	})
}

func TestBookingStatusBlocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusConfirmed.Blocks())
	assert.True(t, StatusInProgress.Blocks())
	assert.False(t, StatusCompleted.Blocks())
	assert.False(t, StatusCancelled.Blocks())
}
