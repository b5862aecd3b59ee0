package booking

import (
	"testing"
	"time"

	"github.com/rentops/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) DateRange {
	t.Helper()
	r, err := NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := NewDateRange(day(2024, 5, 10), day(2024, 5, 12))
		require.NoError(t, err)
		assert.Equal(t, day(2024, 5, 10), r.Start)
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		_, err := NewDateRange(day(2024, 5, 10), day(2024, 5, 10))
		assert.ErrorIs(t, err, shared.ErrInvalidDateRange)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := NewDateRange(day(2024, 5, 12), day(2024, 5, 10))
		assert.ErrorIs(t, err, shared.ErrInvalidDateRange)
	})

	t.Run("zero instants are rejected", func(t *testing.T) {
		_, err := NewDateRange(time.Time{}, day(2024, 5, 10))
		assert.ErrorIs(t, err, shared.ErrInvalidDateRange)
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, day(2024, 5, 10), day(2024, 5, 15))

	tests := []struct {
		name    string
		other   DateRange
		overlap bool
	}{
		{"identical", mustRange(t, day(2024, 5, 10), day(2024, 5, 15)), true},
		{"contained", mustRange(t, day(2024, 5, 11), day(2024, 5, 13)), true},
		{"containing", mustRange(t, day(2024, 5, 9), day(2024, 5, 16)), true},
		{"partial front", mustRange(t, day(2024, 5, 8), day(2024, 5, 11)), true},
		{"partial back", mustRange(t, day(2024, 5, 14), day(2024, 5, 18)), true},
		{"touching end boundary", mustRange(t, day(2024, 5, 15), day(2024, 5, 20)), false},
		{"touching start boundary", mustRange(t, day(2024, 5, 5), day(2024, 5, 10)), false},
		{"disjoint before", mustRange(t, day(2024, 5, 1), day(2024, 5, 5)), false},
		{"disjoint after", mustRange(t, day(2024, 5, 20), day(2024, 5, 25)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, base.Overlaps(tt.other))
			// overlap is symmetric
			assert.Equal(t, tt.overlap, tt.other.Overlaps(base))
		})
	}
}

func TestDateRangeDays(t *testing.T) {
	t.Run("whole days", func(t *testing.T) {
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 4))
		assert.Equal(t, 3, r.Days())
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 2).Add(6*time.Hour))
		assert.Equal(t, 2, r.Days())
	})

	t.Run("shorter than a day still bills one", func(t *testing.T) {
		r := mustRange(t, day(2024, 1, 1), day(2024, 1, 1).Add(3*time.Hour))
		assert.Equal(t, 1, r.Days())
	})
}

func TestDateRangeContains(t *testing.T) {
	r := mustRange(t, day(2024, 5, 10), day(2024, 5, 15))
	assert.True(t, r.Contains(day(2024, 5, 10)))
	assert.True(t, r.Contains(day(2024, 5, 14)))
	assert.False(t, r.Contains(day(2024, 5, 15)))
	assert.False(t, r.Contains(day(2024, 5, 9)))
}
