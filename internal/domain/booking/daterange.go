package booking

import (
	"time"

	"github.com/rentops/backend/internal/domain/shared"
)

// DateRange is a half-open rental period [Start, End).
// The end instant must strictly follow the start instant.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a DateRange, rejecting empty or inverted ranges
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, shared.ErrInvalidDateRange
	}
	if !end.After(start) {
		return DateRange{}, shared.ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two ranges intersect. Ranges are half-open, so a
// booking ending at the instant another starts does not overlap - same-day
// hand-off at the boundary is the expected case.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains reports whether t falls within the range
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Duration returns the length of the range
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Days returns the number of billable days: the duration rounded up to whole
// 24h periods, never less than one.
func (r DateRange) Days() int {
	d := r.Duration()
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
