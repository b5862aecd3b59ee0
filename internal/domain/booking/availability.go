package booking

import (
	"github.com/google/uuid"
)

// AvailabilityResult is the outcome of an availability check
type AvailabilityResult struct {
	Available            bool       `json:"available"`
	ConflictingBookingID *uuid.UUID `json:"conflicting_booking_id,omitempty"`
}

// FindConflict scans the given bookings for one that occupies the requested
// period. Only bookings in a blocking status count; excludeID skips one
// booking so an edit never conflicts with itself. Returns the first
// conflicting booking, or nil.
func FindConflict(existing []Booking, requested DateRange, excludeID *uuid.UUID) *Booking {
	for i := range existing {
		b := &existing[i]
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if !b.Status.Blocks() {
			continue
		}
		if requested.Overlaps(b.Period()) {
			return b
		}
	}
	return nil
}

// CheckAvailability applies FindConflict to a consistent snapshot of a
// vehicle's bookings and folds the result into an AvailabilityResult.
func CheckAvailability(existing []Booking, requested DateRange, excludeID *uuid.UUID) AvailabilityResult {
	if conflict := FindConflict(existing, requested, excludeID); conflict != nil {
		id := conflict.ID
		return AvailabilityResult{Available: false, ConflictingBookingID: &id}
	}
	return AvailabilityResult{Available: true}
}
