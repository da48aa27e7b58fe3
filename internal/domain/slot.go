package domain

import "github.com/m1shk4/ASB-BookingFront/pkg/types"

// AvailabilitySlot represents one bookable calendar date within a schedule.
// Immutable once fetched for a given month.
type AvailabilitySlot struct {
	Date           types.DateString
	AvailableSlots int
	Price          float64
	IsBookingOpen  bool
}

// IsBookable returns true if the date can still be selected
func (s *AvailabilitySlot) IsBookable() bool {
	return s.IsBookingOpen && s.AvailableSlots > 0
}

// IsFull returns true if the slot has no remaining capacity
func (s *AvailabilitySlot) IsFull() bool {
	return s.AvailableSlots <= 0
}
