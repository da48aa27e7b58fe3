package domain

import "github.com/m1shk4/ASB-BookingFront/pkg/types"

// ItemType distinguishes the two booking flows
type ItemType string

const (
	ItemTypeCourse  ItemType = "course"
	ItemTypePackage ItemType = "package"
)

// IsValid returns true if the item type is known
func (t ItemType) IsValid() bool {
	return t == ItemTypeCourse || t == ItemTypePackage
}

// ScheduleWindow is the inclusive date range during which a schedule is bookable.
// Read-only: fetched once per item, never mutated by this service.
type ScheduleWindow struct {
	StartDate types.DateString
	EndDate   types.DateString
	Active    bool
}

// Contains returns true if day falls within [StartDate, EndDate] inclusive.
// Both bounds are local calendar days, not instants.
func (w ScheduleWindow) Contains(day types.DateString) bool {
	return !day.IsBefore(w.StartDate) && !day.IsAfter(w.EndDate)
}

// BookingRule is a min/max participant-count constraint attached to an item.
// A nil bound means that bound is unconstrained.
type BookingRule struct {
	MinParticipants *int
	MaxParticipants *int
}

// ScheduleInfo aggregates everything the booking flow needs to know
// about a schedule: its window, the participant rule and the flat
// per-slot price used when a date has no slot-specific price.
type ScheduleInfo struct {
	ScheduleID int64
	Window     ScheduleWindow
	Rule       BookingRule
	BasePrice  float64
}
