package domain

import "github.com/m1shk4/ASB-BookingFront/pkg/types"

// DraftKey identifies a persisted draft: one draft per client per item.
type DraftKey struct {
	ClientID string
	ItemType ItemType
	ItemID   int64
}

// Participant is one person on an in-progress booking.
// ID is a draft-local sequence number, never sent as a primary key.
type Participant struct {
	ID           int64
	FirstName    string
	LastName     string
	DateOfBirth  types.DateString
	Gender       string
	SkillLevel   string
	MedicalNotes string
	DailyHours   int
}

// EffectiveDailyHours returns the hour multiplier, defaulting to 1
func (p *Participant) EffectiveDailyHours() int {
	if p.DailyHours < MinDailyHours {
		return DefaultDailyHours
	}
	return p.DailyHours
}

// Contact guest contact fields of a draft
type Contact struct {
	Name  string
	Email string
	Phone string
}

// BookingDraft is an in-progress, unsubmitted booking.
// Persisted under a key namespaced by (client, item); destroyed only
// on successful submission.
type BookingDraft struct {
	Contact       Contact
	Participants  []Participant
	SelectedDates []types.DateString
	ScheduleID    int64
	CouponCode    string
	Discount      *Discount
}

// NewBookingDraft returns a fresh draft with the single mandatory participant
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		Participants: []Participant{
			{ID: 1, DailyHours: DefaultDailyHours},
		},
		SelectedDates: []types.DateString{},
	}
}

// HasDate returns true if the date is already selected
func (d *BookingDraft) HasDate(date types.DateString) bool {
	for _, sel := range d.SelectedDates {
		if sel == date {
			return true
		}
	}
	return false
}

// DropDatesBefore removes selected dates strictly before the given day.
// Returns the number of dates dropped.
func (d *BookingDraft) DropDatesBefore(today types.DateString) int {
	kept := d.SelectedDates[:0]
	dropped := 0
	for _, date := range d.SelectedDates {
		if date.IsBefore(today) {
			dropped++
			continue
		}
		kept = append(kept, date)
	}
	d.SelectedDates = kept
	return dropped
}
