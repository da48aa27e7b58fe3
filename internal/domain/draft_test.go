package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

func TestNewBookingDraftHasMandatoryParticipant(t *testing.T) {
	draft := NewBookingDraft()

	require.Len(t, draft.Participants, 1)
	assert.Equal(t, int64(1), draft.Participants[0].ID)
	assert.Equal(t, DefaultDailyHours, draft.Participants[0].DailyHours)
	assert.Empty(t, draft.SelectedDates)
}

func TestDropDatesBeforeKeepsTodayAndFuture(t *testing.T) {
	draft := &BookingDraft{
		SelectedDates: []types.DateString{"2026-07-01", "2026-07-09", "2026-07-10", "2026-07-11"},
	}

	dropped := draft.DropDatesBefore("2026-07-10")

	assert.Equal(t, 2, dropped)
	assert.Equal(t, []types.DateString{"2026-07-10", "2026-07-11"}, draft.SelectedDates)
}

func TestDropDatesBeforeNothingToDrop(t *testing.T) {
	draft := &BookingDraft{SelectedDates: []types.DateString{"2026-07-10"}}

	assert.Equal(t, 0, draft.DropDatesBefore("2026-07-10"))
	assert.Len(t, draft.SelectedDates, 1)
}

func TestHasDate(t *testing.T) {
	draft := &BookingDraft{SelectedDates: []types.DateString{"2026-07-10"}}

	assert.True(t, draft.HasDate("2026-07-10"))
	assert.False(t, draft.HasDate("2026-07-11"))
}

func TestEffectiveDailyHoursDefaultsToOne(t *testing.T) {
	p := Participant{DailyHours: 0}
	assert.Equal(t, DefaultDailyHours, p.EffectiveDailyHours())

	p.DailyHours = 3
	assert.Equal(t, 3, p.EffectiveDailyHours())
}

func TestScheduleWindowContainsInclusive(t *testing.T) {
	w := ScheduleWindow{StartDate: "2026-06-01", EndDate: "2026-08-31", Active: true}

	assert.True(t, w.Contains("2026-06-01"))
	assert.True(t, w.Contains("2026-08-31"))
	assert.False(t, w.Contains("2026-05-31"))
	assert.False(t, w.Contains("2026-09-01"))
}
