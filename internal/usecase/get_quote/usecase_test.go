package get_quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/service/schedulegate"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAvailability struct {
	months map[time.Month]map[types.DateString]domain.AvailabilitySlot
	calls  int
	err    error
}

func (f *fakeAvailability) GetMonth(_ context.Context, _ int64, _ int, month time.Month) (map[types.DateString]domain.AvailabilitySlot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.months[month], nil
}

type fakeScheduleGate struct {
	info *domain.ScheduleInfo
	err  error
}

func (f *fakeScheduleGate) GetScheduleInfo(_ context.Context, _ domain.ItemType, _, _ int64) (*domain.ScheduleInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func scheduleFixture(basePrice float64) *domain.ScheduleInfo {
	return &domain.ScheduleInfo{
		ScheduleID: 3,
		Window: domain.ScheduleWindow{
			StartDate: "2026-06-01",
			EndDate:   "2026-08-31",
			Active:    true,
		},
		BasePrice: basePrice,
	}
}

func courseRequest(dates ...types.DateString) *Request {
	return &Request{
		ItemType:      domain.ItemTypeCourse,
		ItemID:        7,
		ScheduleID:    3,
		SelectedDates: dates,
		Participants:  []domain.Participant{{ID: 1, DailyHours: 1}},
	}
}

func TestExecuteCourseUsesSlotPrices(t *testing.T) {
	avail := &fakeAvailability{months: map[time.Month]map[types.DateString]domain.AvailabilitySlot{
		time.July: {
			"2026-07-01": {Date: "2026-07-01", Price: 50},
			"2026-07-02": {Date: "2026-07-02", Price: 70},
		},
	}}
	uc := NewUseCase(avail, &fakeScheduleGate{info: scheduleFixture(40)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), courseRequest("2026-07-01", "2026-07-02"))
	require.NoError(t, err)

	assert.Equal(t, 120.0, resp.Quote.Subtotal)
	assert.Equal(t, 120.0, resp.Quote.FinalPrice)
}

func TestExecuteCourseSpanningMonthsFetchesEach(t *testing.T) {
	avail := &fakeAvailability{months: map[time.Month]map[types.DateString]domain.AvailabilitySlot{
		time.July:   {"2026-07-31": {Date: "2026-07-31", Price: 50}},
		time.August: {"2026-08-01": {Date: "2026-08-01", Price: 60}},
	}}
	uc := NewUseCase(avail, &fakeScheduleGate{info: scheduleFixture(0)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), courseRequest("2026-07-31", "2026-08-01"))
	require.NoError(t, err)

	assert.Equal(t, 2, avail.calls)
	assert.Equal(t, 110.0, resp.Quote.Subtotal)
}

func TestExecuteCourseAvailabilityFailureFallsBackToBasePrice(t *testing.T) {
	avail := &fakeAvailability{err: errors.New("upstream down")}
	uc := NewUseCase(avail, &fakeScheduleGate{info: scheduleFixture(40)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), courseRequest("2026-07-01", "2026-07-02"))
	require.NoError(t, err)

	assert.Equal(t, 80.0, resp.Quote.Subtotal)
}

func TestExecutePackageFlatPrice(t *testing.T) {
	avail := &fakeAvailability{}
	uc := NewUseCase(avail, &fakeScheduleGate{info: scheduleFixture(200)}, nopLogger{})

	req := &Request{
		ItemType:   domain.ItemTypePackage,
		ItemID:     7,
		ScheduleID: 3,
		Participants: []domain.Participant{
			{ID: 1, DailyHours: 1},
			{ID: 2, DailyHours: 2},
			{ID: 3, DailyHours: 3},
		},
		Discount: &domain.Discount{Type: domain.DiscountFixed, Amount: 100},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Пакет не зависит от dailyHours и дат
	assert.Equal(t, 600.0, resp.Quote.Subtotal)
	assert.Equal(t, 500.0, resp.Quote.FinalPrice)
	assert.Equal(t, 0, avail.calls)
}

func TestExecuteScheduleNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{}, &fakeScheduleGate{err: schedulegate.ErrScheduleNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), courseRequest("2026-07-01"))
	require.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{}, &fakeScheduleGate{info: scheduleFixture(0)}, nopLogger{})

	req := courseRequest("2026-07-01")
	req.Participants = nil
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	req = courseRequest("not-a-date")
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	req = courseRequest("2026-07-01")
	req.Discount = &domain.Discount{Type: "BOGO", Amount: 1}
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}
