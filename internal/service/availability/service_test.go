package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAcademyClient struct {
	calls int
	slots []academyservice.AvailabilitySlot
	err   error
}

func (c *fakeAcademyClient) GetMonthAvailability(_ context.Context, _ int64, _ int, _ time.Month) ([]academyservice.AvailabilitySlot, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.slots, nil
}

func TestGetMonthSecondCallServedFromCache(t *testing.T) {
	client := &fakeAcademyClient{
		slots: []academyservice.AvailabilitySlot{
			{Date: "2026-07-01", AvailableSlots: 3, Price: 50, IsBookingOpen: true},
			{Date: "2026-07-02", AvailableSlots: 0, Price: 50, IsBookingOpen: true},
		},
	}
	svc := NewService(client, nopLogger{})

	first, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.calls, "cached month must not be re-fetched")
}

func TestGetMonthFailureLeavesMonthUncached(t *testing.T) {
	client := &fakeAcademyClient{err: errors.New("upstream down")}
	svc := NewService(client, nopLogger{})

	_, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.ErrorIs(t, err, ErrFetchFailed)

	// Неудача не занимает месяц: следующий запрос приводит к новой попытке
	client.err = nil
	client.slots = []academyservice.AvailabilitySlot{
		{Date: "2026-07-01", AvailableSlots: 3, Price: 50, IsBookingOpen: true},
	}

	slots, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.Equal(t, 2, client.calls)
}

func TestGetMonthScopedPerSchedule(t *testing.T) {
	client := &fakeAcademyClient{
		slots: []academyservice.AvailabilitySlot{
			{Date: "2026-07-01", AvailableSlots: 3, Price: 50, IsBookingOpen: true},
		},
	}
	svc := NewService(client, nopLogger{})

	_, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.NoError(t, err)

	// Другое расписание никогда не переиспользует чужой закэшированный месяц
	_, err = svc.GetMonth(context.Background(), 11, 2026, time.July)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestGetMonthUnresolvedScheduleSkipsNetwork(t *testing.T) {
	client := &fakeAcademyClient{}
	svc := NewService(client, nopLogger{})

	slots, err := svc.GetMonth(context.Background(), 0, 2026, time.July)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Equal(t, 0, client.calls)
}

func TestGetMonthSkipsSlotsWithInvalidDates(t *testing.T) {
	client := &fakeAcademyClient{
		slots: []academyservice.AvailabilitySlot{
			{Date: "2026-07-01", AvailableSlots: 3, Price: 50, IsBookingOpen: true},
			{Date: "not-a-date", AvailableSlots: 1, Price: 50, IsBookingOpen: true},
		},
	}
	svc := NewService(client, nopLogger{})

	slots, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestGetMonthReturnsCopies(t *testing.T) {
	client := &fakeAcademyClient{
		slots: []academyservice.AvailabilitySlot{
			{Date: "2026-07-01", AvailableSlots: 3, Price: 50, IsBookingOpen: true},
		},
	}
	svc := NewService(client, nopLogger{})

	first, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.NoError(t, err)
	delete(first, types.DateString("2026-07-01"))

	second, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.NoError(t, err)
	assert.Len(t, second, 1, "caller mutations must not leak into the cache")
}

func TestCachedSlotUnloadedMonthIsUnknown(t *testing.T) {
	client := &fakeAcademyClient{
		slots: []academyservice.AvailabilitySlot{
			{Date: "2026-07-01", AvailableSlots: 3, Price: 50, IsBookingOpen: true},
		},
	}
	svc := NewService(client, nopLogger{})

	_, ok := svc.CachedSlot(10, "2026-07-01")
	assert.False(t, ok)

	_, err := svc.GetMonth(context.Background(), 10, 2026, time.July)
	require.NoError(t, err)

	slot, ok := svc.CachedSlot(10, "2026-07-01")
	require.True(t, ok)
	assert.Equal(t, 50.0, slot.Price)
}
