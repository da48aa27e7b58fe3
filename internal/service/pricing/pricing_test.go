package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

func slotMap(prices map[types.DateString]float64) map[types.DateString]domain.AvailabilitySlot {
	slots := make(map[types.DateString]domain.AvailabilitySlot, len(prices))
	for date, price := range prices {
		slots[date] = domain.AvailabilitySlot{Date: date, Price: price, AvailableSlots: 5, IsBookingOpen: true}
	}
	return slots
}

func TestComputeSumsDatePricesPerParticipant(t *testing.T) {
	dates := []types.DateString{"2026-07-01", "2026-07-02"}
	slots := slotMap(map[types.DateString]float64{
		"2026-07-01": 50,
		"2026-07-02": 70,
	})
	participants := []domain.Participant{{ID: 1, DailyHours: 1}}

	quote := Compute(dates, slots, participants, 0, nil)

	assert.Equal(t, 120.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.DiscountAmount)
	assert.Equal(t, 120.0, quote.FinalPrice)
}

func TestComputePercentageDiscount(t *testing.T) {
	dates := []types.DateString{"2026-07-01", "2026-07-02"}
	slots := slotMap(map[types.DateString]float64{
		"2026-07-01": 50,
		"2026-07-02": 70,
	})
	participants := []domain.Participant{{ID: 1, DailyHours: 1}}
	discount := &domain.Discount{Type: domain.DiscountPercentage, Amount: 10}

	quote := Compute(dates, slots, participants, 0, discount)

	assert.Equal(t, 120.0, quote.Subtotal)
	assert.Equal(t, 12.0, quote.DiscountAmount)
	assert.Equal(t, 108.0, quote.FinalPrice)
}

func TestComputeDailyHoursMultiplyWholeDateSum(t *testing.T) {
	dates := []types.DateString{"2026-07-01", "2026-07-02"}
	slots := slotMap(map[types.DateString]float64{
		"2026-07-01": 50,
		"2026-07-02": 70,
	})
	participants := []domain.Participant{
		{ID: 1, DailyHours: 1},
		{ID: 2, DailyHours: 2},
	}

	quote := Compute(dates, slots, participants, 0, nil)

	// 120*1 + 120*2
	assert.Equal(t, 360.0, quote.Subtotal)
}

func TestComputeThreeDatesTwoHoursTenPercent(t *testing.T) {
	dates := []types.DateString{"2026-07-01", "2026-07-02", "2026-07-03"}
	slots := slotMap(map[types.DateString]float64{
		"2026-07-01": 20,
		"2026-07-02": 20,
		"2026-07-03": 20,
	})
	participants := []domain.Participant{{ID: 1, DailyHours: 2}}
	discount := &domain.Discount{Type: domain.DiscountPercentage, Amount: 10}

	quote := Compute(dates, slots, participants, 0, discount)

	assert.Equal(t, 120.0, quote.Subtotal)
	assert.Equal(t, 12.0, quote.DiscountAmount)
	assert.Equal(t, 108.0, quote.FinalPrice)
}

func TestComputeZeroDailyHoursDefaultsToOne(t *testing.T) {
	dates := []types.DateString{"2026-07-01"}
	slots := slotMap(map[types.DateString]float64{"2026-07-01": 40})
	participants := []domain.Participant{{ID: 1, DailyHours: 0}}

	quote := Compute(dates, slots, participants, 0, nil)

	assert.Equal(t, 40.0, quote.Subtotal)
}

func TestComputeFallbackPriceForUnknownDates(t *testing.T) {
	dates := []types.DateString{"2026-07-01", "2026-07-02"}
	slots := slotMap(map[types.DateString]float64{"2026-07-01": 50})
	participants := []domain.Participant{{ID: 1, DailyHours: 1}}

	quote := Compute(dates, slots, participants, 30, nil)

	assert.Equal(t, 80.0, quote.Subtotal)
}

func TestComputeUnknownDateWithoutFallbackCostsNothing(t *testing.T) {
	dates := []types.DateString{"2026-07-01"}
	participants := []domain.Participant{{ID: 1, DailyHours: 1}}

	quote := Compute(dates, nil, participants, 0, nil)

	assert.Equal(t, 0.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.FinalPrice)
}

func TestComputeFixedDiscountNeverGoesNegative(t *testing.T) {
	dates := []types.DateString{"2026-07-01"}
	slots := slotMap(map[types.DateString]float64{"2026-07-01": 50})
	participants := []domain.Participant{{ID: 1, DailyHours: 1}}
	discount := &domain.Discount{Type: domain.DiscountFixed, Amount: 200}

	quote := Compute(dates, slots, participants, 0, discount)

	assert.Equal(t, 50.0, quote.Subtotal)
	assert.Equal(t, 50.0, quote.DiscountAmount)
	assert.Equal(t, 0.0, quote.FinalPrice)
}

func TestComputeFullPercentageDiscountZeroesPrice(t *testing.T) {
	dates := []types.DateString{"2026-07-01"}
	slots := slotMap(map[types.DateString]float64{"2026-07-01": 75})
	participants := []domain.Participant{{ID: 1, DailyHours: 1}}
	discount := &domain.Discount{Type: domain.DiscountPercentage, Amount: 100}

	quote := Compute(dates, slots, participants, 0, discount)

	assert.Equal(t, 75.0, quote.DiscountAmount)
	assert.Equal(t, 0.0, quote.FinalPrice)
}

func TestComputeKeepsDiscountAcrossDateChanges(t *testing.T) {
	slots := slotMap(map[types.DateString]float64{
		"2026-07-01": 50,
		"2026-07-02": 70,
	})
	participants := []domain.Participant{{ID: 1, DailyHours: 1}}
	discount := &domain.Discount{Type: domain.DiscountPercentage, Amount: 10}

	before := Compute([]types.DateString{"2026-07-01"}, slots, participants, 0, discount)
	assert.Equal(t, 5.0, before.DiscountAmount)

	// Скидка продолжает применяться к новой сумме после изменения дат
	after := Compute([]types.DateString{"2026-07-01", "2026-07-02"}, slots, participants, 0, discount)
	assert.Equal(t, 120.0, after.Subtotal)
	assert.Equal(t, 12.0, after.DiscountAmount)
	assert.Equal(t, 108.0, after.FinalPrice)
}

func TestComputePackageFlatPricePerParticipant(t *testing.T) {
	quote := ComputePackage(200, 3, nil)

	assert.Equal(t, 600.0, quote.Subtotal)
	assert.Equal(t, 600.0, quote.FinalPrice)
}

func TestComputePackageIgnoresScheduleLength(t *testing.T) {
	discount := &domain.Discount{Type: domain.DiscountFixed, Amount: 50}

	quote := ComputePackage(200, 2, discount)

	assert.Equal(t, 400.0, quote.Subtotal)
	assert.Equal(t, 50.0, quote.DiscountAmount)
	assert.Equal(t, 350.0, quote.FinalPrice)
}
