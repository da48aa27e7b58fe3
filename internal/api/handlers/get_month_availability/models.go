package get_month_availability

import (
	getMonthAvailability "github.com/m1shk4/ASB-BookingFront/internal/usecase/get_month_availability"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	ScheduleID int64              `json:"scheduleId"`
	Year       int                `json:"year"`
	Month      int                `json:"month"`
	Slots      []AvailabilitySlot `json:"slots"`
}

// AvailabilitySlot модель слота доступности
type AvailabilitySlot struct {
	Date           string  `json:"date"`
	AvailableSlots int     `json:"availableSlots"`
	Price          float64 `json:"price"`
	IsBookingOpen  bool    `json:"isBookingOpen"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *MonthAvailabilityResponse {
	slots := make([]AvailabilitySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailabilitySlot{
			Date:           slot.Date.String(),
			AvailableSlots: slot.AvailableSlots,
			Price:          slot.Price,
			IsBookingOpen:  slot.IsBookingOpen,
		}
	}

	return &MonthAvailabilityResponse{
		ScheduleID: resp.ScheduleID,
		Year:       resp.Year,
		Month:      int(resp.Month),
		Slots:      slots,
	}
}
