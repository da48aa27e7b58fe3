package get_month_availability

import (
	"time"

	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// Request модель запроса слотов доступности на месяц
type Request struct {
	ScheduleID int64
	Year       int
	Month      time.Month
}

// Slot модель слота доступности в ответе
type Slot struct {
	Date           types.DateString
	AvailableSlots int
	Price          float64
	IsBookingOpen  bool
}

// Response модель ответа со слотами месяца
type Response struct {
	ScheduleID int64
	Year       int
	Month      time.Month
	Slots      []Slot
}
