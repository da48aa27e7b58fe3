package get_quote

import (
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// Request модель запроса расчёта стоимости
type Request struct {
	ItemType      domain.ItemType
	ItemID        int64
	ScheduleID    int64
	SelectedDates []types.DateString   // только для курсов
	Participants  []domain.Participant // важны количество и dailyHours
	Discount      *domain.Discount     // опционально
}

// Response модель ответа с расчётом стоимости
type Response struct {
	Quote domain.Quote
}
