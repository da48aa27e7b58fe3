package submit_booking

import (
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// Request модель запроса на отправку бронирования
type Request struct {
	ClientID    string          // Идентификатор клиента (владелец черновика)
	BearerToken string          // Токен аутентификации (опционально, для гостей пустой)
	ItemType    domain.ItemType // course | package
	ItemID      int64           // ID курса или пакета
	ScheduleID  int64           // ID выбранного расписания

	Contact       domain.Contact       // Гостевые контактные поля
	Participants  []domain.Participant // Полный список участников
	SelectedDates []types.DateString   // Выбранные даты (только для курсов)

	CouponCode string           // Применённый код купона (опционально)
	Discount   *domain.Discount // Валидированная скидка (опционально)
}

// Response модель ответа с результатом бронирования
type Response struct {
	// BookingReference ссылка на бронирование, выданная бэкендом.
	// Клиентская сторона никогда не генерирует идентификатор сама
	BookingReference string
	Quote            domain.Quote
}
