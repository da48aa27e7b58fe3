package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// monthKey составной ключ кэша: месяц доступности конкретного расписания.
// Структурный ключ (а не конкатенация строк) гарантирует, что смена
// расписания никогда не переиспользует чужие закэшированные месяцы
type monthKey struct {
	ScheduleID int64
	Year       int
	Month      time.Month
}

// Service кэш слотов доступности с месячной гранулярностью.
// Кэш аддитивный: однажды полученный месяц не перезапрашивается и не
// вытесняется до конца жизни процесса. Неудачная загрузка месяц не
// занимает, поэтому повторная навигация приводит к новой попытке
type Service struct {
	client AcademyServiceClient
	logger Logger

	mu     sync.Mutex
	months map[monthKey]map[types.DateString]domain.AvailabilitySlot
}

// NewService создает новый экземпляр кэша доступности
func NewService(client AcademyServiceClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
		months: make(map[monthKey]map[types.DateString]domain.AvailabilitySlot),
	}
}

// GetMonth возвращает слоты доступности расписания на месяц.
// Для нерезолвленного расписания (scheduleID <= 0) возвращает пустую
// карту без сетевого вызова
func (s *Service) GetMonth(ctx context.Context, scheduleID int64, year int, month time.Month) (map[types.DateString]domain.AvailabilitySlot, error) {
	if scheduleID <= 0 {
		return map[types.DateString]domain.AvailabilitySlot{}, nil
	}
	if year <= 0 || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: year=%d, month=%d", ErrInvalidInput, year, int(month))
	}

	key := monthKey{ScheduleID: scheduleID, Year: year, Month: month}

	s.mu.Lock()
	if cached, ok := s.months[key]; ok {
		s.mu.Unlock()
		return copySlots(cached), nil
	}
	s.mu.Unlock()

	// Сетевой вызов выполняется вне блокировки: параллельные загрузки
	// разных месяцев не должны ждать друг друга
	fetched, err := s.client.GetMonthAvailability(ctx, scheduleID, year, month)
	if err != nil {
		s.logger.Warn("GetMonth: fetch failed for schedule=%d, %d-%02d: %v", scheduleID, year, int(month), err)
		return nil, fmt.Errorf("%w: schedule=%d, %d-%02d: %v", ErrFetchFailed, scheduleID, year, int(month), err)
	}

	slots := make(map[types.DateString]domain.AvailabilitySlot, len(fetched))
	for _, f := range fetched {
		date := types.DateString(f.Date)
		if err := date.Validate(); err != nil {
			s.logger.Warn("GetMonth: skipping slot with invalid date %q: %v", f.Date, err)
			continue
		}
		slots[date] = domain.AvailabilitySlot{
			Date:           date,
			AvailableSlots: f.AvailableSlots,
			Price:          f.Price,
			IsBookingOpen:  f.IsBookingOpen,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Запоздавший ответ отбрасывается только если месяц уже закэширован
	// конкурирующей загрузкой; слоты месяца неизменяемы, поэтому ранее
	// сохранённая версия эквивалентна
	if cached, ok := s.months[key]; ok {
		return copySlots(cached), nil
	}

	s.months[key] = slots
	s.logger.Info("GetMonth: cached %d slots for schedule=%d, %d-%02d", len(slots), scheduleID, year, int(month))

	return copySlots(slots), nil
}

// CachedSlot возвращает закэшированный слот на дату, если его месяц уже загружен.
// Незагруженный месяц трактуется как «доступность неизвестна», не как ошибка
func (s *Service) CachedSlot(scheduleID int64, date types.DateString) (domain.AvailabilitySlot, bool) {
	t, err := date.Time()
	if err != nil {
		return domain.AvailabilitySlot{}, false
	}

	key := monthKey{ScheduleID: scheduleID, Year: t.Year(), Month: t.Month()}

	s.mu.Lock()
	defer s.mu.Unlock()

	month, ok := s.months[key]
	if !ok {
		return domain.AvailabilitySlot{}, false
	}
	slot, ok := month[date]
	return slot, ok
}

// copySlots копирует карту месяца, защищая кэш от мутаций вызывающей стороной
func copySlots(src map[types.DateString]domain.AvailabilitySlot) map[types.DateString]domain.AvailabilitySlot {
	dst := make(map[types.DateString]domain.AvailabilitySlot, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
