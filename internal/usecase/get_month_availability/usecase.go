package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/service/availability"
)

// UseCase use case получения слотов доступности на месяц
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilitySvc AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availabilitySvc,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов месяца.
// Повторный запрос уже загруженного месяца обслуживается из кэша
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	slots, err := uc.availability.GetMonth(ctx, req.ScheduleID, req.Year, req.Month)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Warn("GetMonthAvailability: fetch failed for schedule=%d, %d-%02d: %v",
			req.ScheduleID, req.Year, int(req.Month), err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	result := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		result = append(result, Slot{
			Date:           slot.Date,
			AvailableSlots: slot.AvailableSlots,
			Price:          slot.Price,
			IsBookingOpen:  slot.IsBookingOpen,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.IsBefore(result[j].Date)
	})

	return &Response{
		ScheduleID: req.ScheduleID,
		Year:       req.Year,
		Month:      req.Month,
		Slots:      result,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month %d is out of range", ErrInvalidInput, int(req.Month))
	}
	return nil
}
