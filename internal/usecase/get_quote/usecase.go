package get_quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/service/pricing"
	"github.com/m1shk4/ASB-BookingFront/internal/service/schedulegate"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// UseCase use case расчёта стоимости черновика.
// Расчёт чистый и пересчитывается на каждый запрос: результат никогда
// не обслуживается из кэша, чтобы правка участника не могла получить
// устаревшую сумму
type UseCase struct {
	availability AvailabilityService
	scheduleGate ScheduleGateService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilitySvc AvailabilityService, scheduleGate ScheduleGateService, logger Logger) *UseCase {
	return &UseCase{
		availability: availabilitySvc,
		scheduleGate: scheduleGate,
		logger:       logger,
	}
}

// Execute выполняет расчёт стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	info, err := uc.scheduleGate.GetScheduleInfo(ctx, req.ItemType, req.ItemID, req.ScheduleID)
	if err != nil {
		if errors.Is(err, schedulegate.ErrScheduleNotFound) {
			uc.logger.Warn("GetQuote: schedule id=%d not found", req.ScheduleID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetQuote: failed to get schedule id=%d: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if req.ItemType == domain.ItemTypePackage {
		quote := pricing.ComputePackage(info.BasePrice, len(req.Participants), req.Discount)
		return &Response{Quote: quote}, nil
	}

	// Цены дат берутся из кэша доступности; месяц, который не удалось
	// загрузить, не срывает расчёт — для его дат действует базовая цена
	slots := make(map[types.DateString]domain.AvailabilitySlot)
	for _, ym := range selectedMonths(req.SelectedDates) {
		month, err := uc.availability.GetMonth(ctx, req.ScheduleID, ym.year, ym.month)
		if err != nil {
			uc.logger.Warn("GetQuote: availability unavailable for %d-%02d, using base price: %v",
				ym.year, int(ym.month), err)
			continue
		}
		for date, slot := range month {
			slots[date] = slot
		}
	}

	quote := pricing.Compute(req.SelectedDates, slots, req.Participants, info.BasePrice, req.Discount)
	return &Response{Quote: quote}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.ItemType.IsValid() {
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, req.ItemType)
	}
	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}
	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
	}
	if len(req.Participants) < domain.MinParticipants {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}
	if req.Discount != nil && !req.Discount.Type.IsValidType() {
		return fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, req.Discount.Type)
	}
	for _, date := range req.SelectedDates {
		if err := date.Validate(); err != nil {
			return fmt.Errorf("%w: invalid selected date %q: %v", ErrInvalidInput, date, err)
		}
	}
	return nil
}

// yearMonth пара год-месяц
type yearMonth struct {
	year  int
	month time.Month
}

// selectedMonths возвращает уникальные месяцы выбранных дат
func selectedMonths(dates []types.DateString) []yearMonth {
	seen := make(map[yearMonth]struct{})
	months := make([]yearMonth, 0, 2)
	for _, date := range dates {
		t, err := date.Time()
		if err != nil {
			continue
		}
		ym := yearMonth{year: t.Year(), month: t.Month()}
		if _, ok := seen[ym]; ok {
			continue
		}
		seen[ym] = struct{}{}
		months = append(months, ym)
	}
	return months
}
