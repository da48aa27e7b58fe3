package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
	"github.com/m1shk4/ASB-BookingFront/internal/service/pricing"
	"github.com/m1shk4/ASB-BookingFront/internal/service/schedulegate"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// UseCase use case отправки бронирования
type UseCase struct {
	availability   AvailabilityService
	scheduleGate   ScheduleGateService
	draftService   DraftService
	academyClient  AcademyServiceClient
	identityClient IdentityServiceClient
	timeProvider   TimeProvider
	logger         Logger

	mu       sync.Mutex
	inFlight map[domain.DraftKey]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	scheduleGate ScheduleGateService,
	draftService DraftService,
	academyClient AcademyServiceClient,
	identityClient IdentityServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability:   availability,
		scheduleGate:   scheduleGate,
		draftService:   draftService,
		academyClient:  academyClient,
		identityClient: identityClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		inFlight:       make(map[domain.DraftKey]struct{}),
	}
}

// Execute выполняет use case отправки бронирования.
// При успехе черновик очищается и возвращается ссылка на бронирование,
// выданная бэкендом. При любой неудаче черновик остаётся нетронутым,
// чтобы пользователь мог исправить данные и повторить отправку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: client=%s, %s id=%d, schedule=%d, participants=%d, dates=%d",
		req.ClientID, req.ItemType, req.ItemID, req.ScheduleID, len(req.Participants), len(req.SelectedDates))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Локальные предусловия — до любого сетевого вызова
	if precondErr := checkPreconditions(req); precondErr != nil {
		uc.logger.Warn("SubmitBooking: preconditions failed: %s", precondErr.Message)
		return nil, precondErr
	}

	// 3. Защита от дублирующейся отправки: по ключу черновика допускается
	// не более одного запроса в полёте
	key := domain.DraftKey{ClientID: req.ClientID, ItemType: req.ItemType, ItemID: req.ItemID}
	if !uc.acquire(key) {
		uc.logger.Warn("SubmitBooking: duplicate submission blocked for client=%s, %s id=%d",
			req.ClientID, req.ItemType, req.ItemID)
		return nil, ErrSubmissionInFlight
	}
	defer uc.release(key)

	// 4. Гейт расписания: окно активности и правило участников
	info, err := uc.scheduleGate.GetScheduleInfo(ctx, req.ItemType, req.ItemID, req.ScheduleID)
	if err != nil {
		if errors.Is(err, schedulegate.ErrScheduleNotFound) {
			uc.logger.Warn("SubmitBooking: schedule id=%d not found", req.ScheduleID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get schedule id=%d: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	today := types.NewDateString(uc.timeProvider.Now())
	if msg := schedulegate.RuleViolationMessage(info.Window, info.Rule, len(req.Participants), today); msg != nil {
		uc.logger.Warn("SubmitBooking: gate violation for schedule id=%d: %s", req.ScheduleID, *msg)
		return nil, &GateViolationError{Message: *msg}
	}

	// 5. Расчёт стоимости
	quote := uc.computeQuote(ctx, req, info)

	// 6. Определяем пользователя: аутентифицированный профиль или гость
	var userID *int64
	if req.BearerToken != "" {
		if profile := uc.identityClient.GetProfileWithGracefulDegradation(ctx, req.BearerToken); profile != nil {
			userID = &profile.ID
		}
	}

	// 7. Собираем и отправляем итоговый payload. Бэкенд выполняет
	// авторитетную перепроверку; клиентские суммы включаются, чтобы
	// расхождение было обнаружено
	bookingReq := buildBookingRequest(req, userID, quote)

	resp, err := uc.academyClient.InitiateBooking(ctx, bookingReq)
	if err != nil {
		var rejection *academyservice.RejectionError
		if errors.As(err, &rejection) {
			uc.logger.Warn("SubmitBooking: backend rejected booking for client=%s, %s id=%d: %s",
				req.ClientID, req.ItemType, req.ItemID, rejection.Message)
			return nil, &BackendRejectionError{Message: rejection.Message}
		}
		uc.logger.Error("SubmitBooking: backend call failed for client=%s, %s id=%d: %v",
			req.ClientID, req.ItemType, req.ItemID, err)
		return nil, fmt.Errorf("%w: backend call failed: %v", ErrInternal, err)
	}

	// 8. Успех подтверждён — очищаем черновик. Ошибка очистки не отменяет
	// состоявшееся бронирование
	if err := uc.draftService.Clear(ctx, key); err != nil {
		uc.logger.Error("SubmitBooking: failed to clear draft for client=%s, %s id=%d: %v",
			req.ClientID, req.ItemType, req.ItemID, err)
	}

	uc.logger.Info("SubmitBooking: booking confirmed for client=%s, %s id=%d, reference=%s",
		req.ClientID, req.ItemType, req.ItemID, resp.Data.BookingToken)

	return &Response{
		BookingReference: resp.Data.BookingToken,
		Quote:            quote,
	}, nil
}

// computeQuote вычисляет стоимость по режиму бронирования.
// Для курсов цены дат берутся из кэша доступности; месяц, который не
// удалось загрузить, не блокирует отправку — для его дат действует
// базовая цена расписания
func (uc *UseCase) computeQuote(ctx context.Context, req *Request, info *domain.ScheduleInfo) domain.Quote {
	if req.ItemType == domain.ItemTypePackage {
		return pricing.ComputePackage(info.BasePrice, len(req.Participants), req.Discount)
	}

	slots := make(map[types.DateString]domain.AvailabilitySlot)
	for _, monthOf := range selectedMonths(req.SelectedDates) {
		month, err := uc.availability.GetMonth(ctx, req.ScheduleID, monthOf.year, monthOf.month)
		if err != nil {
			uc.logger.Warn("SubmitBooking: availability unavailable for %d-%02d, using base price: %v",
				monthOf.year, int(monthOf.month), err)
			continue
		}
		for date, slot := range month {
			slots[date] = slot
		}
	}

	return pricing.Compute(req.SelectedDates, slots, req.Participants, info.BasePrice, req.Discount)
}

// buildBookingRequest собирает payload для AcademyService
func buildBookingRequest(req *Request, userID *int64, quote domain.Quote) academyservice.InitiateBookingRequest {
	participants := make([]academyservice.BookingParticipant, len(req.Participants))
	for i, p := range req.Participants {
		participants[i] = academyservice.BookingParticipant{
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			DateOfBirth:  p.DateOfBirth.String(),
			Gender:       p.Gender,
			SkillLevel:   p.SkillLevel,
			MedicalNotes: p.MedicalNotes,
			DailyHours:   p.EffectiveDailyHours(),
		}
	}

	var dates []string
	if req.ItemType == domain.ItemTypeCourse {
		dates = make([]string, len(req.SelectedDates))
		for i, date := range req.SelectedDates {
			dates[i] = date.String()
		}
	}

	return academyservice.InitiateBookingRequest{
		UserID:         userID,
		GuestName:      req.Contact.Name,
		GuestEmail:     req.Contact.Email,
		GuestPhone:     req.Contact.Phone,
		ItemType:       string(req.ItemType),
		ItemID:         req.ItemID,
		ScheduleID:     req.ScheduleID,
		Participants:   participants,
		BookedDates:    dates,
		CouponCode:     req.CouponCode,
		OriginalAmount: quote.Subtotal,
		DiscountAmount: quote.DiscountAmount,
		FinalAmount:    quote.FinalPrice,
	}
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

// acquire помечает ключ как «отправка в полёте»
func (uc *UseCase) acquire(key domain.DraftKey) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[key]; busy {
		return false
	}
	uc.inFlight[key] = struct{}{}
	return true
}

// release снимает пометку «отправка в полёте»
func (uc *UseCase) release(key domain.DraftKey) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, key)
}
