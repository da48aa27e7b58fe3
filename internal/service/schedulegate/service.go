package schedulegate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// scheduleKey ключ мемоизации расписания
type scheduleKey struct {
	ItemType   domain.ItemType
	ItemID     int64
	ScheduleID int64
}

// Eligibility вердикт гейта для расписания и количества участников
type Eligibility struct {
	ScheduleActive bool
	RuleSatisfied  bool
	// Message содержит ровно одно сообщение о нарушении с наивысшим
	// приоритетом; nil — отправка разрешена
	Message *string
}

// Service гейт допуска к отправке бронирования.
// Окно расписания и правило бронирования запрашиваются у AcademyService
// один раз на элемент каталога и далее переиспользуются: окно read-only
// и сервисом не мутируется
type Service struct {
	client       AcademyServiceClient
	timeProvider TimeProvider
	logger       Logger

	mu        sync.Mutex
	schedules map[scheduleKey]*domain.ScheduleInfo
}

// NewService создает новый экземпляр гейта расписаний
func NewService(client AcademyServiceClient, logger Logger) *Service {
	return &Service{
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		schedules:    make(map[scheduleKey]*domain.ScheduleInfo),
	}
}

// GetScheduleInfo возвращает окно, правило и базовую цену расписания,
// запрашивая их у AcademyService не более одного раза
func (s *Service) GetScheduleInfo(ctx context.Context, itemType domain.ItemType, itemID, scheduleID int64) (*domain.ScheduleInfo, error) {
	if !itemType.IsValid() {
		return nil, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, itemType)
	}
	if itemID <= 0 || scheduleID <= 0 {
		return nil, fmt.Errorf("%w: itemID and scheduleID must be positive", ErrInvalidInput)
	}

	key := scheduleKey{ItemType: itemType, ItemID: itemID, ScheduleID: scheduleID}

	s.mu.Lock()
	if cached, ok := s.schedules[key]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	fetched, err := s.client.GetScheduleInfo(ctx, string(itemType), itemID, scheduleID)
	if err != nil {
		if errors.Is(err, academyservice.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("%w: failed to fetch schedule: %v", ErrInternal, err)
	}

	info := &domain.ScheduleInfo{
		ScheduleID: fetched.ScheduleID,
		Window: domain.ScheduleWindow{
			StartDate: types.DateString(fetched.StartDate),
			EndDate:   types.DateString(fetched.EndDate),
			Active:    fetched.Active,
		},
		Rule: domain.BookingRule{
			MinParticipants: fetched.MinParticipants,
			MaxParticipants: fetched.MaxParticipants,
		},
		BasePrice: fetched.BasePrice,
	}

	s.mu.Lock()
	s.schedules[key] = info
	s.mu.Unlock()

	return info, nil
}

// CheckEligibility определяет, допустима ли отправка бронирования
// для расписания с данным количеством участников
func (s *Service) CheckEligibility(ctx context.Context, itemType domain.ItemType, itemID, scheduleID int64, participantCount int) (*Eligibility, error) {
	info, err := s.GetScheduleInfo(ctx, itemType, itemID, scheduleID)
	if err != nil {
		return nil, err
	}

	today := types.NewDateString(s.timeProvider.Now())

	return &Eligibility{
		ScheduleActive: IsScheduleActive(info.Window, today),
		RuleSatisfied:  IsBookingRuleSatisfied(info.Rule, participantCount),
		Message:        RuleViolationMessage(info.Window, info.Rule, participantCount, today),
	}, nil
}
