package drafts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	draftRepo "github.com/m1shk4/ASB-BookingFront/internal/infra/storage/draft"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// Service сервис черновиков бронирований.
//
// Жизненный цикл черновика — явная двухфазная машина состояний
// RESTORING -> READY: сохранение принимается только после того, как
// восстановление по этому ключу завершилось хотя бы один раз. Это
// инвариант корректности, а не оптимизация
type Service struct {
	repo           DraftRepository
	identityClient IdentityServiceClient
	timeProvider   TimeProvider
	logger         Logger

	mu    sync.Mutex
	ready map[domain.DraftKey]struct{}
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(repo DraftRepository, identityClient IdentityServiceClient, logger Logger) *Service {
	return &Service{
		repo:           repo,
		identityClient: identityClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		ready:          make(map[domain.DraftKey]struct{}),
	}
}

// Restore восстанавливает черновик по ключу.
// Отсутствующий черновик заменяется свежим с одним обязательным участником.
// Даты строго раньше сегодняшнего календарного дня отбрасываются — нельзя
// воскресить бронирование на уже прошедшие дни.
// Контактные поля восстанавливаются из черновика только для гостей: при
// наличии аутентифицированного профиля его поля всегда побеждают. Правило
// приоритета вычисляется ровно один раз здесь, а не в двух независимо
// мутируемых ячейках состояния
func (s *Service) Restore(ctx context.Context, key domain.DraftKey, bearerToken string) (*domain.BookingDraft, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	draft, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			draft = domain.NewBookingDraft()
			s.logger.Info("Restore: no persisted draft for client=%s, %s id=%d, starting fresh",
				key.ClientID, key.ItemType, key.ItemID)
		} else {
			s.logger.Error("Restore: repository error for client=%s, %s id=%d: %v",
				key.ClientID, key.ItemType, key.ItemID, err)
			return nil, fmt.Errorf("%w: Restore - repository error: %v", ErrInternal, err)
		}
	}

	today := types.NewDateString(s.timeProvider.Now())
	if dropped := draft.DropDatesBefore(today); dropped > 0 {
		s.logger.Info("Restore: dropped %d stale dates for client=%s, %s id=%d",
			dropped, key.ClientID, key.ItemType, key.ItemID)
	}

	if len(draft.Participants) == 0 {
		draft.Participants = domain.NewBookingDraft().Participants
	}

	if bearerToken != "" {
		if profile := s.identityClient.GetProfileWithGracefulDegradation(ctx, bearerToken); profile != nil {
			draft.Contact = domain.Contact{
				Name:  profile.FullName(),
				Email: profile.Email,
				Phone: profile.Phone,
			}
		}
	}

	s.mu.Lock()
	s.ready[key] = struct{}{}
	s.mu.Unlock()

	return draft, nil
}

// Persist сохраняет черновик целиком (last-write-wins).
// До первого успешного Restore по этому ключу запись отклоняется
func (s *Service) Persist(ctx context.Context, key domain.DraftKey, draft *domain.BookingDraft) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	_, restored := s.ready[key]
	s.mu.Unlock()
	if !restored {
		s.logger.Warn("Persist: rejected write before restore for client=%s, %s id=%d",
			key.ClientID, key.ItemType, key.ItemID)
		return ErrRestoreNotCompleted
	}

	if err := validateDraft(draft); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, key, draft); err != nil {
		s.logger.Error("Persist: repository error for client=%s, %s id=%d: %v",
			key.ClientID, key.ItemType, key.ItemID, err)
		return fmt.Errorf("%w: Persist - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Clear удаляет черновик. Вызывается ровно один раз — сразу после того,
// как бэкенд подтвердил успешное бронирование. При неудачной отправке
// черновик не трогается
func (s *Service) Clear(ctx context.Context, key domain.DraftKey) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		s.logger.Error("Clear: repository error for client=%s, %s id=%d: %v",
			key.ClientID, key.ItemType, key.ItemID, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Clear: draft removed for client=%s, %s id=%d", key.ClientID, key.ItemType, key.ItemID)
	return nil
}

// validateKey проверяет корректность ключа черновика
func validateKey(key domain.DraftKey) error {
	if key.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}
	if !key.ItemType.IsValid() {
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, key.ItemType)
	}
	if key.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}
	return nil
}

// validateDraft проверяет инварианты черновика перед сохранением
func validateDraft(draft *domain.BookingDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}
	if len(draft.Participants) < domain.MinParticipants {
		return ErrNoParticipants
	}
	if len(draft.Participants) > domain.MaxParticipants {
		return fmt.Errorf("%w: limit is %d", ErrTooManyParticipants, domain.MaxParticipants)
	}

	for i := range draft.Participants {
		p := &draft.Participants[i]
		if p.DailyHours != 0 && p.DailyHours < domain.MinDailyHours {
			return fmt.Errorf("%w: participant %d has invalid dailyHours", ErrInvalidInput, p.ID)
		}
		if len(p.MedicalNotes) > domain.MaxMedicalNotesLength {
			return fmt.Errorf("%w: participant %d medical notes too long", ErrInvalidInput, p.ID)
		}
		if !p.DateOfBirth.IsZero() {
			if err := p.DateOfBirth.Validate(); err != nil {
				return fmt.Errorf("%w: participant %d has invalid date of birth: %v", ErrInvalidInput, p.ID, err)
			}
		}
	}

	for _, date := range draft.SelectedDates {
		if err := date.Validate(); err != nil {
			return fmt.Errorf("%w: invalid selected date %q: %v", ErrInvalidInput, date, err)
		}
	}

	if draft.Discount != nil && !draft.Discount.Type.IsValidType() {
		return fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, draft.Discount.Type)
	}

	return nil
}
