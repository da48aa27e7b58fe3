package drafts

import (
	"context"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/integrations/identityservice"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Get(ctx context.Context, key domain.DraftKey) (*domain.BookingDraft, error)
	Upsert(ctx context.Context, key domain.DraftKey, d *domain.BookingDraft) error
	Delete(ctx context.Context, key domain.DraftKey) error
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, bearerToken string) *identityservice.Profile
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
