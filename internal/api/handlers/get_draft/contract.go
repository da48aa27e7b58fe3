package get_draft

import (
	"context"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
)

// DraftService интерфейс сервиса черновиков
type DraftService interface {
	Restore(ctx context.Context, key domain.DraftKey, bearerToken string) (*domain.BookingDraft, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
