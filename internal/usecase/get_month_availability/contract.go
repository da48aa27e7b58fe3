package get_month_availability

import (
	"context"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// AvailabilityService интерфейс кэша доступности
type AvailabilityService interface {
	GetMonth(ctx context.Context, scheduleID int64, year int, month time.Month) (map[types.DateString]domain.AvailabilitySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
