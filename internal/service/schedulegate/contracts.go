package schedulegate

import (
	"context"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
)

// AcademyServiceClient интерфейс клиента для AcademyService
type AcademyServiceClient interface {
	GetScheduleInfo(ctx context.Context, itemType string, itemID, scheduleID int64) (*academyservice.ScheduleInfo, error)
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
