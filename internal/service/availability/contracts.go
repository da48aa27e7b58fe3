package availability

import (
	"context"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
)

// AcademyServiceClient интерфейс клиента для AcademyService
type AcademyServiceClient interface {
	GetMonthAvailability(ctx context.Context, scheduleID int64, year int, month time.Month) ([]academyservice.AvailabilitySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
