package get_month_availability

import (
	"context"

	getMonthAvailability "github.com/m1shk4/ASB-BookingFront/internal/usecase/get_month_availability"
)

// GetMonthAvailabilityUseCase интерфейс use case получения слотов месяца
type GetMonthAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getMonthAvailability.Request) (*getMonthAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
