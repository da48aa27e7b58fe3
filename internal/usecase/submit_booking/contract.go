package submit_booking

import (
	"context"
	"time"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
	"github.com/m1shk4/ASB-BookingFront/internal/integrations/identityservice"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// AvailabilityService интерфейс кэша доступности
type AvailabilityService interface {
	GetMonth(ctx context.Context, scheduleID int64, year int, month time.Month) (map[types.DateString]domain.AvailabilitySlot, error)
}

// ScheduleGateService интерфейс гейта расписаний
type ScheduleGateService interface {
	GetScheduleInfo(ctx context.Context, itemType domain.ItemType, itemID, scheduleID int64) (*domain.ScheduleInfo, error)
}

// DraftService интерфейс сервиса черновиков
type DraftService interface {
	Clear(ctx context.Context, key domain.DraftKey) error
}

// AcademyServiceClient интерфейс клиента для AcademyService
type AcademyServiceClient interface {
	InitiateBooking(ctx context.Context, req academyservice.InitiateBookingRequest) (*academyservice.InitiateBookingResponse, error)
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, bearerToken string) *identityservice.Profile
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
