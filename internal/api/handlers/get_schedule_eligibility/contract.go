package get_schedule_eligibility

import (
	"context"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/service/schedulegate"
)

// ScheduleGateService интерфейс гейта расписаний
type ScheduleGateService interface {
	CheckEligibility(ctx context.Context, itemType domain.ItemType, itemID, scheduleID int64, participantCount int) (*schedulegate.Eligibility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
