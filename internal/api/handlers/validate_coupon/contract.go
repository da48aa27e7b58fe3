package validate_coupon

import (
	"context"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/service/coupons"
)

// CouponService интерфейс сервиса купонов
type CouponService interface {
	Validate(ctx context.Context, code string, itemType domain.ItemType, itemID int64) (*coupons.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
