package coupons

import (
	"context"

	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
)

// AcademyServiceClient интерфейс клиента для AcademyService
type AcademyServiceClient interface {
	ValidateCoupon(ctx context.Context, req academyservice.CouponValidationRequest) (*academyservice.CouponValidationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
