package coupons

import (
	"context"
	"fmt"
	"strings"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
)

const msgEmptyCode = "введите код купона"

// Result результат валидации купона.
// Отрицательный результат (Valid=false) — нормальный исход, не ошибка.
// Discount заполнен только при Valid=true и целиком заменяет ранее
// применённую скидку: купоны не суммируются
type Result struct {
	Valid    bool
	Code     string
	Message  string
	Discount *domain.Discount
}

// Service сервис валидации купонов
type Service struct {
	client AcademyServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(client AcademyServiceClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Validate проверяет купон для элемента каталога.
// Пустой код отклоняется локально без сетевого вызова.
// Код нормализуется к верхнему регистру до отправки и до отображения
func (s *Service) Validate(ctx context.Context, code string, itemType domain.ItemType, itemID int64) (*Result, error) {
	if !itemType.IsValid() {
		return nil, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, itemType)
	}
	if itemID <= 0 {
		return nil, fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		s.logger.Info("Validate: empty coupon code rejected locally")
		return &Result{Valid: false, Message: msgEmptyCode}, nil
	}

	resp, err := s.client.ValidateCoupon(ctx, academyservice.CouponValidationRequest{
		CouponCode: normalized,
		ItemType:   string(itemType),
		ItemID:     itemID,
	})
	if err != nil {
		s.logger.Error("Validate: coupon %s validation failed for %s id=%d: %v", normalized, itemType, itemID, err)
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if !resp.Valid {
		s.logger.Info("Validate: coupon %s rejected for %s id=%d: %s", normalized, itemType, itemID, resp.Message)
		return &Result{Valid: false, Code: normalized, Message: resp.Message}, nil
	}

	discountType := domain.DiscountType(resp.DiscountType)
	if !discountType.IsValidType() {
		s.logger.Error("Validate: coupon %s returned unknown discount type %q", normalized, resp.DiscountType)
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrValidationFailed, resp.DiscountType)
	}

	s.logger.Info("Validate: coupon %s accepted for %s id=%d (%s %.2f)",
		normalized, itemType, itemID, discountType, resp.DiscountValue)

	return &Result{
		Valid:   true,
		Code:    normalized,
		Message: resp.Message,
		Discount: &domain.Discount{
			Type:   discountType,
			Amount: resp.DiscountValue,
		},
	}, nil
}
