package validate_coupon

import (
	"errors"
	"net/http"

	"github.com/m1shk4/ASB-BookingFront/internal/api/handlers"
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/service/coupons"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItemType    = "некорректный тип элемента, ожидается course или package"
	msgValidationFailed   = "не удалось проверить купон, попробуйте ещё раз"
)

// ValidateCouponRequest HTTP request model
type ValidateCouponRequest struct {
	CouponCode string `json:"couponCode"`
	ItemType   string `json:"itemType"`
	ItemID     int64  `json:"itemId"`
}

// ValidateCouponResponse HTTP response model.
// Код возвращается нормализованным к верхнему регистру — для отображения
type ValidateCouponResponse struct {
	Valid         bool    `json:"valid"`
	CouponCode    string  `json:"couponCode,omitempty"`
	Message       string  `json:"message"`
	DiscountType  string  `json:"discountType,omitempty"`
	DiscountValue float64 `json:"discountValue,omitempty"`
}

type Handler struct {
	coupons CouponService
	logger  Logger
}

func NewHandler(couponSvc CouponService, logger Logger) *Handler {
	return &Handler{
		coupons: couponSvc,
		logger:  logger,
	}
}

// Handle POST /api/v1/coupons/validate
// Отрицательный результат валидации возвращается со статусом 200:
// отклонённый купон — нормальный исход, а не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.coupons.Validate(r.Context(), req.CouponCode, domain.ItemType(req.ItemType), req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrInvalidInput):
			h.logger.Warn("POST /coupons/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItemType)

		case errors.Is(err, coupons.ErrValidationFailed):
			// Ранее применённая скидка должна быть сброшена вызывающей стороной
			h.logger.Warn("POST /coupons/validate - Validation failed: item_type=%s, item_id=%d, error=%v",
				req.ItemType, req.ItemID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgValidationFailed)

		default:
			h.logger.Error("POST /coupons/validate - Failed: item_type=%s, item_id=%d, error=%v",
				req.ItemType, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &ValidateCouponResponse{
		Valid:      result.Valid,
		CouponCode: result.Code,
		Message:    result.Message,
	}
	if result.Discount != nil {
		response.DiscountType = string(result.Discount.Type)
		response.DiscountValue = result.Discount.Amount
	}

	h.logger.Info("POST /coupons/validate - item_type=%s, item_id=%d, valid=%t", req.ItemType, req.ItemID, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, response)
}
