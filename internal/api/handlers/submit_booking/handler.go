package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m1shk4/ASB-BookingFront/internal/api/handlers"
	"github.com/m1shk4/ASB-BookingFront/internal/api/middleware"
	submitBooking "github.com/m1shk4/ASB-BookingFront/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgScheduleNotFound   = "расписание не найдено"
	msgSubmissionInFlight = "бронирование уже отправляется, дождитесь результата"
	msgSubmitFailed       = "не удалось отправить бронирование, попробуйте ещё раз"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Сообщения о нарушенных предусловиях, нарушении гейта расписания и
// отклонении бэкендом возвращаются клиенту дословно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(middleware.ClientID(r), middleware.BearerToken(r)))
	if err != nil {
		var precondition *submitBooking.PreconditionError
		var gateViolation *submitBooking.GateViolationError
		var rejection *submitBooking.BackendRejectionError

		switch {
		case errors.As(err, &precondition):
			h.logger.Warn("POST /bookings - Preconditions failed: item_type=%s, item_id=%d, reasons=%s",
				req.ItemType, req.ItemID, precondition.Message)
			handlers.RespondBadRequest(w, precondition.Message)

		case errors.As(err, &gateViolation):
			h.logger.Warn("POST /bookings - Gate violation: schedule_id=%d, message=%s",
				req.ScheduleID, gateViolation.Message)
			handlers.RespondError(w, http.StatusUnprocessableEntity, gateViolation.Message)

		case errors.As(err, &rejection):
			h.logger.Warn("POST /bookings - Rejected by backend: item_type=%s, item_id=%d, message=%s",
				req.ItemType, req.ItemID, rejection.Message)
			handlers.RespondError(w, http.StatusUnprocessableEntity, rejection.Message)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: item_type=%s, item_id=%d, error=%v",
				req.ItemType, req.ItemID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitBooking.ErrScheduleNotFound):
			h.logger.Warn("POST /bookings - Schedule not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, submitBooking.ErrSubmissionInFlight):
			h.logger.Warn("POST /bookings - Duplicate submission: item_type=%s, item_id=%d",
				req.ItemType, req.ItemID)
			handlers.RespondError(w, http.StatusConflict, msgSubmissionInFlight)

		case errors.Is(err, submitBooking.ErrInternal):
			h.logger.Error("POST /bookings - Backend call failed: item_type=%s, item_id=%d, error=%v",
				req.ItemType, req.ItemID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmitFailed)

		default:
			h.logger.Error("POST /bookings - Failed: item_type=%s, item_id=%d, error=%v",
				req.ItemType, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Confirmed: item_type=%s, item_id=%d, reference=%s, final=%.2f",
		req.ItemType, req.ItemID, result.BookingReference, result.Quote.FinalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
