package get_quote

import (
	"errors"
	"net/http"

	"github.com/m1shk4/ASB-BookingFront/internal/api/handlers"
	getQuote "github.com/m1shk4/ASB-BookingFront/internal/usecase/get_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры расчёта"
	msgScheduleNotFound   = "расписание не найдено"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
// Стоимость пересчитывается на каждый запрос, результат не кэшируется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: item_type=%s, item_id=%d, error=%v",
				req.ItemType, req.ItemID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getQuote.ErrScheduleNotFound):
			h.logger.Warn("POST /quotes - Schedule not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("POST /quotes - Failed: item_type=%s, item_id=%d, error=%v",
				req.ItemType, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - item_type=%s, item_id=%d, schedule_id=%d, final=%.2f",
		req.ItemType, req.ItemID, req.ScheduleID, result.Quote.FinalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
