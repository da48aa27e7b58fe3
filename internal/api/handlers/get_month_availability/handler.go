package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m1shk4/ASB-BookingFront/internal/api/handlers"
	getMonthAvailability "github.com/m1shk4/ASB-BookingFront/internal/usecase/get_month_availability"
)

const (
	msgInvalidScheduleID = "некорректный ID расписания"
	msgMissingYear       = "параметр year обязателен"
	msgMissingMonth      = "параметр month обязателен"
	msgInvalidYear       = "некорректный год"
	msgInvalidMonth      = "некорректный месяц"
	msgFetchFailed       = "не удалось загрузить доступность, попробуйте ещё раз"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/{scheduleId}/availability
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /schedules/{id}/availability - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /schedules/{id}/availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /schedules/{id}/availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{
		ScheduleID: scheduleID,
		Year:       year,
		Month:      time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /schedules/{id}/availability - Invalid input: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, getMonthAvailability.ErrFetchFailed):
			// Месяц остался незакэшированным, повторный запрос приведёт к новой попытке
			h.logger.Warn("GET /schedules/{id}/availability - Fetch failed: schedule_id=%d, %d-%02d", scheduleID, year, month)
			handlers.RespondError(w, http.StatusBadGateway, msgFetchFailed)

		default:
			h.logger.Error("GET /schedules/{id}/availability - Failed: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id}/availability - %d slots returned: schedule_id=%d, %d-%02d",
		len(result.Slots), scheduleID, year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
