package get_schedule_eligibility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m1shk4/ASB-BookingFront/internal/api/handlers"
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/service/schedulegate"
)

const (
	msgInvalidScheduleID   = "некорректный ID расписания"
	msgInvalidItemType     = "некорректный тип элемента, ожидается course или package"
	msgInvalidItemID       = "некорректный ID элемента"
	msgInvalidParticipants = "некорректное количество участников"
	msgScheduleNotFound    = "расписание не найдено"
)

// EligibilityResponse HTTP response model.
// При любом нарушении отправка блокируется на стороне клиента
type EligibilityResponse struct {
	ScheduleActive bool    `json:"scheduleActive"`
	RuleSatisfied  bool    `json:"ruleSatisfied"`
	CanSubmit      bool    `json:"canSubmit"`
	Message        *string `json:"message,omitempty"`
}

type Handler struct {
	gate   ScheduleGateService
	logger Logger
}

func NewHandler(gate ScheduleGateService, logger Logger) *Handler {
	return &Handler{
		gate:   gate,
		logger: logger,
	}
}

// Handle GET /api/v1/schedules/{scheduleId}/eligibility
// Query params: itemType (required), itemId (required), participants (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /schedules/{id}/eligibility - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	itemType := domain.ItemType(r.URL.Query().Get("itemType"))
	if !itemType.IsValid() {
		handlers.RespondBadRequest(w, msgInvalidItemType)
		return
	}

	itemID, err := strconv.ParseInt(r.URL.Query().Get("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	participants, err := strconv.Atoi(r.URL.Query().Get("participants"))
	if err != nil || participants < 0 {
		handlers.RespondBadRequest(w, msgInvalidParticipants)
		return
	}

	result, err := h.gate.CheckEligibility(r.Context(), itemType, itemID, scheduleID, participants)
	if err != nil {
		switch {
		case errors.Is(err, schedulegate.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/{id}/eligibility - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedulegate.ErrInvalidInput):
			h.logger.Warn("GET /schedules/{id}/eligibility - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItemID)

		default:
			h.logger.Error("GET /schedules/{id}/eligibility - Failed: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id}/eligibility - schedule_id=%d, active=%t, rule_satisfied=%t",
		scheduleID, result.ScheduleActive, result.RuleSatisfied)
	handlers.RespondJSON(w, http.StatusOK, &EligibilityResponse{
		ScheduleActive: result.ScheduleActive,
		RuleSatisfied:  result.RuleSatisfied,
		CanSubmit:      result.Message == nil,
		Message:        result.Message,
	})
}
