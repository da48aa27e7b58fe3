package save_draft

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m1shk4/ASB-BookingFront/internal/api/handlers"
	"github.com/m1shk4/ASB-BookingFront/internal/api/middleware"
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/service/drafts"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidItemType      = "некорректный тип элемента, ожидается course или package"
	msgInvalidItemID        = "некорректный ID элемента"
	msgRestoreNotCompleted  = "черновик ещё не восстановлен, повторите запрос позже"
	msgNoParticipants       = "в черновике должен быть хотя бы один участник"
	msgTooManyParticipants  = "превышено максимальное число участников"
	msgInvalidDraftContents = "некорректное содержимое черновика"
)

type Handler struct {
	drafts DraftService
	logger Logger
}

func NewHandler(draftSvc DraftService, logger Logger) *Handler {
	return &Handler{
		drafts: draftSvc,
		logger: logger,
	}
}

// Handle PUT /api/v1/drafts/{itemType}/{itemId}
// Запись до первого восстановления по этому ключу отклоняется со
// статусом 409: иначе пустое состояние затёрло бы сохранённый черновик
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	itemType := domain.ItemType(vars["itemType"])
	if !itemType.IsValid() {
		h.logger.Warn("PUT /drafts/{itemType}/{itemId} - Invalid item type: %s", vars["itemType"])
		handlers.RespondBadRequest(w, msgInvalidItemType)
		return
	}

	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /drafts/{itemType}/{itemId} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req SaveDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{itemType}/{itemId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	key := domain.DraftKey{
		ClientID: middleware.ClientID(r),
		ItemType: itemType,
		ItemID:   itemID,
	}

	if err := h.drafts.Persist(r.Context(), key, req.ToDomainDraft()); err != nil {
		switch {
		case errors.Is(err, drafts.ErrRestoreNotCompleted):
			h.logger.Warn("PUT /drafts/{itemType}/{itemId} - Write before restore: client=%s, %s id=%d",
				key.ClientID, key.ItemType, key.ItemID)
			handlers.RespondError(w, http.StatusConflict, msgRestoreNotCompleted)

		case errors.Is(err, drafts.ErrNoParticipants):
			h.logger.Warn("PUT /drafts/{itemType}/{itemId} - No participants: client=%s, %s id=%d",
				key.ClientID, key.ItemType, key.ItemID)
			handlers.RespondBadRequest(w, msgNoParticipants)

		case errors.Is(err, drafts.ErrTooManyParticipants):
			h.logger.Warn("PUT /drafts/{itemType}/{itemId} - Too many participants: client=%s, %s id=%d",
				key.ClientID, key.ItemType, key.ItemID)
			handlers.RespondBadRequest(w, msgTooManyParticipants)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("PUT /drafts/{itemType}/{itemId} - Invalid draft: client=%s, %s id=%d, error=%v",
				key.ClientID, key.ItemType, key.ItemID, err)
			handlers.RespondBadRequest(w, msgInvalidDraftContents)

		default:
			h.logger.Error("PUT /drafts/{itemType}/{itemId} - Failed: client=%s, %s id=%d, error=%v",
				key.ClientID, key.ItemType, key.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /drafts/{itemType}/{itemId} - Saved: client=%s, %s id=%d, participants=%d, dates=%d",
		key.ClientID, key.ItemType, key.ItemID, len(req.Participants), len(req.SelectedDates))
	handlers.RespondJSON(w, http.StatusOK, SaveDraftResponse{Saved: true})
}
