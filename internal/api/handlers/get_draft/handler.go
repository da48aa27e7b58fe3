package get_draft

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
	msgInvalidItemType = "некорректный тип элемента, ожидается course или package"
	msgInvalidItemID   = "некорректный ID элемента"
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

// Handle GET /api/v1/drafts/{itemType}/{itemId}
// Отсутствующий черновик не является ошибкой: возвращается свежий
// черновик с одним участником
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	itemType := domain.ItemType(vars["itemType"])
	if !itemType.IsValid() {
		h.logger.Warn("GET /drafts/{itemType}/{itemId} - Invalid item type: %s", vars["itemType"])
		handlers.RespondBadRequest(w, msgInvalidItemType)
		return
	}

	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /drafts/{itemType}/{itemId} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	key := domain.DraftKey{
		ClientID: middleware.ClientID(r),
		ItemType: itemType,
		ItemID:   itemID,
	}

	draft, err := h.drafts.Restore(r.Context(), key, middleware.BearerToken(r))
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("GET /drafts/{itemType}/{itemId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItemID)

		default:
			h.logger.Error("GET /drafts/{itemType}/{itemId} - Failed: client=%s, %s id=%d, error=%v",
				key.ClientID, key.ItemType, key.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /drafts/{itemType}/{itemId} - Restored: client=%s, %s id=%d, participants=%d, dates=%d",
		key.ClientID, key.ItemType, key.ItemID, len(draft.Participants), len(draft.SelectedDates))
	handlers.RespondJSON(w, http.StatusOK, FromDomainDraft(draft))
}
