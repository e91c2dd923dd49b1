package cancel_room_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomFinderService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
)

const (
	msgMissingRoomID = "ID помещения обязателен"
)

type Handler struct {
	finder FinderService
	logger Logger
}

func NewHandler(finderSvc FinderService, logger Logger) *Handler {
	return &Handler{
		finder: finderSvc,
		logger: logger,
	}
}

// Handle DELETE /api/v1/rooms/{roomId}/bookings
// Снимает все локальные брони помещения; в ответе - обновленное
// состояние сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
		return
	}

	roomID := mux.Vars(r)["roomId"]
	if roomID == "" {
		h.logger.Warn("DELETE /rooms/{id}/bookings - Missing room ID")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	state, err := h.finder.CancelBookings(r.Context(), userID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, finder.ErrInvalidInput):
			h.logger.Warn("DELETE /rooms/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingRoomID)

		case errors.Is(err, finder.ErrCriteriaIncomplete):
			h.logger.Warn("DELETE /rooms/{id}/bookings - Criteria incomplete for user=%d", userID)
			handlers.RespondBadRequest(w, "критерии поиска не заполнены")

		default:
			h.logger.Error("DELETE /rooms/{id}/bookings - Failed to cancel: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id}/bookings - Bookings cancelled: user_id=%d, room_id=%s", userID, roomID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFinderState(state))
}
