package book_room

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomFinderService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
	bookRoomUC "github.com/m04kA/SMC-RoomFinderService/internal/usecase/book_room"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidInterval = "конец бронирования должен быть позже начала"
	msgRoomNotFound    = "помещение не найдено"
)

type Handler struct {
	finder FinderService
	logger Logger
}

func NewHandler(finder FinderService, logger Logger) *Handler {
	return &Handler{
		finder: finder,
		logger: logger,
	}
}

// Handle POST /api/v1/bookings
// Body: {"roomId": "...", "start": "HH:MM", "end": "HH:MM"}
// Бронь создается на текущий день; в ответе - обновленное состояние сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
		return
	}

	var req BookRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	start, end, err := req.ParseTimes()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	state, err := h.finder.Book(r.Context(), userID, req.RoomID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, bookRoomUC.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval %s-%s: room_id=%s", req.Start, req.End, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, bookRoomUC.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		case errors.Is(err, bookRoomUC.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, finder.ErrCriteriaIncomplete):
			h.logger.Warn("POST /bookings - Criteria incomplete: user_id=%d", userID)
			handlers.RespondBadRequest(w, "критерии поиска не заполнены")

		default:
			h.logger.Error("POST /bookings - Failed to book room: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Room booked: user_id=%d, room_id=%s, %s-%s",
		userID, req.RoomID, req.Start, req.End)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromFinderState(state))
}
