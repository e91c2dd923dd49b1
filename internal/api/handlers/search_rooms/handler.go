package search_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomFinderService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
	findRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_available_rooms"
)

const (
	msgCriteriaIncomplete = "для режима custom требуется указать время"
	msgBuildingNotFound   = "здание не найдено"
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

// Handle POST /api/v1/finder/search
// Выполняет поиск по текущим критериям сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
		return
	}

	state, err := h.finder.Search(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, finder.ErrCriteriaIncomplete):
			h.logger.Warn("POST /finder/search - Criteria incomplete: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgCriteriaIncomplete)

		case errors.Is(err, findRooms.ErrBuildingNotFound):
			h.logger.Warn("POST /finder/search - Building not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgBuildingNotFound)

		default:
			h.logger.Error("POST /finder/search - Search failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /finder/search - Search done: user_id=%d, results=%d", userID, len(state.Results))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFinderState(state))
}

// HandleState GET /api/v1/finder/state
// Возвращает текущее состояние сессии без запуска поиска
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
		return
	}

	state, err := h.finder.State(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /finder/state - Failed to get state: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromFinderState(state))
}
