package find_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
	findRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_available_rooms"
)

const (
	msgInvalidQuery       = "некорректные параметры запроса"
	msgCustomTimeRequired = "для режима custom требуется параметр time"
	msgBuildingNotFound   = "здание не найдено"
)

type Handler struct {
	useCase FindAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
// Query params: buildingId (optional), mode (now|next_hour|custom, default now),
// time (HH:MM, required for mode=custom), day (optional weekday)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(
		query.Get("buildingId"),
		query.Get("mode"),
		query.Get("time"),
		query.Get("day"),
	)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findRooms.ErrCustomTimeRequired):
			h.logger.Warn("GET /rooms/available - Custom time required")
			handlers.RespondBadRequest(w, msgCustomTimeRequired)

		case errors.Is(err, findRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, findRooms.ErrBuildingNotFound):
			h.logger.Warn("GET /rooms/available - Building not found: building_id=%s", query.Get("buildingId"))
			handlers.RespondNotFound(w, msgBuildingNotFound)

		default:
			h.logger.Error("GET /rooms/available - Failed to find rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - Found %d rooms (mode=%s, day=%s)",
		len(result.Rooms), useCaseReq.Mode, result.Day)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
