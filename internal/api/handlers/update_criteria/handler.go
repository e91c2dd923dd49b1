package update_criteria

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomFinderService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

const (
	msgInvalidBody = "некорректное тело запроса"
	msgInvalidMode = "некорректный режим времени, ожидается now, next_hour или custom"
	msgInvalidTime = "некорректный формат времени, ожидается HH:MM"
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

// Handle PUT /api/v1/finder/criteria
// Body: {"buildingId": "...", "mode": "...", "customTime": "HH:MM"}
// Применяет только переданные поля; в ответе - обновленное состояние сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
		return
	}

	var req UpdateCriteriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /finder/criteria - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.BuildingID == nil && req.Mode == nil && req.CustomTime == nil {
		h.logger.Warn("PUT /finder/criteria - Empty update: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	var (
		state finder.State
		err   error
	)

	if req.BuildingID != nil {
		// Пустая строка сбрасывает фильтр по зданию
		buildingID := req.BuildingID
		if *buildingID == "" {
			buildingID = nil
		}

		state, err = h.finder.SelectBuilding(r.Context(), userID, buildingID)
		if err != nil {
			h.logger.Warn("PUT /finder/criteria - Failed to select building: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)
			return
		}
	}

	if req.Mode != nil {
		mode, parseErr := domain.ParseTimeMode(*req.Mode)
		if parseErr != nil {
			h.logger.Warn("PUT /finder/criteria - Invalid mode %q", *req.Mode)
			handlers.RespondBadRequest(w, msgInvalidMode)
			return
		}

		state, err = h.finder.SelectTimeMode(r.Context(), userID, mode)
		if err != nil {
			h.logger.Error("PUT /finder/criteria - Failed to select mode: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	if req.CustomTime != nil {
		t, parseErr := types.NewTimeStringFromString(*req.CustomTime)
		if parseErr != nil {
			h.logger.Warn("PUT /finder/criteria - Invalid custom time %q", *req.CustomTime)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}

		state, err = h.finder.SelectCustomTime(r.Context(), userID, t)
		if err != nil {
			h.logger.Error("PUT /finder/criteria - Failed to select custom time: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("PUT /finder/criteria - Criteria updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFinderState(state))
}
