package get_buildings

import (
	"net/http"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
)

type Handler struct {
	catalog CatalogProvider
	logger  Logger
}

func NewHandler(catalog CatalogProvider, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/buildings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.catalog.GetBuildings(r.Context())
	if err != nil {
		h.logger.Error("GET /buildings - Failed to get buildings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]handlers.BuildingResponse, len(buildings))
	for i, b := range buildings {
		response[i] = handlers.FromBuilding(b)
	}

	h.logger.Info("GET /buildings - Returned %d buildings", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
