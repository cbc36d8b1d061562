package list_surfaces

import (
	"net/http"

	"github.com/m04kA/SMC-TennisClubService/internal/api/handlers"
)

type Handler struct {
	service SurfaceService
	logger  Logger
}

func NewHandler(service SurfaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/surfaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /surfaces - Failed to list surfaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
