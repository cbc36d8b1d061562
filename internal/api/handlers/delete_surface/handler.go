package delete_surface

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TennisClubService/internal/api/handlers"
	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces"
)

const (
	msgInvalidSurfaceID = "некорректный ID покрытия"
	msgNotFound         = "покрытие не найдено"
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

// Handle DELETE /api/v1/surfaces/{surfaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	surfaceID, err := handlers.PathInt64(r, "surfaceId")
	if err != nil {
		h.logger.Warn("DELETE /surfaces/{id} - Invalid surface ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSurfaceID)
		return
	}

	if err := h.service.Delete(r.Context(), surfaceID); err != nil {
		if errors.Is(err, surfaces.ErrSurfaceNotFound) {
			h.logger.Warn("DELETE /surfaces/{id} - Surface not found: surface_id=%d", surfaceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /surfaces/{id} - Failed to delete surface: surface_id=%d, error=%v", surfaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /surfaces/{id} - Surface deleted: surface_id=%d", surfaceID)
	handlers.RespondNoContent(w)
}
