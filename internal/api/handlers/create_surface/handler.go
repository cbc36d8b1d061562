package create_surface

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TennisClubService/internal/api/handlers"
	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces"
	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAlreadyExists      = "покрытие с таким именем уже существует"
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

// Handle POST /api/v1/surfaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSurfaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /surfaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	surface, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, surfaces.ErrSurfaceAlreadyExists):
			h.logger.Warn("POST /surfaces - Surface already exists: name=%q", req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, surfaces.ErrInvalidInput):
			h.logger.Warn("POST /surfaces - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /surfaces - Failed to create surface: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /surfaces - Surface created successfully: surface_id=%d", surface.ID)
	handlers.RespondJSON(w, http.StatusCreated, surface)
}
