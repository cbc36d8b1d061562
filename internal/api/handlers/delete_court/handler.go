package delete_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TennisClubService/internal/api/handlers"
	"github.com/m04kA/SMC-TennisClubService/internal/service/courts"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgNotFound       = "корт не найден"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("DELETE /courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	if err := h.service.Delete(r.Context(), courtID); err != nil {
		if errors.Is(err, courts.ErrCourtNotFound) {
			h.logger.Warn("DELETE /courts/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /courts/{id} - Failed to delete court: court_id=%d, error=%v", courtID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /courts/{id} - Court deleted: court_id=%d", courtID)
	handlers.RespondNoContent(w)
}
