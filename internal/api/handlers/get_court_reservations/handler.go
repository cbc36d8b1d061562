package get_court_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-TennisClubService/internal/api/handlers"
)

const msgInvalidCourtID = "некорректный ID корта"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("GET /courts/{id}/reservations - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	list, err := h.service.GetByCourt(r.Context(), courtID)
	if err != nil {
		h.logger.Error("GET /courts/{id}/reservations - Failed to list reservations: court_id=%d, error=%v", courtID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts/{id}/reservations - Reservations retrieved: court_id=%d, count=%d", courtID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
