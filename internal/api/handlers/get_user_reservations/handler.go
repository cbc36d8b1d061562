package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TennisClubService/internal/api/handlers"
	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations"
)

const (
	msgInvalidFuture = "параметр future должен быть true или false"
	msgInvalidPhone  = "некорректный номер телефона"
)

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

// Handle GET /api/v1/users/{phoneNumber}/reservations?future=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phoneNumber := mux.Vars(r)["phoneNumber"]

	futureOnly := false
	if raw := r.URL.Query().Get("future"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /users/{phone}/reservations - Invalid future flag: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFuture)
			return
		}
		futureOnly = parsed
	}

	list, err := h.service.GetByPhoneNumber(r.Context(), phoneNumber, futureOnly)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/{phone}/reservations - Invalid phone number: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		default:
			h.logger.Error("GET /users/{phone}/reservations - Failed to list reservations: phone=%s, error=%v", phoneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{phone}/reservations - Reservations retrieved: phone=%s, future=%t, count=%d",
		phoneNumber, futureOnly, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
