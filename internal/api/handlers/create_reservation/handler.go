package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TennisClubService/internal/api/handlers"
	admission "github.com/m04kA/SMC-TennisClubService/internal/usecase/reservation_admission"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCourtNotFound      = "корт не найден"
	msgConflict           = "корт уже забронирован на это время"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Create(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, admission.ErrConflict):
			h.logger.Warn("POST /reservations - Court already reserved: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, admission.ErrCourtNotFound):
			h.logger.Warn("POST /reservations - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, admission.ErrInvalidArgument):
			h.logger.Warn("POST /reservations - Invalid argument: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, court_id=%d",
		result.ReservationID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, CreateReservationResponse{TotalPrice: result.TotalPrice})
}
