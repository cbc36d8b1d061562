package get_court_reservations

import (
	"context"

	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByCourt(ctx context.Context, courtID int64) ([]*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
