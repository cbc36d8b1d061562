package get_user_reservations

import (
	"context"

	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByPhoneNumber(ctx context.Context, phoneNumber string, futureOnly bool) ([]*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
