package create_reservation

import (
	"context"

	admission "github.com/m04kA/SMC-TennisClubService/internal/usecase/reservation_admission"
)

type CreateReservationUseCase interface {
	Create(ctx context.Context, req *admission.Request) (*admission.CreateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
