package update_reservation

import (
	"context"

	admission "github.com/m04kA/SMC-TennisClubService/internal/usecase/reservation_admission"
)

type UpdateReservationUseCase interface {
	Update(ctx context.Context, id int64, req *admission.Request) (*admission.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
