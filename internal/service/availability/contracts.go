package availability

import (
	"context"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByCourtID(ctx context.Context, courtID int64) ([]*domain.Reservation, error)
}
