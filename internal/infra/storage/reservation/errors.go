package reservation

import (
	"fmt"

	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
)

// ErrReservationNotFound возвращается, когда бронирование не найдено
var ErrReservationNotFound = fmt.Errorf("reservation.repository: reservation not found: %w", crud.ErrNotFound)
