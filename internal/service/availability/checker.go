package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// Checker проверяет пересечение окна с бронированиями корта
type Checker struct {
	reservationRepo ReservationRepository
}

// NewChecker создает новый экземпляр checker
func NewChecker(reservationRepo ReservationRepository) *Checker {
	return &Checker{reservationRepo: reservationRepo}
}

// HasConflict сообщает, пересекается ли [start, end) с каким-либо живым бронированием корта
// (любого пользователя, прошлым или будущим). excludeReservationID пропускает само
// изменяемое бронирование.
func (c *Checker) HasConflict(ctx context.Context, courtID int64, start, end time.Time, excludeReservationID *int64) (bool, error) {
	reservations, err := c.reservationRepo.GetByCourtID(ctx, courtID)
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - get reservations of court=%d: %v", ErrInternal, courtID, err)
	}

	return domain.HasOverlap(reservations, domain.Window{Start: start, End: end}, excludeReservationID), nil
}
