package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
	GetByCourtID(ctx context.Context, courtID int64) ([]*domain.Reservation, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string, after *time.Time) ([]*domain.Reservation, error)
	SoftDelete(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
