package reservation_admission

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Court, error)
	LockByID(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, reservation *domain.Reservation) (*domain.Reservation, error)
}

// UserResolver находит или создает пользователя по телефону
type UserResolver interface {
	Resolve(ctx context.Context, phoneNumber, displayName string) (*domain.User, error)
}

// AvailabilityChecker проверяет пересечения бронирований на корте
type AvailabilityChecker interface {
	HasConflict(ctx context.Context, courtID int64, start, end time.Time, excludeReservationID *int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями.
// Допуски на один корт упорядочивает блокировка строки корта, поэтому
// достаточно уровня изоляции по умолчанию (READ COMMITTED).
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик решений о допуске
type Metrics interface {
	IncReservationAdmission(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
