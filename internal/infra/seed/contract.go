package seed

import (
	"context"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// SurfaceRepository интерфейс репозитория покрытий
type SurfaceRepository interface {
	Create(ctx context.Context, surface *domain.Surface) (*domain.Surface, error)
	FindAll(ctx context.Context) ([]*domain.Surface, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
