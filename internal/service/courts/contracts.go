package courts

import (
	"context"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Court, error)
	GetAllActive(ctx context.Context) ([]*domain.Court, error)
	Update(ctx context.Context, id int64, court *domain.Court) (*domain.Court, error)
	SoftDelete(ctx context.Context, id int64) error
}

// SurfaceRepository интерфейс репозитория покрытий
type SurfaceRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Surface, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
