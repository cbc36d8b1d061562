package surfaces

import (
	"context"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// SurfaceRepository интерфейс репозитория покрытий
type SurfaceRepository interface {
	Create(ctx context.Context, surface *domain.Surface) (*domain.Surface, error)
	FindAll(ctx context.Context) ([]*domain.Surface, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
