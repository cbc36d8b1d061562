package list_surfaces

import (
	"context"

	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces/models"
)

type SurfaceService interface {
	GetAll(ctx context.Context) ([]*models.SurfaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
