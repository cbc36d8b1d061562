package create_surface

import (
	"context"

	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces/models"
)

type SurfaceService interface {
	Create(ctx context.Context, req *models.CreateSurfaceRequest) (*models.SurfaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
