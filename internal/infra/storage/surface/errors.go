package surface

import (
	"fmt"

	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
)

var (
	// ErrSurfaceNotFound возвращается, когда покрытие не найдено или удалено
	ErrSurfaceNotFound = fmt.Errorf("surface.repository: surface not found: %w", crud.ErrNotFound)

	// ErrSurfaceAlreadyExists возвращается, когда живое покрытие с таким именем уже есть
	ErrSurfaceAlreadyExists = fmt.Errorf("surface.repository: surface already exists: %w", crud.ErrUniqueViolation)
)
