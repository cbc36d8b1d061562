package user

import (
	"fmt"

	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
)

var (
	// ErrUserNotFound возвращается, когда живой пользователь с таким телефоном не найден
	ErrUserNotFound = fmt.Errorf("user.repository: user not found: %w", crud.ErrNotFound)

	// ErrUserAlreadyExists возвращается, когда живой пользователь с таким телефоном уже есть
	ErrUserAlreadyExists = fmt.Errorf("user.repository: user already exists: %w", crud.ErrUniqueViolation)
)
