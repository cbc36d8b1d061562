package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	userRepo "github.com/m04kA/SMC-TennisClubService/internal/infra/storage/user"
)

// Resolver находит пользователя по телефону или создает нового
type Resolver struct {
	userRepo UserRepository
	logger   Logger
}

// NewResolver создает новый экземпляр resolver
func NewResolver(userRepo UserRepository, logger Logger) *Resolver {
	return &Resolver{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Resolve возвращает живого пользователя с телефоном phoneNumber.
// Если такого нет, создает его с именем displayName. Имя существующего
// пользователя не меняется.
func (r *Resolver) Resolve(ctx context.Context, phoneNumber, displayName string) (*domain.User, error) {
	phoneNumber = domain.NormalizePhoneNumber(phoneNumber)
	if phoneNumber == "" {
		return nil, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	// 1. Ищем существующего пользователя
	user, err := r.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		r.logger.Error("Resolve: failed to get user by phone=%s: %v", phoneNumber, err)
		return nil, fmt.Errorf("%w: Resolve - get user: %v", ErrInternal, err)
	}

	// 2. Создаем нового
	created, err := r.userRepo.Create(ctx, &domain.User{Name: displayName, PhoneNumber: phoneNumber})
	if err == nil {
		r.logger.Info("Resolve: created user id=%d for phone=%s", created.ID, phoneNumber)
		return created, nil
	}
	if !errors.Is(err, userRepo.ErrUserAlreadyExists) {
		r.logger.Error("Resolve: failed to create user for phone=%s: %v", phoneNumber, err)
		return nil, fmt.Errorf("%w: Resolve - create user: %v", ErrInternal, err)
	}

	// 3. Параллельный запрос успел создать пользователя раньше, берем его
	r.logger.Warn("Resolve: user with phone=%s was created concurrently, re-reading", phoneNumber)
	user, err = r.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		r.logger.Error("Resolve: failed to re-read user by phone=%s: %v", phoneNumber, err)
		return nil, fmt.Errorf("%w: Resolve - re-read user: %v", ErrInternal, err)
	}
	return user, nil
}
