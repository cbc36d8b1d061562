package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	"github.com/m04kA/SMC-TennisClubService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TennisClubService/pkg/psqlbuilder"
)

const table = "users"

// Schema отображение domain.User на таблицу users
var Schema = crud.Schema[domain.User]{
	Table:   table,
	Columns: []string{"name", "phone_number"},
	Values: func(u *domain.User) []interface{} {
		return []interface{}{u.Name, u.PhoneNumber}
	},
	Fields: func(u *domain.User) []interface{} {
		return []interface{}{&u.Name, &u.PhoneNumber}
	},
	SetMeta: func(u *domain.User, m crud.Meta) {
		u.ID = m.ID
		u.Deleted = m.Deleted
		u.CreatedAt = m.CreatedAt
		u.UpdatedAt = m.UpdatedAt
	},
}

// Repository репозиторий пользователей
type Repository struct {
	*crud.Repository[domain.User]
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		Repository: crud.NewRepository(db, Schema),
		db:         db,
	}
}

// Create создает пользователя. Занятый живым пользователем телефон дает ErrUserAlreadyExists
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := r.Repository.Create(ctx, user)
	if err != nil {
		if errors.Is(err, crud.ErrUniqueViolation) {
			return nil, fmt.Errorf("%w: phone=%s", ErrUserAlreadyExists, user.PhoneNumber)
		}
		return nil, err
	}
	return created, nil
}

// GetByPhoneNumber ищет живого пользователя по точному совпадению телефона
func (r *Repository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone_number", "deleted", "created_at", "updated_at").
		From(table).
		Where(squirrel.Eq{"phone_number": phoneNumber, "deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhoneNumber - build select query: %v", crud.ErrBuildQuery, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.PhoneNumber,
		&u.Deleted,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhoneNumber - scan user: %v", crud.ErrScanRow, err)
	}

	return &u, nil
}
