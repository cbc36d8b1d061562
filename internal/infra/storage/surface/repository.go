package surface

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

const table = "surfaces"

// Schema отображение domain.Surface на таблицу surfaces
var Schema = crud.Schema[domain.Surface]{
	Table:   table,
	Columns: []string{"name", "price_per_minute"},
	Values: func(s *domain.Surface) []interface{} {
		return []interface{}{s.Name, s.PricePerMinute}
	},
	Fields: func(s *domain.Surface) []interface{} {
		return []interface{}{&s.Name, &s.PricePerMinute}
	},
	SetMeta: func(s *domain.Surface, m crud.Meta) {
		s.ID = m.ID
		s.Deleted = m.Deleted
		s.CreatedAt = m.CreatedAt
		s.UpdatedAt = m.UpdatedAt
	},
}

// Repository репозиторий покрытий кортов
type Repository struct {
	*crud.Repository[domain.Surface]
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория покрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		Repository: crud.NewRepository(db, Schema),
		db:         db,
	}
}

// Create создает покрытие. Дубликат имени среди живых записей дает ErrSurfaceAlreadyExists
func (r *Repository) Create(ctx context.Context, surface *domain.Surface) (*domain.Surface, error) {
	created, err := r.Repository.Create(ctx, surface)
	if err != nil {
		if errors.Is(err, crud.ErrUniqueViolation) {
			return nil, fmt.Errorf("%w: name=%q", ErrSurfaceAlreadyExists, surface.Name)
		}
		return nil, err
	}
	return created, nil
}

// GetActiveByID получает неудаленное покрытие по ID
func (r *Repository) GetActiveByID(ctx context.Context, id int64) (*domain.Surface, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price_per_minute", "deleted", "created_at", "updated_at").
		From(table).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - build select query: %v", crud.ErrBuildQuery, err)
	}

	var s domain.Surface
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.PricePerMinute,
		&s.Deleted,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSurfaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - scan surface: %v", crud.ErrScanRow, err)
	}

	return &s, nil
}
