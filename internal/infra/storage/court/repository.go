package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	"github.com/m04kA/SMC-TennisClubService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TennisClubService/pkg/psqlbuilder"
)

const table = "courts"

// Schema отображение domain.Court на таблицу courts
var Schema = crud.Schema[domain.Court]{
	Table:   table,
	Columns: []string{"name", "surface_id"},
	Values: func(c *domain.Court) []interface{} {
		return []interface{}{c.Name, c.SurfaceID}
	},
	Fields: func(c *domain.Court) []interface{} {
		return []interface{}{&c.Name, &c.SurfaceID}
	},
	SetMeta: func(c *domain.Court, m crud.Meta) {
		c.ID = m.ID
		c.Deleted = m.Deleted
		c.CreatedAt = m.CreatedAt
		c.UpdatedAt = m.UpdatedAt
	},
}

var activeColumns = []string{
	"c.id",
	"c.name",
	"c.surface_id",
	"c.deleted",
	"c.created_at",
	"c.updated_at",
	"s.id",
	"s.name",
	"s.price_per_minute",
	"s.deleted",
	"s.created_at",
	"s.updated_at",
}

// Repository репозиторий кортов
type Repository struct {
	*crud.Repository[domain.Court]
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		Repository: crud.NewRepository(db, Schema),
		db:         db,
	}
}

func (r *Repository) activeQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(activeColumns...).
		From("courts c").
		Join("surfaces s ON s.id = c.surface_id").
		Where(squirrel.Eq{"c.deleted": false, "s.deleted": false})
}

// GetActiveByID получает корт вместе с покрытием.
// Корт, удаленный сам или через покрытие, считается ненайденным.
func (r *Repository) GetActiveByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.activeQuery().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - build select query: %v", crud.ErrBuildQuery, err)
	}

	c, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - scan court: %v", crud.ErrScanRow, err)
	}

	return c, nil
}

// GetAllActive возвращает живые корты с живым покрытием, упорядоченные по id
func (r *Repository) GetAllActive(ctx context.Context) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.activeQuery().
		OrderBy("c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - build select query: %v", crud.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - execute select: %v", crud.ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllActive - scan court: %v", crud.ErrScanRow, err)
		}
		courts = append(courts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - rows iteration: %v", crud.ErrExecQuery, err)
	}

	return courts, nil
}

// LockByID блокирует строку живого корта до конца транзакции (SELECT ... FOR UPDATE).
// Вне транзакции блокировка снимается сразу после запроса.
func (r *Repository) LockByID(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockByID - build select query: %v", crud.ErrBuildQuery, err)
	}

	var lockedID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&lockedID)
	if err == sql.ErrNoRows {
		return ErrCourtNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: LockByID - lock court: %v", crud.ErrExecQuery, err)
	}

	return nil
}

func scanCourt(row crud.RowScanner) (*domain.Court, error) {
	var c domain.Court
	var s domain.Surface

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.SurfaceID,
		&c.Deleted,
		&c.CreatedAt,
		&c.UpdatedAt,
		&s.ID,
		&s.Name,
		&s.PricePerMinute,
		&s.Deleted,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Surface = &s
	return &c, nil
}
