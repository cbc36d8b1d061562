package crud

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TennisClubService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TennisClubService/pkg/psqlbuilder"
)

// Repository обобщенный репозиторий с мягким удалением.
// FindByID видит удаленные записи, остальные операции работают только с живыми.
type Repository[T any] struct {
	db     DBExecutor
	schema Schema[T]
}

// NewRepository создает обобщенный репозиторий для схемы
func NewRepository[T any](db DBExecutor, schema Schema[T]) *Repository[T] {
	return &Repository[T]{db: db, schema: schema}
}

// Create вставляет запись и перечитывает ее из RETURNING:
// сущность получает значения в том виде, в каком их сохранила БД
func (r *Repository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(r.schema.Table).
		Columns(r.schema.Columns...).
		Values(r.schema.Values(entity)...).
		Suffix("RETURNING " + strings.Join(r.schema.selectColumns(), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.scanInto(executor.QueryRowContext(ctx, query, args...), entity)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create %s: %v", ErrUniqueViolation, r.schema.Table, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return entity, nil
}

// FindByID получает запись по id, включая мягко удаленные
func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(r.schema.selectColumns()...).
		From(r.schema.Table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	entity, err := r.scan(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s id=%d", ErrNotFound, r.schema.Table, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - scan: %v", ErrScanRow, err)
	}
	return entity, nil
}

// FindAll возвращает все живые записи, упорядоченные по id
func (r *Repository[T]) FindAll(ctx context.Context) ([]*T, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(r.schema.selectColumns()...).
		From(r.schema.Table).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*T, 0)
	for rows.Next() {
		entity, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: FindAll - scan: %v", ErrScanRow, err)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindAll - rows iteration: %v", ErrExecQuery, err)
	}

	return result, nil
}

// Update перезаписывает изменяемые колонки живой записи
func (r *Repository[T]) Update(ctx context.Context, id int64, entity *T) (*T, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(r.schema.Table).
		SetMap(r.schema.valueMap(entity)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		Suffix("RETURNING " + strings.Join(r.schema.selectColumns(), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := r.scan(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s id=%d", ErrNotFound, r.schema.Table, id)
	}
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Update %s: %v", ErrUniqueViolation, r.schema.Table, err)
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return updated, nil
}

// SoftDelete помечает живую запись удаленной
func (r *Repository[T]) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(r.schema.Table).
		Set("deleted", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s id=%d", ErrNotFound, r.schema.Table, id)
	}
	return nil
}

func (r *Repository[T]) scan(row RowScanner) (*T, error) {
	entity := new(T)
	if err := r.scanInto(row, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// scanInto заполняет колонки и служебные поля, не трогая остальные поля сущности
func (r *Repository[T]) scanInto(row RowScanner, entity *T) error {
	var meta Meta

	dest := make([]interface{}, 0, len(r.schema.Columns)+4)
	dest = append(dest, &meta.ID)
	dest = append(dest, r.schema.Fields(entity)...)
	dest = append(dest, &meta.Deleted, &meta.CreatedAt, &meta.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	r.schema.SetMeta(entity, meta)
	return nil
}
