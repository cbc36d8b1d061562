package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	"github.com/m04kA/SMC-TennisClubService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TennisClubService/pkg/psqlbuilder"
)

const table = "reservations"

// Schema отображение domain.Reservation на таблицу reservations
var Schema = crud.Schema[domain.Reservation]{
	Table:   table,
	Columns: []string{"court_id", "user_id", "start_time", "end_time", "is_doubles", "total_price"},
	Values: func(r *domain.Reservation) []interface{} {
		return []interface{}{r.CourtID, r.UserID, r.StartTime, r.EndTime, r.IsDoubles, r.TotalPrice}
	},
	Fields: func(r *domain.Reservation) []interface{} {
		return []interface{}{&r.CourtID, &r.UserID, &r.StartTime, &r.EndTime, &r.IsDoubles, &r.TotalPrice}
	},
	SetMeta: func(r *domain.Reservation, m crud.Meta) {
		r.ID = m.ID
		r.Deleted = m.Deleted
		r.CreatedAt = m.CreatedAt
		r.UpdatedAt = m.UpdatedAt
	},
}

var hydratedColumns = []string{
	"r.id",
	"r.court_id",
	"r.user_id",
	"r.start_time",
	"r.end_time",
	"r.is_doubles",
	"r.total_price",
	"r.deleted",
	"r.created_at",
	"r.updated_at",
	"c.id",
	"c.name",
	"c.surface_id",
	"c.deleted",
	"s.id",
	"s.name",
	"s.price_per_minute",
	"s.deleted",
	"u.id",
	"u.name",
	"u.phone_number",
	"u.deleted",
}

// Repository репозиторий бронирований
type Repository struct {
	*crud.Repository[domain.Reservation]
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		Repository: crud.NewRepository(db, Schema),
		db:         db,
	}
}

func hydratedQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(hydratedColumns...).
		From("reservations r").
		Join("courts c ON c.id = r.court_id").
		Join("surfaces s ON s.id = c.surface_id").
		Join("users u ON u.id = r.user_id")
}

// GetByID получает бронирование с кортом, покрытием и пользователем.
// Удаленные бронирования тоже возвращаются (флаг Deleted заполнен).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := hydratedQuery().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", crud.ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", crud.ErrScanRow, err)
	}

	return res, nil
}

// GetAll возвращает живые бронирования живых кортов и пользователей по возрастанию start_time
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	query, args, err := hydratedQuery().
		Where(squirrel.Eq{"r.deleted": false, "c.deleted": false, "u.deleted": false}).
		OrderBy("r.start_time ASC", "r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", crud.ErrBuildQuery, err)
	}

	return r.list(ctx, "GetAll", query, args)
}

// GetByCourtID возвращает все живые бронирования корта (любых пользователей,
// прошлые и будущие) по возрастанию start_time
func (r *Repository) GetByCourtID(ctx context.Context, courtID int64) ([]*domain.Reservation, error) {
	query, args, err := hydratedQuery().
		Where(squirrel.Eq{"r.court_id": courtID, "r.deleted": false}).
		OrderBy("r.start_time ASC", "r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtID - build select query: %v", crud.ErrBuildQuery, err)
	}

	return r.list(ctx, "GetByCourtID", query, args)
}

// GetByPhoneNumber возвращает живые бронирования пользователя по телефону.
// Если after задан, остаются только бронирования с start_time > after.
func (r *Repository) GetByPhoneNumber(ctx context.Context, phoneNumber string, after *time.Time) ([]*domain.Reservation, error) {
	selectBuilder := hydratedQuery().
		Where(squirrel.Eq{
			"u.phone_number": phoneNumber,
			"r.deleted":      false,
			"c.deleted":      false,
			"u.deleted":      false,
		}).
		OrderBy("r.start_time ASC", "r.id ASC")

	if after != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"r.start_time": *after})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhoneNumber - build select query: %v", crud.ErrBuildQuery, err)
	}

	return r.list(ctx, "GetByPhoneNumber", query, args)
}

func (r *Repository) list(ctx context.Context, op string, query string, args []interface{}) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", crud.ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", crud.ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", crud.ErrExecQuery, op, err)
	}

	return reservations, nil
}

func scanReservation(row crud.RowScanner) (*domain.Reservation, error) {
	var (
		res domain.Reservation
		c   domain.Court
		s   domain.Surface
		u   domain.User
	)

	err := row.Scan(
		&res.ID,
		&res.CourtID,
		&res.UserID,
		&res.StartTime,
		&res.EndTime,
		&res.IsDoubles,
		&res.TotalPrice,
		&res.Deleted,
		&res.CreatedAt,
		&res.UpdatedAt,
		&c.ID,
		&c.Name,
		&c.SurfaceID,
		&c.Deleted,
		&s.ID,
		&s.Name,
		&s.PricePerMinute,
		&s.Deleted,
		&u.ID,
		&u.Name,
		&u.PhoneNumber,
		&u.Deleted,
	)
	if err != nil {
		return nil, err
	}

	c.Surface = &s
	res.Court = &c
	res.User = &u
	return &res, nil
}
