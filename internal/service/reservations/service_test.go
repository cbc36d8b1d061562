package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	reservationRepo "github.com/m04kA/SMC-TennisClubService/internal/infra/storage/reservation"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeReservations struct {
	items     []*domain.Reservation
	lastAfter *time.Time
}

func (f *fakeReservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservations) GetAll(context.Context) ([]*domain.Reservation, error) {
	return f.live(func(*domain.Reservation) bool { return true }), nil
}

func (f *fakeReservations) GetByCourtID(_ context.Context, courtID int64) ([]*domain.Reservation, error) {
	return f.live(func(r *domain.Reservation) bool { return r.CourtID == courtID }), nil
}

func (f *fakeReservations) GetByPhoneNumber(_ context.Context, phone string, after *time.Time) ([]*domain.Reservation, error) {
	f.lastAfter = after
	return f.live(func(r *domain.Reservation) bool {
		return r.User.PhoneNumber == phone && (after == nil || r.StartTime.After(*after))
	}), nil
}

func (f *fakeReservations) SoftDelete(_ context.Context, id int64) error {
	for _, r := range f.items {
		if r.ID == id && !r.Deleted {
			r.Deleted = true
			return nil
		}
	}
	return crud.ErrNotFound
}

func (f *fakeReservations) live(match func(*domain.Reservation) bool) []*domain.Reservation {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.items {
		if !r.Deleted && match(r) {
			result = append(result, r)
		}
	}
	return result
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func newService() (*Service, *fakeReservations) {
	court := &domain.Court{ID: 1, Name: "Court 1", Surface: &domain.Surface{ID: 2, Name: "Grass", PricePerMinute: decimal.RequireFromString("0.8")}}
	alice := &domain.User{ID: 1, Name: "Alice", PhoneNumber: "+79990000001"}

	repo := &fakeReservations{items: []*domain.Reservation{
		{ID: 1, CourtID: 1, Court: court, User: alice, StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
		{ID: 2, CourtID: 1, Court: court, User: alice, StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
	}}

	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTime{t: now}
	return svc, repo
}

func TestService_GetByPhoneNumberFutureOnly(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	all, err := svc.GetByPhoneNumber(ctx, "+79990000001", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Nil(t, repo.lastAfter)

	future, err := svc.GetByPhoneNumber(ctx, "+79990000001", true)
	require.NoError(t, err)
	require.Len(t, future, 1)
	assert.Equal(t, int64(2), future[0].ID)
	require.NotNil(t, repo.lastAfter)
	assert.True(t, now.Equal(*repo.lastAfter))

	_, err = svc.GetByPhoneNumber(ctx, "", false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByPhoneNumber(ctx, "   ", false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByPhoneNumberTrimsLikeAdmission(t *testing.T) {
	svc, _ := newService()

	padded, err := svc.GetByPhoneNumber(context.Background(), "  +79990000001\t", false)
	require.NoError(t, err)
	assert.Len(t, padded, 2)
}

func TestService_DeleteHidesReservation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	got, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Court 1", got.Court.Name)
	assert.Equal(t, "Alice", got.User.Name)

	require.NoError(t, svc.Delete(ctx, 2))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrReservationNotFound)

	_, err = svc.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	byCourt, err := svc.GetByCourt(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCourt, 1)
}
