package get_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisClubService/internal/api/handlers"
	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations"
	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations/models"
)

type fakeService struct {
	items map[int64]*models.ReservationResponse
	err   error
}

func (f fakeService) GetByID(_ context.Context, id int64) (*models.ReservationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.items[id]
	if !ok {
		return nil, reservations.ErrReservationNotFound
	}
	return r, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc fakeService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := fakeService{items: map[int64]*models.ReservationResponse{
		3: {ID: 3, TotalPrice: decimal.NewFromInt(45)},
	}}

	rec := serve(svc, "3")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.ID)
	assert.True(t, decimal.NewFromInt(45).Equal(got.TotalPrice))

	rec = serve(svc, "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgNotFound, body.Error)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "abc").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: reservations.ErrInternal}, "3").Code)
}
