package get_user_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations"
	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations/models"
)

type fakeService struct {
	phone  string
	future bool
	err    error
}

func (f *fakeService) GetByPhoneNumber(_ context.Context, phone string, futureOnly bool) ([]*models.ReservationResponse, error) {
	f.phone, f.future = phone, futureOnly
	return []*models.ReservationResponse{}, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/users/{phoneNumber}/reservations", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_FutureFlag(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/users/+79990000001/reservations?future=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	assert.Equal(t, "+79990000001", svc.phone)
	assert.True(t, svc.future)

	svc = &fakeService{}
	serve(svc, "/api/v1/users/555/reservations")
	assert.False(t, svc.future)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/users/555/reservations?future=maybe").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: reservations.ErrInvalidInput}, "/api/v1/users/555/reservations").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: reservations.ErrInternal}, "/api/v1/users/555/reservations").Code)
}
