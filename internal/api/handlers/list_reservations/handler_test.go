package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations"
	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations/models"
)

type fakeService struct {
	items []*models.ReservationResponse
	err   error
}

func (f fakeService) GetAll(context.Context) ([]*models.ReservationResponse, error) {
	return f.items, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc fakeService) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(fakeService{items: []*models.ReservationResponse{}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: reservations.ErrInternal}).Code)
}
