package list_courts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TennisClubService/internal/service/courts"
	"github.com/m04kA/SMC-TennisClubService/internal/service/courts/models"
)

type fakeService struct {
	items []*models.CourtResponse
	err   error
}

func (f fakeService) GetAll(context.Context) ([]*models.CourtResponse, error) {
	return f.items, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc fakeService) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courts", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(fakeService{items: []*models.CourtResponse{{ID: 1, Name: "Court 1"}}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Court 1","surface":null}]`, rec.Body.String())

	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: courts.ErrInternal}).Code)
}
