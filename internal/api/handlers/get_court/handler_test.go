package get_court

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TennisClubService/internal/service/courts"
	"github.com/m04kA/SMC-TennisClubService/internal/service/courts/models"
)

type fakeService struct{ err error }

func (f fakeService) GetByID(_ context.Context, id int64) (*models.CourtResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.CourtResponse{ID: id, Name: "Court 1"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc fakeService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/courts/{courtId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courts/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(fakeService{}, "1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Court 1","surface":null}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(fakeService{err: courts.ErrCourtNotFound}, "1").Code)
	assert.Equal(t, http.StatusBadRequest, serve(fakeService{}, "x").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: courts.ErrInternal}, "1").Code)
}
