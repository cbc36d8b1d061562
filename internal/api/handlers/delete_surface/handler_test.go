package delete_surface

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces"
)

type fakeService struct{ err error }

func (f fakeService) Delete(context.Context, int64) error { return f.err }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc fakeService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/surfaces/{surfaceId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/surfaces/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, serve(fakeService{}, "2").Code)
	assert.Equal(t, http.StatusNotFound, serve(fakeService{err: surfaces.ErrSurfaceNotFound}, "2").Code)
	assert.Equal(t, http.StatusBadRequest, serve(fakeService{}, "0").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: surfaces.ErrInternal}, "2").Code)
}
