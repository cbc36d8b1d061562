package delete_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations"
)

type fakeService struct{ err error }

func (f fakeService) Delete(context.Context, int64) error { return f.err }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc fakeService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{name: "deleted", id: "3", want: http.StatusNoContent},
		{name: "not found", id: "3", err: reservations.ErrReservationNotFound, want: http.StatusNotFound},
		{name: "bad id", id: "0", want: http.StatusBadRequest},
		{name: "internal", id: "3", err: reservations.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(fakeService{err: tt.err}, tt.id).Code)
		})
	}
}
