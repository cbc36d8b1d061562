package update_court

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisClubService/internal/service/courts"
	"github.com/m04kA/SMC-TennisClubService/internal/service/courts/models"
)

type fakeService struct {
	gotReq *models.CourtRequest
	err    error
}

func (f *fakeService) Update(_ context.Context, id int64, req *models.CourtRequest) (*models.CourtResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.CourtResponse{ID: id, Name: req.Name}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, id, payload string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/courts/{courtId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/courts/"+id, strings.NewReader(payload)))
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "4", `{"name":"Center","surfaceId":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq.SurfaceID)
	assert.Equal(t, int64(2), *svc.gotReq.SurfaceID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: courts.ErrCourtNotFound, want: http.StatusNotFound},
		{err: courts.ErrSurfaceNotFound, want: http.StatusNotFound},
		{err: courts.ErrInvalidInput, want: http.StatusBadRequest},
		{err: courts.ErrInternal, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, serve(&fakeService{err: tt.err}, "4", `{"name":"x"}`).Code, tt.err.Error())
	}
}
