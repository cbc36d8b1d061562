package create_surface

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces"
	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces/models"
)

type fakeService struct{ err error }

func (f fakeService) Create(_ context.Context, req *models.CreateSurfaceRequest) (*models.SurfaceResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SurfaceResponse{ID: 1, Name: req.Name, PricePerMinute: req.PricePerMinute}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc fakeService, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/surfaces", strings.NewReader(payload)))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(fakeService{}, `{"name":"Clay","pricePerMinute":"0.5"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Clay","pricePerMinute":"0.5"}`, rec.Body.String())

	assert.Equal(t, http.StatusConflict, serve(fakeService{err: surfaces.ErrSurfaceAlreadyExists}, `{"name":"Clay"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(fakeService{err: surfaces.ErrInvalidInput}, `{"name":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(fakeService{}, `not json`).Code)
}
