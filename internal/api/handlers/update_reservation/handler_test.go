package update_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	admission "github.com/m04kA/SMC-TennisClubService/internal/usecase/reservation_admission"
)

type fakeUseCase struct {
	gotID int64
	resp  *admission.Response
	err   error
}

func (f *fakeUseCase) Update(_ context.Context, id int64, _ *admission.Request) (*admission.Response, error) {
	f.gotID = id
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *fakeUseCase, id string, payload string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/reservations/"+id, strings.NewReader(payload)))
	return rec
}

func TestHandle_ReturnsFullView(t *testing.T) {
	start := time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &admission.Response{
		ID:         5,
		Court:      &domain.Court{ID: 1, Name: "Court 1", Surface: &domain.Surface{ID: 2, Name: "Grass", PricePerMinute: decimal.RequireFromString("0.8")}},
		User:       &domain.User{ID: 3, Name: "Alice", PhoneNumber: "+79990000001"},
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		IsDoubles:  true,
		TotalPrice: decimal.NewFromInt(48),
	}}

	rec := serve(uc, "5", `{"courtId":1,"phoneNumber":"+79990000001","startTime":"2026-05-10T10:00:00Z","endTime":"2026-05-10T11:00:00Z","isDoubles":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), uc.gotID)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "48", got["totalPrice"])
	assert.Equal(t, "Grass", got["court"].(map[string]interface{})["surface"].(map[string]interface{})["name"])
	assert.Equal(t, "+79990000001", got["user"].(map[string]interface{})["phoneNumber"])
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "abc", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeUseCase{err: admission.ErrReservationNotFound}, "9", `{}`).Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeUseCase{err: admission.ErrConflict}, "9", `{}`).Code)
}
