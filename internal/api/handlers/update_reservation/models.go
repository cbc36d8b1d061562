package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations/models"
	admission "github.com/m04kA/SMC-TennisClubService/internal/usecase/reservation_admission"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	CourtID     int64     `json:"courtId"`
	UserName    string    `json:"userName"`
	PhoneNumber string    `json:"phoneNumber"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsDoubles   bool      `json:"isDoubles"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest() *admission.Request {
	return &admission.Request{
		CourtID:     r.CourtID,
		UserName:    r.UserName,
		PhoneNumber: r.PhoneNumber,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsDoubles:   r.IsDoubles,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *admission.Response) *models.ReservationResponse {
	return models.FromDomainReservation(&domain.Reservation{
		ID:         resp.ID,
		Court:      resp.Court,
		User:       resp.User,
		StartTime:  resp.StartTime,
		EndTime:    resp.EndTime,
		IsDoubles:  resp.IsDoubles,
		TotalPrice: resp.TotalPrice,
	})
}
