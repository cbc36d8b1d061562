package create_reservation

import (
	"time"

	"github.com/shopspring/decimal"

	admission "github.com/m04kA/SMC-TennisClubService/internal/usecase/reservation_admission"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CourtID     int64     `json:"courtId"`
	UserName    string    `json:"userName"`
	PhoneNumber string    `json:"phoneNumber"`
	StartTime   time.Time `json:"startTime"` // RFC 3339
	EndTime     time.Time `json:"endTime"`   // RFC 3339
	IsDoubles   bool      `json:"isDoubles"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *admission.Request {
	return &admission.Request{
		CourtID:     r.CourtID,
		UserName:    r.UserName,
		PhoneNumber: r.PhoneNumber,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsDoubles:   r.IsDoubles,
	}
}
