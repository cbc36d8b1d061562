package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	courtModels "github.com/m04kA/SMC-TennisClubService/internal/service/courts/models"
)

// UserResponse данные пользователя в бронировании
type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64                      `json:"id"`
	Court      *courtModels.CourtResponse `json:"court"`
	User       *UserResponse              `json:"user"`
	StartTime  time.Time                  `json:"startTime"`
	EndTime    time.Time                  `json:"endTime"`
	IsDoubles  bool                       `json:"isDoubles"`
	TotalPrice decimal.Decimal            `json:"totalPrice"`
}

// FromDomainUser конвертирует domain модель пользователя
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
	}
}

// FromDomainReservation конвертирует domain модель бронирования
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		Court:      courtModels.FromDomainCourt(r.Court),
		User:       FromDomainUser(r.User),
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		IsDoubles:  r.IsDoubles,
		TotalPrice: r.TotalPrice,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(reservations []*domain.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, FromDomainReservation(r))
	}
	return result
}
