package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	"github.com/m04kA/SMC-TennisClubService/internal/service/reservations/models"
)

// Service сервис чтения и отмены бронирований
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID. Отмененные бронирования считаются ненайденными
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.Deleted {
		s.logger.Warn("GetByID: reservation id=%d is deleted", id)
		return nil, ErrReservationNotFound
	}

	return models.FromDomainReservation(reservation), nil
}

// GetAll возвращает все живые бронирования по возрастанию времени начала
func (s *Service) GetAll(ctx context.Context) ([]*models.ReservationResponse, error) {
	reservations, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// GetByCourt возвращает бронирования корта по возрастанию времени начала
func (s *Service) GetByCourt(ctx context.Context, courtID int64) ([]*models.ReservationResponse, error) {
	reservations, err := s.reservationRepo.GetByCourtID(ctx, courtID)
	if err != nil {
		s.logger.Error("GetByCourt: repository error for court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: GetByCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCourt: fetched %d reservations for court=%d", len(reservations), courtID)
	return models.FromDomainReservationList(reservations), nil
}

// GetByPhoneNumber возвращает бронирования пользователя.
// futureOnly оставляет только те, что начинаются позже текущего момента.
func (s *Service) GetByPhoneNumber(ctx context.Context, phoneNumber string, futureOnly bool) ([]*models.ReservationResponse, error) {
	phoneNumber = domain.NormalizePhoneNumber(phoneNumber)
	if phoneNumber == "" {
		return nil, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	var after *time.Time
	if futureOnly {
		now := s.timeProvider.Now()
		after = &now
	}

	reservations, err := s.reservationRepo.GetByPhoneNumber(ctx, phoneNumber, after)
	if err != nil {
		s.logger.Error("GetByPhoneNumber: repository error for phone=%s: %v", phoneNumber, err)
		return nil, fmt.Errorf("%w: GetByPhoneNumber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPhoneNumber: fetched %d reservations for phone=%s, future=%t",
		len(reservations), phoneNumber, futureOnly)
	return models.FromDomainReservationList(reservations), nil
}

// Delete отменяет бронирование (мягкое удаление)
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reservationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%d cancelled", id)
	return nil
}
