package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	"github.com/m04kA/SMC-TennisClubService/internal/service/courts/models"
)

// Service сервис администрирования кортов
type Service struct {
	courtRepo   CourtRepository
	surfaceRepo SurfaceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, surfaceRepo SurfaceRepository, logger Logger) *Service {
	return &Service{
		courtRepo:   courtRepo,
		surfaceRepo: surfaceRepo,
		logger:      logger,
	}
}

// Create создает корт на живом покрытии
func (s *Service) Create(ctx context.Context, req *models.CourtRequest) (*models.CourtResponse, error) {
	court, err := s.toDomain(ctx, "Create", req)
	if err != nil {
		return nil, err
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error for court name=%q: %v", court.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	created.Surface = court.Surface

	s.logger.Info("Create: created court id=%d name=%q surface=%d", created.ID, created.Name, created.SurfaceID)
	return models.FromDomainCourt(created), nil
}

// GetByID получает доступный для бронирования корт
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.getActive(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCourt(court), nil
}

// GetAll возвращает все доступные корты
func (s *Service) GetAll(ctx context.Context) ([]*models.CourtResponse, error) {
	courts, err := s.courtRepo.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourtList(courts), nil
}

// Update меняет имя и покрытие корта
func (s *Service) Update(ctx context.Context, id int64, req *models.CourtRequest) (*models.CourtResponse, error) {
	if _, err := s.getActive(ctx, "Update", id); err != nil {
		return nil, err
	}

	court, err := s.toDomain(ctx, "Update", req)
	if err != nil {
		return nil, err
	}

	updated, err := s.courtRepo.Update(ctx, id, court)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			s.logger.Warn("Update: court id=%d deleted concurrently", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}
	updated.Surface = court.Surface

	s.logger.Info("Update: court id=%d updated", id)
	return models.FromDomainCourt(updated), nil
}

// Delete мягко удаляет корт
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.courtRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			s.logger.Warn("Delete: court id=%d not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Delete: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: court id=%d deleted", id)
	return nil
}

func (s *Service) getActive(ctx context.Context, op string, id int64) (*domain.Court, error) {
	court, err := s.courtRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			s.logger.Warn("%s: court id=%d not found", op, id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("%s: repository error for court id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return court, nil
}

func (s *Service) toDomain(ctx context.Context, op string, req *models.CourtRequest) (*domain.Court, error) {
	court, err := models.ToDomainCourt(ctx, req, s.surfaceRepo)
	if err == nil {
		return court, nil
	}

	switch {
	case errors.Is(err, models.ErrMissingSurfaceID), errors.Is(err, models.ErrInvalidName):
		s.logger.Warn("%s: invalid court request: %v", op, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, crud.ErrNotFound):
		s.logger.Warn("%s: %v", op, err)
		return nil, ErrSurfaceNotFound
	default:
		s.logger.Error("%s: failed to resolve surface: %v", op, err)
		return nil, fmt.Errorf("%w: %s - resolve surface: %v", ErrInternal, op, err)
	}
}
