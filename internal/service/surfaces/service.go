package surfaces

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	surfaceRepo "github.com/m04kA/SMC-TennisClubService/internal/infra/storage/surface"
	"github.com/m04kA/SMC-TennisClubService/internal/service/surfaces/models"
)

// Service сервис администрирования покрытий
type Service struct {
	surfaceRepo SurfaceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса покрытий
func NewService(surfaceRepo SurfaceRepository, logger Logger) *Service {
	return &Service{
		surfaceRepo: surfaceRepo,
		logger:      logger,
	}
}

// Create создает покрытие
func (s *Service) Create(ctx context.Context, req *models.CreateSurfaceRequest) (*models.SurfaceResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if !domain.ValidPricePerMinute(req.PricePerMinute) {
		return nil, fmt.Errorf("%w: price per minute must be in [0, %s) with at most %d decimal places",
			ErrInvalidInput, domain.MaxPricePerMinute, domain.PricePerMinuteScale)
	}

	created, err := s.surfaceRepo.Create(ctx, req.ToDomainSurface())
	if err != nil {
		if errors.Is(err, surfaceRepo.ErrSurfaceAlreadyExists) {
			s.logger.Warn("Create: surface name=%q already exists", req.Name)
			return nil, ErrSurfaceAlreadyExists
		}
		s.logger.Error("Create: repository error for surface name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created surface id=%d name=%q price=%s", created.ID, created.Name, created.PricePerMinute)
	return models.FromDomainSurface(created), nil
}

// GetAll возвращает живые покрытия
func (s *Service) GetAll(ctx context.Context) ([]*models.SurfaceResponse, error) {
	surfaces, err := s.surfaceRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSurfaceList(surfaces), nil
}

// Delete мягко удаляет покрытие. Корты на нем перестают быть доступными для бронирования
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.surfaceRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			s.logger.Warn("Delete: surface id=%d not found", id)
			return ErrSurfaceNotFound
		}
		s.logger.Error("Delete: repository error for surface id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: surface id=%d deleted", id)
	return nil
}
