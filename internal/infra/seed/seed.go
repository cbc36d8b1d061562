package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// Seeder заполняет пустую базу стандартными покрытиями и кортами
type Seeder struct {
	surfaces  SurfaceRepository
	courts    CourtRepository
	txManager TransactionManager
	logger    Logger
}

// NewSeeder создает новый экземпляр seeder
func NewSeeder(surfaces SurfaceRepository, courts CourtRepository, txManager TransactionManager, logger Logger) *Seeder {
	return &Seeder{
		surfaces:  surfaces,
		courts:    courts,
		txManager: txManager,
		logger:    logger,
	}
}

// Run создает покрытия Clay (0.5/мин) и Grass (0.8/мин) и корты Court 1..4
// (нечетные Grass, четные Clay). Ничего не делает, если живые покрытия уже есть.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.surfaces.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: list surfaces: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("Seed: %d surfaces already present, skipping", len(existing))
		return nil
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		clay, err := s.surfaces.Create(txCtx, &domain.Surface{Name: "Clay", PricePerMinute: decimal.RequireFromString("0.5")})
		if err != nil {
			return fmt.Errorf("seed: create surface Clay: %w", err)
		}
		grass, err := s.surfaces.Create(txCtx, &domain.Surface{Name: "Grass", PricePerMinute: decimal.RequireFromString("0.8")})
		if err != nil {
			return fmt.Errorf("seed: create surface Grass: %w", err)
		}

		for i := 1; i <= domain.SeedCourtsCount; i++ {
			surfaceID := clay.ID
			if i%2 == 1 {
				surfaceID = grass.ID
			}
			if _, err := s.courts.Create(txCtx, &domain.Court{Name: fmt.Sprintf("Court %d", i), SurfaceID: surfaceID}); err != nil {
				return fmt.Errorf("seed: create court %d: %w", i, err)
			}
		}

		s.logger.Info("Seed: created 2 surfaces and %d courts", domain.SeedCourtsCount)
		return nil
	})
}
