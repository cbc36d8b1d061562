package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
)

// CreateSurfaceRequest запрос на создание покрытия
type CreateSurfaceRequest struct {
	Name           string          `json:"name"`
	PricePerMinute decimal.Decimal `json:"pricePerMinute"`
}

// SurfaceResponse ответ с данными покрытия
type SurfaceResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	PricePerMinute decimal.Decimal `json:"pricePerMinute"`
}

// ToDomainSurface конвертирует запрос в domain модель
func (r *CreateSurfaceRequest) ToDomainSurface() *domain.Surface {
	return &domain.Surface{
		Name:           r.Name,
		PricePerMinute: r.PricePerMinute,
	}
}

// FromDomainSurface конвертирует domain модель в ответ
func FromDomainSurface(s *domain.Surface) *SurfaceResponse {
	if s == nil {
		return nil
	}
	return &SurfaceResponse{
		ID:             s.ID,
		Name:           s.Name,
		PricePerMinute: s.PricePerMinute,
	}
}

// FromDomainSurfaceList конвертирует список покрытий
func FromDomainSurfaceList(surfaces []*domain.Surface) []*SurfaceResponse {
	result := make([]*SurfaceResponse, 0, len(surfaces))
	for _, s := range surfaces {
		result = append(result, FromDomainSurface(s))
	}
	return result
}
