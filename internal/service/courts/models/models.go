package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	surfaceModels "github.com/m04kA/SMC-TennisClubService/internal/service/surfaces/models"
)

var (
	// ErrMissingSurfaceID возвращается, когда в запросе нет surfaceId
	ErrMissingSurfaceID = errors.New("surface id is required")

	// ErrInvalidName возвращается при пустом или слишком длинном имени
	ErrInvalidName = errors.New("invalid court name")
)

// SurfaceLookup источник живых покрытий для маппинга запроса
type SurfaceLookup interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Surface, error)
}

// CourtRequest запрос на создание или изменение корта
type CourtRequest struct {
	Name      string `json:"name"`
	SurfaceID *int64 `json:"surfaceId"`
}

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID      int64                          `json:"id"`
	Name    string                         `json:"name"`
	Surface *surfaceModels.SurfaceResponse `json:"surface"`
}

// ToDomainCourt конвертирует запрос в domain модель, разрешая покрытие через surfaces.
// Ошибка поиска покрытия возвращается обернутой, чтобы вызывающий мог проверить ее через errors.Is.
func ToDomainCourt(ctx context.Context, req *CourtRequest, surfaces SurfaceLookup) (*domain.Court, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, ErrInvalidName
	}
	if req.SurfaceID == nil {
		return nil, ErrMissingSurfaceID
	}

	surface, err := surfaces.GetActiveByID(ctx, *req.SurfaceID)
	if err != nil {
		return nil, fmt.Errorf("resolve surface id=%d: %w", *req.SurfaceID, err)
	}

	return &domain.Court{
		Name:      name,
		SurfaceID: surface.ID,
		Surface:   surface,
	}, nil
}

// FromDomainCourt конвертирует domain модель в ответ
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:      c.ID,
		Name:    c.Name,
		Surface: surfaceModels.FromDomainSurface(c.Surface),
	}
}

// FromDomainCourtList конвертирует список кортов
func FromDomainCourtList(courts []*domain.Court) []*CourtResponse {
	result := make([]*CourtResponse, 0, len(courts))
	for _, c := range courts {
		result = append(result, FromDomainCourt(c))
	}
	return result
}
