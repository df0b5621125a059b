package catalog

import (
	"context"

	"expofloor/internal/domain"
)

type ExhibitionRepository interface {
	Create(ctx context.Context, e *domain.Exhibition) error
	GetByID(ctx context.Context, id int64) (*domain.Exhibition, error)
	List(ctx context.Context) ([]domain.Exhibition, error)
	Update(ctx context.Context, e *domain.Exhibition) error
	UpdateRateCard(ctx context.Context, id int64, card domain.RateCard) error
}
