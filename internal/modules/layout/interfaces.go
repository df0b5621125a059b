package layout

import (
	"context"

	"expofloor/internal/domain"
)

// ExhibitionRepository is the slice of the catalog the layout service
// needs: exhibition bounds and the rate card to copy stall rates from.
type ExhibitionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Exhibition, error)
}

type HallRepository interface {
	Create(ctx context.Context, h *domain.Hall) error
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	ListByExhibition(ctx context.Context, exhibitionID int64) ([]domain.Hall, error)
	Update(ctx context.Context, h *domain.Hall) error
	Delete(ctx context.Context, id int64) error
	CreateFixture(ctx context.Context, f *domain.Fixture) error
	ListFixturesByHall(ctx context.Context, hallID int64) ([]domain.Fixture, error)
}

type StallRepository interface {
	Create(ctx context.Context, s *domain.Stall) error
	GetByID(ctx context.Context, id int64) (*domain.Stall, error)
	ListByHall(ctx context.Context, hallID int64) ([]domain.Stall, error)
	Update(ctx context.Context, s *domain.Stall) error
	Delete(ctx context.Context, id int64) error
}
