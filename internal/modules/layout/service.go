package layout

import (
	"context"
	"errors"

	"expofloor/internal/domain"
	"expofloor/internal/repository"
)

type Service struct {
	exhibitions ExhibitionRepository
	halls       HallRepository
	stalls      StallRepository
}

func NewService(exhibitions ExhibitionRepository, halls HallRepository, stalls StallRepository) *Service {
	return &Service{
		exhibitions: exhibitions,
		halls:       halls,
		stalls:      stalls,
	}
}

func (s *Service) CreateHall(ctx context.Context, req CreateHallRequest) (*domain.Hall, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, ErrInvalidGeometry
	}

	ex, err := s.exhibitions.GetByID(ctx, req.ExhibitionID)
	if err != nil {
		return nil, err
	}

	bounds := domain.Rect{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}
	if !bounds.Inside(ex.Width, ex.Height) {
		return nil, ErrInvalidGeometry
	}

	h := &domain.Hall{
		ExhibitionID: req.ExhibitionID,
		Name:         req.Name,
		Bounds:       bounds,
	}
	if err := s.halls.Create(ctx, h); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrDuplicateHallName
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) ListHalls(ctx context.Context, exhibitionID int64) ([]domain.Hall, error) {
	return s.halls.ListByExhibition(ctx, exhibitionID)
}

// GetFloor returns a hall with everything placed on it.
func (s *Service) GetFloor(ctx context.Context, hallID int64) (*FloorResponse, error) {
	hall, err := s.halls.GetByID(ctx, hallID)
	if err != nil {
		return nil, err
	}
	stalls, err := s.stalls.ListByHall(ctx, hallID)
	if err != nil {
		return nil, err
	}
	fixtures, err := s.halls.ListFixturesByHall(ctx, hallID)
	if err != nil {
		return nil, err
	}
	return &FloorResponse{Hall: *hall, Stalls: stalls, Fixtures: fixtures}, nil
}

// CreateStall places a new stall in a hall. Without explicit coordinates
// the allocator searches for a free spot among the existing stalls and
// fixtures; when it finds none the caller gets ErrNoSpace and decides
// what to do. With explicit coordinates the position is taken as-is
// (inside the hall, overlap intentionally unchecked).
//
// The stall's rate per sqm is copied from the exhibition's rate card here
// and frozen on the stall; later rate card edits do not touch it.
func (s *Service) CreateStall(ctx context.Context, hallID int64, req CreateStallRequest) (*domain.Stall, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, ErrInvalidGeometry
	}
	// a position is explicit or absent, never half of one
	if (req.X == nil) != (req.Y == nil) {
		return nil, ErrInvalidGeometry
	}

	hall, err := s.halls.GetByID(ctx, hallID)
	if err != nil {
		return nil, err
	}
	ex, err := s.exhibitions.GetByID(ctx, hall.ExhibitionID)
	if err != nil {
		return nil, err
	}
	rate, ok := ex.RateCard.RateFor(req.StallType)
	if !ok {
		return nil, ErrUnknownStallType
	}

	var bounds domain.Rect
	if req.X != nil && req.Y != nil {
		bounds = domain.Rect{X: *req.X, Y: *req.Y, Width: req.Width, Height: req.Height}
		if !bounds.Inside(hall.Bounds.Width, hall.Bounds.Height) {
			return nil, ErrInvalidGeometry
		}
	} else {
		if req.Width > hall.Bounds.Width || req.Height > hall.Bounds.Height {
			return nil, ErrInvalidGeometry
		}
		occupied, err := s.occupiedRects(ctx, hallID)
		if err != nil {
			return nil, err
		}
		pos, found := FindPosition(hall.Bounds.Width, hall.Bounds.Height, occupied, req.Width, req.Height)
		if !found {
			return nil, ErrNoSpace
		}
		bounds = pos
	}

	stall := &domain.Stall{
		HallID:     hallID,
		Name:       req.Name,
		StallType:  req.StallType,
		RatePerSqm: rate,
		Status:     domain.StallAvailable,
		Bounds:     bounds,
	}
	if err := s.stalls.Create(ctx, stall); err != nil {
		return nil, err
	}
	return stall, nil
}

// UpdateStall edits a stall in place. The new position/size is kept
// verbatim, with containment enforced but overlap deliberately not
// re-validated; the allocator only runs for auto-placed creations.
func (s *Service) UpdateStall(ctx context.Context, stallID int64, req UpdateStallRequest) (*domain.Stall, error) {
	stall, err := s.stalls.GetByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	hall, err := s.halls.GetByID(ctx, stall.HallID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		stall.Name = *req.Name
	}
	if req.StallType != nil && *req.StallType != stall.StallType {
		ex, err := s.exhibitions.GetByID(ctx, hall.ExhibitionID)
		if err != nil {
			return nil, err
		}
		rate, ok := ex.RateCard.RateFor(*req.StallType)
		if !ok {
			return nil, ErrUnknownStallType
		}
		stall.StallType = *req.StallType
		stall.RatePerSqm = rate
	}
	if req.X != nil {
		stall.Bounds.X = *req.X
	}
	if req.Y != nil {
		stall.Bounds.Y = *req.Y
	}
	if req.Width != nil {
		stall.Bounds.Width = *req.Width
	}
	if req.Height != nil {
		stall.Bounds.Height = *req.Height
	}

	if stall.Bounds.Width <= 0 || stall.Bounds.Height <= 0 {
		return nil, ErrInvalidGeometry
	}
	if !stall.Bounds.Inside(hall.Bounds.Width, hall.Bounds.Height) {
		return nil, ErrInvalidGeometry
	}

	if err := s.stalls.Update(ctx, stall); err != nil {
		return nil, err
	}
	return stall, nil
}

func (s *Service) DeleteStall(ctx context.Context, stallID int64) error {
	if err := s.stalls.Delete(ctx, stallID); err != nil {
		if errors.Is(err, repository.ErrStallUnavailable) {
			return ErrStallInUse
		}
		return err
	}
	return nil
}

func (s *Service) CreateFixture(ctx context.Context, hallID int64, req CreateFixtureRequest) (*domain.Fixture, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, ErrInvalidGeometry
	}
	hall, err := s.halls.GetByID(ctx, hallID)
	if err != nil {
		return nil, err
	}
	bounds := domain.Rect{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}
	if !bounds.Inside(hall.Bounds.Width, hall.Bounds.Height) {
		return nil, ErrInvalidGeometry
	}

	f := &domain.Fixture{
		HallID: hallID,
		Name:   req.Name,
		Type:   domain.FixtureType(req.Type),
		Bounds: bounds,
	}
	if err := s.halls.CreateFixture(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// occupiedRects gathers everything the allocator must avoid: stalls and
// fixtures alike. Fixtures are not bookable but they do occupy floor.
func (s *Service) occupiedRects(ctx context.Context, hallID int64) ([]domain.Rect, error) {
	stalls, err := s.stalls.ListByHall(ctx, hallID)
	if err != nil {
		return nil, err
	}
	fixtures, err := s.halls.ListFixturesByHall(ctx, hallID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Rect, 0, len(stalls)+len(fixtures))
	for _, st := range stalls {
		out = append(out, st.Bounds)
	}
	for _, f := range fixtures {
		out = append(out, f.Bounds)
	}
	return out, nil
}
