package catalog

import (
	"context"
	"fmt"

	"expofloor/internal/domain"
	"expofloor/internal/pkg/validator"
)

type Service struct {
	exhibitions ExhibitionRepository
}

func NewService(exhibitions ExhibitionRepository) *Service {
	return &Service{exhibitions: exhibitions}
}

func (s *Service) CreateExhibition(ctx context.Context, req CreateExhibitionRequest) (*domain.Exhibition, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, ErrInvalidBounds
	}

	e := &domain.Exhibition{
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		City:        req.City,
		Width:       req.Width,
		Height:      req.Height,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if req.RateCard != nil {
		if err := validateRateCard(*req.RateCard); err != nil {
			return nil, err
		}
		e.RateCard = *req.RateCard
	}

	if err := s.exhibitions.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetExhibition(ctx context.Context, id int64) (*domain.Exhibition, error) {
	return s.exhibitions.GetByID(ctx, id)
}

func (s *Service) ListExhibitions(ctx context.Context) ([]domain.Exhibition, error) {
	return s.exhibitions.List(ctx)
}

// UpdateExhibition edits descriptive fields only. Floor dimensions are
// fixed after creation so that existing hall containment cannot be broken.
func (s *Service) UpdateExhibition(ctx context.Context, id int64, req UpdateExhibitionRequest) (*domain.Exhibition, error) {
	e, err := s.exhibitions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Venue != nil {
		e.Venue = *req.Venue
	}
	if req.City != nil {
		e.City = *req.City
	}
	if req.StartsAt != nil {
		e.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		e.EndsAt = *req.EndsAt
	}

	if err := s.exhibitions.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// RateCardSnapshot hands out the current pricing configuration. Pricing
// callers keep the returned value; later admin edits do not affect it.
func (s *Service) RateCardSnapshot(ctx context.Context, exhibitionID int64) (domain.RateCard, error) {
	e, err := s.exhibitions.GetByID(ctx, exhibitionID)
	if err != nil {
		return domain.RateCard{}, err
	}
	return e.RateCard, nil
}

func (s *Service) UpdateStallRates(ctx context.Context, id int64, req UpdateStallRatesRequest) (*domain.RateCard, error) {
	return s.patchRateCard(ctx, id, func(card *domain.RateCard) {
		card.StallRates = req.StallRates
	})
}

func (s *Service) UpdateTaxes(ctx context.Context, id int64, req UpdateTaxesRequest) (*domain.RateCard, error) {
	return s.patchRateCard(ctx, id, func(card *domain.RateCard) {
		card.Taxes = req.Taxes
	})
}

func (s *Service) UpdateDiscounts(ctx context.Context, id int64, req UpdateDiscountsRequest) (*domain.RateCard, error) {
	return s.patchRateCard(ctx, id, func(card *domain.RateCard) {
		if req.Discounts != nil {
			card.Discounts = req.Discounts
		}
		if req.PublicDiscounts != nil {
			card.PublicDiscounts = req.PublicDiscounts
		}
	})
}

func (s *Service) UpdateAmenities(ctx context.Context, id int64, req UpdateAmenitiesRequest) (*domain.RateCard, error) {
	return s.patchRateCard(ctx, id, func(card *domain.RateCard) {
		if req.BasicAmenities != nil {
			card.BasicAmenities = req.BasicAmenities
		}
		if req.Amenities != nil {
			card.Amenities = req.Amenities
		}
	})
}

// patchRateCard reads the current card, applies one section edit, validates
// the result and writes the whole card back in one update.
func (s *Service) patchRateCard(ctx context.Context, id int64, apply func(*domain.RateCard)) (*domain.RateCard, error) {
	e, err := s.exhibitions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	card := e.RateCard
	apply(&card)
	if err := validateRateCard(card); err != nil {
		return nil, err
	}

	if err := s.exhibitions.UpdateRateCard(ctx, id, card); err != nil {
		return nil, err
	}
	return &card, nil
}

func validateRateCard(card domain.RateCard) error {
	for _, r := range card.StallRates {
		if errs := validator.Validate(r); errs != nil {
			return fmt.Errorf("%w: stall rate %q: %v", ErrValidation, r.StallType, errs)
		}
	}
	for _, t := range card.Taxes {
		if errs := validator.Validate(t); errs != nil {
			return fmt.Errorf("%w: tax %q: %v", ErrValidation, t.Name, errs)
		}
	}
	for _, list := range [][]domain.DiscountConfig{card.Discounts, card.PublicDiscounts} {
		for _, d := range list {
			if errs := validator.Validate(d); errs != nil {
				return fmt.Errorf("%w: discount %q: %v", ErrValidation, d.Name, errs)
			}
		}
	}
	for _, a := range card.BasicAmenities {
		if errs := validator.Validate(a); errs != nil {
			return fmt.Errorf("%w: basic amenity %q: %v", ErrValidation, a.Name, errs)
		}
	}
	for _, a := range card.Amenities {
		if errs := validator.Validate(a); errs != nil {
			return fmt.Errorf("%w: amenity %q: %v", ErrValidation, a.Name, errs)
		}
	}
	return nil
}
