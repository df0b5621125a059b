package catalog

import (
	"time"

	"expofloor/internal/domain"
)

type CreateExhibitionRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	Width       float64   `json:"width" binding:"required"`
	Height      float64   `json:"height" binding:"required"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`

	RateCard *domain.RateCard `json:"rate_card"`
}

type UpdateExhibitionRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Venue       *string    `json:"venue"`
	City        *string    `json:"city"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// Rate card section updates replace one list wholesale. Partial edits of
// individual entries are done client-side and sent back as the full list.
type UpdateStallRatesRequest struct {
	StallRates []domain.StallRate `json:"stall_rates" binding:"required"`
}

type UpdateTaxesRequest struct {
	Taxes []domain.TaxConfig `json:"taxes" binding:"required"`
}

type UpdateDiscountsRequest struct {
	Discounts       []domain.DiscountConfig `json:"discounts"`
	PublicDiscounts []domain.DiscountConfig `json:"public_discounts"`
}

type UpdateAmenitiesRequest struct {
	BasicAmenities []domain.BasicAmenity `json:"basic_amenities"`
	Amenities      []domain.Amenity      `json:"amenities"`
}
