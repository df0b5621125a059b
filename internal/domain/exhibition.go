package domain

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// StallRate maps a stall type to its price per square meter. The rate is
// copied onto a stall when the stall is created or edited; it is never
// re-read implicitly afterwards.
type StallRate struct {
	StallType  string  `json:"stall_type" validate:"required"`
	RatePerSqm float64 `json:"rate_per_sqm" validate:"gte=0"`
}

// TaxConfig is an active-flagged tax entry. Inactive entries are kept so
// that historical bookings can still name the taxes that applied to them.
type TaxConfig struct {
	Name     string  `json:"name" validate:"required"`
	Rate     float64 `json:"rate" validate:"gte=0"`
	IsActive bool    `json:"is_active"`
}

type DiscountConfig struct {
	Name     string       `json:"name" validate:"required"`
	Type     DiscountType `json:"type" validate:"required,oneof=percentage fixed"`
	Value    float64      `json:"value" validate:"gte=0"`
	IsActive bool         `json:"is_active"`
}

// BasicAmenity is bundled free with a booking: one set of Quantity units
// per PerSqm square meters of booked stall area, rounded down.
type BasicAmenity struct {
	Name     string  `json:"name" validate:"required"`
	PerSqm   float64 `json:"per_sqm" validate:"gt=0"`
	Quantity int     `json:"quantity" validate:"gt=0"`
}

// Amenity is an optional paid add-on selected by the booker.
type Amenity struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Rate        float64 `json:"rate" validate:"gte=0"`
	Description string  `json:"description,omitempty"`
}

type Exhibition struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Venue       string    `json:"venue,omitempty"`
	City        string    `json:"city,omitempty"`
	Width       float64   `json:"width" validate:"gt=0"`
	Height      float64   `json:"height" validate:"gt=0"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	RateCard RateCard `json:"rate_card"`
}

// RateCard is the exhibition-level pricing configuration. Pricing always
// receives it as an explicit snapshot parameter, never as an ambient read,
// so a calculation stays pure against concurrent admin edits.
type RateCard struct {
	StallRates      []StallRate      `json:"stall_rates"`
	Taxes           []TaxConfig      `json:"taxes"`
	Discounts       []DiscountConfig `json:"discounts"`
	PublicDiscounts []DiscountConfig `json:"public_discounts"`
	BasicAmenities  []BasicAmenity   `json:"basic_amenities"`
	Amenities       []Amenity        `json:"amenities"`
}

// RateFor returns the per-sqm rate for a stall type.
func (rc RateCard) RateFor(stallType string) (float64, bool) {
	for _, r := range rc.StallRates {
		if r.StallType == stallType {
			return r.RatePerSqm, true
		}
	}
	return 0, false
}

// DiscountByName looks up an active discount across both the admin and the
// public discount lists.
func (rc RateCard) DiscountByName(name string) (DiscountConfig, bool) {
	for _, list := range [][]DiscountConfig{rc.Discounts, rc.PublicDiscounts} {
		for _, d := range list {
			if d.IsActive && d.Name == name {
				return d, true
			}
		}
	}
	return DiscountConfig{}, false
}

// ActiveTaxes filters the tax list down to active entries.
func (rc RateCard) ActiveTaxes() []TaxConfig {
	out := make([]TaxConfig, 0, len(rc.Taxes))
	for _, t := range rc.Taxes {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out
}
