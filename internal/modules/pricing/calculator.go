package pricing

import (
	"math"

	"expofloor/internal/domain"
)

// ExtraSelection is a booker's choice of one paid amenity. Quantity
// defaults to 1 when left at zero.
type ExtraSelection struct {
	AmenityID int64 `json:"amenity_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// Quote prices a set of stalls against a rate card snapshot. The steps run
// in fixed order: base amount, discount, taxes, total. Each step consumes
// the previous step's output exactly. Amenities are resolved and attached
// for record-keeping but their cost never enters TotalAmount; extras are
// settled out-of-band.
//
// discountName selects at most one active discount from the card; an empty
// or unknown name applies no discount.
func Quote(stalls []domain.Stall, card domain.RateCard, discountName string, extras []ExtraSelection) domain.PricedBooking {
	var base float64
	var totalArea float64
	for _, st := range stalls {
		area := st.Bounds.Width * st.Bounds.Height
		base += area * st.RatePerSqm
		totalArea += area
	}

	out := domain.PricedBooking{
		BaseAmount:          base,
		AmountAfterDiscount: base,
	}

	if discountName != "" {
		if cfg, ok := card.DiscountByName(discountName); ok {
			amount := discountAmount(cfg, base)
			out.Discount = &domain.AppliedDiscount{
				Name:   cfg.Name,
				Type:   cfg.Type,
				Value:  cfg.Value,
				Amount: amount,
			}
			out.AmountAfterDiscount = base - amount
		}
	}

	for _, tax := range card.ActiveTaxes() {
		amount := out.AmountAfterDiscount * tax.Rate / 100
		out.Taxes = append(out.Taxes, domain.AppliedTax{
			Name:   tax.Name,
			Rate:   tax.Rate,
			Amount: amount,
		})
		out.TotalTaxAmount += amount
	}

	out.TotalAmount = out.AmountAfterDiscount + out.TotalTaxAmount

	out.BasicAmenities, out.ExtraAmenities, out.ExtraTotal = ResolveAmenities(
		totalArea, card.BasicAmenities, card.Amenities, extras,
	)

	return out
}

// discountAmount applies the clamping rules: percentage values are clamped
// into [0,100], fixed discounts never exceed the base amount and never go
// negative. The result is rounded to 2 decimals immediately so the error
// does not compound across many stalls.
func discountAmount(cfg domain.DiscountConfig, base float64) float64 {
	var amount float64
	switch cfg.Type {
	case domain.DiscountPercentage:
		pct := math.Min(math.Max(cfg.Value, 0), 100)
		amount = base * pct / 100
	case domain.DiscountFixed:
		amount = math.Min(math.Max(cfg.Value, 0), base)
	}
	return math.Round(amount*100) / 100
}

// Round2 rounds a monetary amount to 2 decimal places. Intermediate
// pricing steps stay unrounded; this is for display boundaries only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
