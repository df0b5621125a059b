package pricing

import (
	"math"

	"expofloor/internal/domain"
)

// ResolveAmenities turns the total booked stall area and the booker's
// extra-amenity selections into resolved amenity lines.
//
// Basic amenities model "1 set of N units per M sqm": the calculated
// quantity is floor(area/perSqm)*quantity, so partial allocations never
// grant a unit, and rules that resolve to zero are omitted entirely.
//
// Extra selections referencing an amenity that is no longer in the catalog
// are dropped silently; the catalog may have been edited while the booking
// form was open and a stale row is not worth failing the whole booking.
func ResolveAmenities(
	totalArea float64,
	basics []domain.BasicAmenity,
	catalog []domain.Amenity,
	selected []ExtraSelection,
) ([]domain.ResolvedBasicAmenity, []domain.BookedExtraAmenity, float64) {
	resolved := make([]domain.ResolvedBasicAmenity, 0, len(basics))
	for _, rule := range basics {
		if rule.PerSqm <= 0 {
			continue
		}
		qty := int(math.Floor(totalArea/rule.PerSqm)) * rule.Quantity
		if qty <= 0 {
			continue
		}
		resolved = append(resolved, domain.ResolvedBasicAmenity{
			Name:               rule.Name,
			PerSqm:             rule.PerSqm,
			Quantity:           rule.Quantity,
			CalculatedQuantity: qty,
		})
	}

	byID := make(map[int64]domain.Amenity, len(catalog))
	for _, a := range catalog {
		byID[a.ID] = a
	}

	extras := make([]domain.BookedExtraAmenity, 0, len(selected))
	var extraTotal float64
	for _, sel := range selected {
		a, ok := byID[sel.AmenityID]
		if !ok {
			continue
		}
		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		line := a.Rate * float64(qty)
		extras = append(extras, domain.BookedExtraAmenity{
			AmenityID: a.ID,
			Name:      a.Name,
			Rate:      a.Rate,
			Quantity:  qty,
			LineTotal: line,
		})
		extraTotal += line
	}

	return resolved, extras, extraTotal
}
