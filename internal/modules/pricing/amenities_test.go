package pricing

import (
	"testing"

	"expofloor/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveAmenities_BasicFloorsPartialArea(t *testing.T) {
	basics := []domain.BasicAmenity{
		{Name: "Chairs", PerSqm: 10, Quantity: 2},
		{Name: "Power Point", PerSqm: 25, Quantity: 1},
	}

	// 48 sqm: floor(48/10)*2 = 8 chairs, floor(48/25)*1 = 1 power point
	basic, _, _ := ResolveAmenities(48, basics, nil, nil)

	assert.Len(t, basic, 2)
	assert.Equal(t, 8, basic[0].CalculatedQuantity)
	assert.Equal(t, 1, basic[1].CalculatedQuantity)
}

func TestResolveAmenities_ZeroQuantityRuleOmitted(t *testing.T) {
	basics := []domain.BasicAmenity{{Name: "Table", PerSqm: 50, Quantity: 1}}

	basic, _, _ := ResolveAmenities(49, basics, nil, nil)

	assert.Empty(t, basic)
}

func TestResolveAmenities_QuantityMonotonicInArea(t *testing.T) {
	basics := []domain.BasicAmenity{{Name: "Chairs", PerSqm: 10, Quantity: 3}}

	prev := 0
	for area := 0.0; area <= 200; area += 7.5 {
		basic, _, _ := ResolveAmenities(area, basics, nil, nil)
		qty := 0
		if len(basic) == 1 {
			qty = basic[0].CalculatedQuantity
		}
		assert.GreaterOrEqual(t, qty, prev)
		assert.Zero(t, qty%3)
		prev = qty
	}
}

func TestResolveAmenities_StaleSelectionDropped(t *testing.T) {
	catalog := []domain.Amenity{{ID: 1, Name: "Spotlight", Rate: 100}}
	selected := []ExtraSelection{
		{AmenityID: 1, Quantity: 2},
		{AmenityID: 42, Quantity: 1}, // removed from catalog after the form was opened
	}

	_, extras, total := ResolveAmenities(10, nil, catalog, selected)

	assert.Len(t, extras, 1)
	assert.Equal(t, int64(1), extras[0].AmenityID)
	assert.Equal(t, 200.0, total)
}

func TestResolveAmenities_DefaultQuantityIsOne(t *testing.T) {
	catalog := []domain.Amenity{{ID: 1, Name: "Carpet", Rate: 75}}

	_, extras, total := ResolveAmenities(10, nil, catalog, []ExtraSelection{{AmenityID: 1}})

	assert.Equal(t, 1, extras[0].Quantity)
	assert.Equal(t, 75.0, total)
}
