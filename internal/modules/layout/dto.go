package layout

import "expofloor/internal/domain"

type CreateHallRequest struct {
	ExhibitionID int64   `json:"exhibition_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width" binding:"required"`
	Height       float64 `json:"height" binding:"required"`
}

// CreateStallRequest creates a stall. When X and Y are both omitted the
// allocator picks a position; an explicitly provided position is used
// as-is (it still has to be inside the hall). Providing only one of the
// two is rejected as invalid geometry.
type CreateStallRequest struct {
	Name      string   `json:"name" binding:"required"`
	StallType string   `json:"stall_type" binding:"required"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Width     float64  `json:"width" binding:"required"`
	Height    float64  `json:"height" binding:"required"`
}

// UpdateStallRequest edits a stall in place. Position and size edits keep
// whatever the admin sends without overlap validation; deliberate
// overlaps are allowed on manual edits. A changed stall type re-copies
// the rate from the exhibition's current rate card.
type UpdateStallRequest struct {
	Name      *string  `json:"name"`
	StallType *string  `json:"stall_type"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Width     *float64 `json:"width"`
	Height    *float64 `json:"height"`
}

type CreateFixtureRequest struct {
	Name   string  `json:"name"`
	Type   string  `json:"type" binding:"required"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width" binding:"required"`
	Height float64 `json:"height" binding:"required"`
}

// FloorResponse is the full picture of one hall: its bounds plus
// everything placed on it.
type FloorResponse struct {
	Hall     domain.Hall      `json:"hall"`
	Stalls   []domain.Stall   `json:"stalls"`
	Fixtures []domain.Fixture `json:"fixtures"`
}
