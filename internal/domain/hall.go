package domain

import "time"

// Hall is a rectangular sub-region of an exhibition's floor space.
// Bounds are in exhibition-local coordinates and must lie within the
// exhibition's width×height. Hall names are unique per exhibition.
type Hall struct {
	ID           int64     `json:"id"`
	ExhibitionID int64     `json:"exhibition_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Bounds       Rect      `json:"bounds"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FixtureType string

const (
	FixtureEntrance FixtureType = "entrance"
	FixturePillar   FixtureType = "pillar"
	FixtureWalkway  FixtureType = "walkway"
	FixtureDesk     FixtureType = "desk"
)

// Fixture is a decorative or navigational object sharing the hall's
// coordinate space. Fixtures occupy floor area for placement purposes but
// are never bookable and never priced.
type Fixture struct {
	ID        int64       `json:"id"`
	HallID    int64       `json:"hall_id" validate:"required"`
	Name      string      `json:"name"`
	Type      FixtureType `json:"type"`
	Bounds    Rect        `json:"bounds"`
	CreatedAt time.Time   `json:"created_at"`
}
