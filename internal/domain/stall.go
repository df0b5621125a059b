package domain

import "time"

type StallStatus string

const (
	StallAvailable StallStatus = "available"
	StallReserved  StallStatus = "reserved"
	StallBooked    StallStatus = "booked"
)

// Stall is a bookable rectangular unit within a hall, priced by
// area × rate. RatePerSqm is copied from the exhibition's rate card when
// the stall is created or edited. Status is written only by the booking
// transition handler, never by layout edits.
type Stall struct {
	ID         int64       `json:"id"`
	HallID     int64       `json:"hall_id" validate:"required"`
	Name       string      `json:"name" validate:"required"`
	StallType  string      `json:"stall_type" validate:"required"`
	RatePerSqm float64     `json:"rate_per_sqm"`
	Status     StallStatus `json:"status"`
	Bounds     Rect        `json:"bounds"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (s Stall) Area() float64 {
	return s.Bounds.Area()
}
