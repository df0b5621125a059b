package domain

// Rect is an axis-aligned rectangle. Coordinates are local to the parent
// (exhibition-local for halls, hall-local for stalls and fixtures) and are
// expressed in meters.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Overlaps reports whether r and o intersect once both are expanded by
// buffer units on every side. A zero buffer gives the strict AABB test.
func (r Rect) Overlaps(o Rect, buffer float64) bool {
	return r.X+r.Width+buffer > o.X &&
		r.X < o.X+o.Width+buffer &&
		r.Y+r.Height+buffer > o.Y &&
		r.Y < o.Y+o.Height+buffer
}

// Inside reports whether r lies fully within a width×height area anchored
// at the origin.
func (r Rect) Inside(width, height float64) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.X+r.Width <= width &&
		r.Y+r.Height <= height
}
