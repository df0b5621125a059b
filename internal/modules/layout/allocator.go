package layout

import (
	"math"
	"sort"

	"expofloor/internal/domain"
)

const (
	// placementMargin is the gap left between a new stall and the stall it
	// anchors against.
	placementMargin = 1.0
	// overlapBuffer expands the overlap test so stalls keep a walkable gap
	// on all sides.
	overlapBuffer = 1.0
	// rowBand groups stalls into 5-meter rows for the anchor scan, and is
	// also the grid-scan step.
	rowBand = 5.0
)

// FindPosition searches for a free rectangle of the requested size inside a
// hall. occupied holds every rectangle already on the floor (stalls and
// fixtures alike), in any order.
//
// The search is deterministic so that repeated auto-placements over the
// same floor produce the same layout. Existing rectangles are visited in
// row-then-column order (rows are 5m bands by y, ties broken by x); for
// each one the spot immediately to its right is tried first, then the spot
// immediately below. If no anchored spot fits, a row-major grid scan in 5m
// steps covers the rest of the hall.
//
// The boolean result is false when both phases are exhausted; callers
// decide how to surface that, there is no silent fallback position.
func FindPosition(hallWidth, hallHeight float64, occupied []domain.Rect, width, height float64) (domain.Rect, bool) {
	fits := func(candidate domain.Rect) bool {
		if !candidate.Inside(hallWidth, hallHeight) {
			return false
		}
		for _, o := range occupied {
			if candidate.Overlaps(o, overlapBuffer) {
				return false
			}
		}
		return true
	}

	anchors := make([]domain.Rect, len(occupied))
	copy(anchors, occupied)
	sort.SliceStable(anchors, func(i, j int) bool {
		ri := math.Floor(anchors[i].Y / rowBand)
		rj := math.Floor(anchors[j].Y / rowBand)
		if ri != rj {
			return ri < rj
		}
		return anchors[i].X < anchors[j].X
	})

	for _, a := range anchors {
		right := domain.Rect{X: a.X + a.Width + placementMargin, Y: a.Y, Width: width, Height: height}
		if fits(right) {
			return right, true
		}
		below := domain.Rect{X: a.X, Y: a.Y + a.Height + placementMargin, Width: width, Height: height}
		if fits(below) {
			return below, true
		}
	}

	for y := 0.0; y <= hallHeight; y += rowBand {
		for x := 0.0; x <= hallWidth; x += rowBand {
			candidate := domain.Rect{X: x, Y: y, Width: width, Height: height}
			if fits(candidate) {
				return candidate, true
			}
		}
	}

	return domain.Rect{}, false
}
