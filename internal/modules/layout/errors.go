package layout

import "errors"

var (
	// ErrInvalidGeometry covers non-positive sizes and rectangles that do
	// not lie inside their parent bounds.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrNoSpace means the allocator exhausted both search phases. The
	// caller decides what to do; nothing is placed at the origin silently.
	ErrNoSpace = errors.New("no free position in hall")
	// ErrUnknownStallType means the exhibition's rate card has no rate for
	// the requested stall type.
	ErrUnknownStallType = errors.New("unknown stall type")
	// ErrDuplicateHallName enforces hall-name uniqueness per exhibition.
	ErrDuplicateHallName = errors.New("hall name already used in exhibition")
	// ErrStallInUse blocks deleting a stall that is reserved or booked.
	ErrStallInUse = errors.New("stall is reserved or booked")
)
