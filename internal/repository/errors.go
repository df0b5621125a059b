package repository

import "errors"

var (
	// ErrStallUnavailable is returned when a booking tries to claim a stall
	// that is not in available status (or was claimed concurrently).
	ErrStallUnavailable = errors.New("stall unavailable")
	// ErrStallNotFound is returned when a claimed stall id does not exist.
	ErrStallNotFound = errors.New("stall not found")
	// ErrTransitionConflict is returned when a guarded status update found
	// the booking no longer in the expected source status.
	ErrTransitionConflict = errors.New("booking status changed concurrently")
	// ErrDuplicateName is returned when a unique-name check fails.
	ErrDuplicateName = errors.New("duplicate name")
)
