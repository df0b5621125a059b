package booking

import "errors"

var (
	// ErrStallNotFound means one of the requested stall IDs does not exist.
	ErrStallNotFound = errors.New("stall not found")
	// ErrStallUnavailable means at least one requested stall is reserved or
	// booked; the whole booking is refused, never a partial one.
	ErrStallUnavailable = errors.New("stall not available")
	// ErrExhibitionMismatch means the stall set spans more than one
	// exhibition or does not belong to the one named in the request.
	ErrExhibitionMismatch = errors.New("stalls do not belong to the exhibition")
	// ErrInvalidTransition means the transition table has no edge from the
	// booking's current status to the requested one.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrMissingRejectionReason blocks rejecting a booking without a reason.
	ErrMissingRejectionReason = errors.New("rejection requires a reason")
	// ErrTransitionConflict means a concurrent transition won the race; the
	// booking is no longer in the status the caller saw.
	ErrTransitionConflict = errors.New("booking status changed concurrently")
)
