package catalog

import "errors"

var (
	// ErrInvalidBounds covers non-positive exhibition floor dimensions.
	ErrInvalidBounds = errors.New("exhibition bounds must be positive")
	// ErrValidation wraps rate card entries that fail field validation.
	ErrValidation = errors.New("invalid rate card entry")
)
