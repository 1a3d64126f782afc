package draft

import "errors"

var (
	// ErrUnavailable indicates the parser backend is unreachable.
	ErrUnavailable = errors.New("parser backend unavailable")

	// ErrInvalidOutput indicates the model response could not be
	// parsed into gig fields.
	ErrInvalidOutput = errors.New("invalid parser output")
)
