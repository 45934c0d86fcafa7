package tokenize

import "errors"

var (
	// ErrInvalidWindow indicates a window size below one token.
	ErrInvalidWindow = errors.New("window size must be at least 1")

	// ErrInvalidOverlap indicates an overlap outside [0, windowSize).
	ErrInvalidOverlap = errors.New("overlap must be in [0, window size)")

	// ErrCodecRequired is returned when a nil codec is supplied.
	ErrCodecRequired = errors.New("codec required")
)
