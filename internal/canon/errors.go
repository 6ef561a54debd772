package canon

import "errors"

var (
	// ErrInvalidURL reports a structural parse failure. Callers should
	// drop the input and log it, never substitute a default.
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidPath reports a path that does not start with '/'. That
	// is a caller bug rather than a runtime condition, so it should
	// propagate instead of being swallowed.
	ErrInvalidPath = errors.New("invalid path")
)
