package filter

import "errors"

// Validation errors returned before evaluation starts. All are fatal to
// the call; the engine never returns partial results. Callers can match
// them with errors.Is.
var (
	// ErrInvalidImage reports a nil or empty source image.
	ErrInvalidImage = errors.New("invalid image")

	// ErrInvalidBoundsShape reports a bounds slice whose length is
	// neither 2 nor 6.
	ErrInvalidBoundsShape = errors.New("bounds must have 2 or 6 values")

	// ErrInvalidBoundsForMode reports a bounds length that is legal in
	// itself but does not match the selected mode (6 bounds require
	// mode 0 or 1, 2 bounds require mode 2 or 3).
	ErrInvalidBoundsForMode = errors.New("bounds length does not match mode")

	// ErrInvalidMode reports a mode outside [0,3].
	ErrInvalidMode = errors.New("mode must be between 0 and 3")

	// ErrInvalidColor reports a malformed replacement color string.
	ErrInvalidColor = errors.New("invalid replacement color")

	// ErrInvalidRegion reports a requested crop extent that is
	// non-positive or exceeds the source image.
	ErrInvalidRegion = errors.New("invalid region")
)
