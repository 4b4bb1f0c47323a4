package pointgen

import "errors"

// Sentinel errors for point generation.
var (
	// ErrEmptyWorld indicates a world rectangle with x_min >= x_max or
	// y_min >= y_max was passed to a generator.
	ErrEmptyWorld = errors.New("pointgen: world rectangle has zero or negative area")

	// ErrInvalidCount indicates a non-positive point or grid dimension
	// count was passed to a generator.
	ErrInvalidCount = errors.New("pointgen: count must be positive")
)
