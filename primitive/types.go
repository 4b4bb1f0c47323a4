package primitive

import "errors"

// Sentinel errors for primitive construction.
var (
	// ErrInvalidGroupSize indicates a point group of size other than 2 or 3
	// was passed to Build. This is a programmer error in the splitter, not
	// a recoverable input condition.
	ErrInvalidGroupSize = errors.New("primitive: group size must be 2 or 3")

	// ErrEmptyInput indicates Split was called with zero points.
	ErrEmptyInput = errors.New("primitive: cannot split an empty point list")
)
