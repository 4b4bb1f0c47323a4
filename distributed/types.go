package distributed

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for the distributed driver.
var (
	// ErrInvalidSlabCount indicates a non-positive SlabCount was passed in
	// Options.
	ErrInvalidSlabCount = errors.New("distributed: slab count must be positive")
)

// Options configures Triangulate.
type Options struct {
	// SlabCount is the number of x-slabs to partition the input into. A
	// value of 1 runs the entire input on a single goroutine, equivalent
	// to calling delaunay.Triangulate directly.
	SlabCount int

	// Logger receives structured progress and correlation logs for each
	// slab (slab ID, index, size, edge count). A nil Logger disables
	// logging.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
