package primitive

import (
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// Build dispatches a point group produced by Split to LinePrimitive or
// TrianglePrimitive, according to its size.
func Build(group []predicate.Point) (*quadedge.Subdivision, error) {
	switch len(group) {
	case 2:
		return LinePrimitive(group), nil
	case 3:
		return TrianglePrimitive(group), nil
	default:
		return nil, ErrInvalidGroupSize
	}
}
