package primitive

import (
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// LinePrimitive builds the trivial triangulation of two points: a single
// edge, with both extreme-edge pointers set to its two halves. pts must
// have exactly two elements in lexicographic order.
//
// Complexity: O(1).
func LinePrimitive(pts []predicate.Point) *quadedge.Subdivision {
	s := quadedge.New(pts)

	e, eSym := s.SetupEdge(0, 1)
	s.SetExtremeEdges(e, eSym)

	return s
}
