package primitive

import (
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// TrianglePrimitive builds the trivial triangulation of three points. pts
// must have exactly three elements in lexicographic order (p0 < p1 < p2).
//
// Two edges are laid down, p0->p1 and p1->p2, spliced at their shared point
// p1. A third edge is then decided by the orientation of the triple:
//
//   - p2 right of the directed line p0->p1 (counterclockwise triple): close
//     the triangle with Connect(p1->p2, p0->p1); Inner is p0->p1 and Outer
//     is p2->p1, the Sym of the second edge.
//   - p2 left of that line (clockwise triple): same Connect, which creates
//     p2->p0; Inner is its Sym (p0->p2) and Outer is the new edge itself,
//     since the hull winds the other way.
//   - p0, p1, p2 collinear: no third edge is meaningful; the result is a
//     two-edge polyline and Inner/Outer are the same as LinePrimitive would
//     give for the first and last point.
//
// Complexity: O(1).
func TrianglePrimitive(pts []predicate.Point) *quadedge.Subdivision {
	s := quadedge.New(pts)

	a, aSym := s.SetupEdge(0, 1)
	b, bSym := s.SetupEdge(1, 2)
	s.Splice(aSym, b)

	p0, p1, p2 := pts[0], pts[1], pts[2]

	switch {
	case predicate.OnRight(p0, p1, p2):
		s.Connect(b, a)
		s.SetExtremeEdges(a, bSym)
	case predicate.OnLeft(p0, p1, p2):
		c := s.Connect(b, a)
		s.SetExtremeEdges(s.Edge(c).Sym, c)
	default:
		s.SetExtremeEdges(a, bSym)
	}

	return s
}
