package delaunay

import (
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// LowestCommonTangent finds the base edge joining two side-by-side
// triangulations: the lowest edge that is simultaneously tangent to both
// convex hulls. left must lie strictly to the left of right in x.
//
// It starts from left's outer edge and right's inner edge and walks each
// hull boundary until neither can be advanced any further toward the
// other: a right turn at the left candidate means the left hull's current
// edge still crosses into the right hull's territory, so it steps one
// further around; symmetrically for the right candidate walking the other
// direction.
//
// Complexity: O(h) where h is the combined hull size of left and right.
func LowestCommonTangent(left, right *quadedge.Subdivision) (leftE, rightE quadedge.HalfEdgeIndex) {
	leftE = left.Outer
	rightE = right.Inner

	p1, p2 := left.Org(leftE), left.Dest(leftE)
	p4, p5 := right.Org(rightE), right.Dest(rightE)

	for {
		switch {
		case predicate.OnRight(p1, p2, right.Org(rightE)):
			leftE = left.Onext(left.Sym(leftE))
			p1, p2 = left.Org(leftE), left.Dest(leftE)
		case predicate.OnLeft(p4, p5, left.Org(leftE)):
			rightE = right.Oprev(right.Sym(rightE))
			p4, p5 = right.Org(rightE), right.Dest(rightE)
		default:
			return leftE, rightE
		}
	}
}
