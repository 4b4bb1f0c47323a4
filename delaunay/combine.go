package delaunay

import (
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// Combine merges right's arena into left and connects the tangent
// half-edges found by LowestCommonTangent with a new base edge, returning
// the base edge's index in the merged arena. left is mutated in place and
// becomes the merged (not yet zipped) subdivision; right must not be used
// again.
//
// Complexity: O(|right.Edges| + |right.Points|), dominated by the arena
// merge.
func Combine(left, right *quadedge.Subdivision, leftTangent, rightTangent quadedge.HalfEdgeIndex) quadedge.HalfEdgeIndex {
	ldo := left.Inner
	rdo := right.Outer

	edgeShift, _ := left.Merge(right)

	rdi := rightTangent + edgeShift
	rdo += edgeShift

	base := left.Connect(left.Sym(leftTangent), rdi)

	if predicate.Equal(left.Org(leftTangent), left.Org(ldo)) {
		ldo = base
	}
	if predicate.Equal(left.Org(rdi), left.Org(rdo)) {
		rdo = left.Sym(base)
	}

	left.SetExtremeEdges(ldo, rdo)

	return base
}
