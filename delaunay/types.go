package delaunay

import "github.com/vhill-go/triangula/predicate"

// Options configures Triangulate.
type Options struct {
	// Compact reclaims deactivated half-edge arena slots (left behind by
	// the zip step's candidate pruning) once the merge completes, at the
	// cost of a full renumbering pass over the finished subdivision.
	Compact bool
}

// SortPoints sorts pts into the lexicographic order the merge engine
// requires, in place. Triangulate calls this on its own copy of its input
// and does not require callers to pre-sort.
func SortPoints(pts []predicate.Point) {
	predicate.SortLex(pts)
}
