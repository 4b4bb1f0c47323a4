package delaunay

import (
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/primitive"
	"github.com/vhill-go/triangula/quadedge"
)

// Triangulate computes the Delaunay triangulation of pts using the
// Guibas-Stolfi divide-and-conquer algorithm: sort, split into base-case
// groups, build a primitive subdivision per group, then recursively merge
// pairs until one subdivision remains.
//
// pts need not be pre-sorted; Triangulate copies and sorts it
// lexicographically before building anything, so the returned
// Subdivision's point indices correspond to the sorted copy, not the
// caller's original ordering. Duplicate points are not rejected; they
// triangulate as a degenerate (zero-area) case rather than erroring.
//
// Zero points returns an empty Subdivision. One point returns a
// Subdivision with that point and no edges. Both are handled directly,
// without going through primitive.Split, which has no group size for
// fewer than two points.
func Triangulate(pts []predicate.Point, opts Options) (*quadedge.Subdivision, error) {
	sorted := make([]predicate.Point, len(pts))
	copy(sorted, pts)
	predicate.SortLex(sorted)

	if len(sorted) < 2 {
		return quadedge.New(sorted), nil
	}

	groups, err := primitive.Split(sorted)
	if err != nil {
		return nil, err
	}

	subs := make([]*quadedge.Subdivision, len(groups))
	for i, g := range groups {
		sub, err := primitive.Build(g)
		if err != nil {
			return nil, err
		}
		subs[i] = sub
	}

	result := Reduce(subs)

	if opts.Compact {
		result.Compact()
	}

	return result, nil
}
