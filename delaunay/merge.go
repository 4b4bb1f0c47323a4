package delaunay

import "github.com/vhill-go/triangula/quadedge"

// MergeSubdivisions merges two side-by-side Delaunay subdivisions (left
// strictly left of right in x) into one, mutating left in place and
// returning it. right must not be used again afterward.
func MergeSubdivisions(left, right *quadedge.Subdivision) *quadedge.Subdivision {
	leftTangent, rightTangent := LowestCommonTangent(left, right)
	base := Combine(left, right, leftTangent, rightTangent)
	Zip(left, base)

	return left
}

// Reduce repeatedly pairs adjacent subdivisions and merges each pair,
// halving the list each pass, until a single subdivision remains. Pairing
// preserves left-to-right order so every merge satisfies
// MergeSubdivisions' disjointness precondition. An odd subdivision out at
// the end of a pass carries forward unmerged to the next pass.
//
// Package distributed calls this directly on its per-slab results, so slab
// results are merged by the same pairwise pass as base cases are. Each slab
// is split and reduced on its own first, so the overall merge order differs
// from that of a single sequential Triangulate call.
func Reduce(subs []*quadedge.Subdivision) *quadedge.Subdivision {
	for len(subs) > 1 {
		next := make([]*quadedge.Subdivision, 0, (len(subs)+1)/2)
		for i := 0; i < len(subs); i += 2 {
			if i+1 < len(subs) {
				next = append(next, MergeSubdivisions(subs[i], subs[i+1]))
			} else {
				next = append(next, subs[i])
			}
		}
		subs = next
	}

	return subs[0]
}
