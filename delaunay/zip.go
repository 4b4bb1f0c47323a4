package delaunay

import (
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// rightCandidate advances rcand around the merged arena's Onext ring,
// killing edges that violate the Delaunay property against the current
// base edge, until the first edge that either turns away from the base or
// already satisfies the in-circle test survives.
func rightCandidate(s *quadedge.Subdivision, rcand quadedge.HalfEdgeIndex, base1, base2 predicate.Point) quadedge.HalfEdgeIndex {
	for {
		onextDest := s.Dest(s.Onext(rcand))
		dest := s.Dest(rcand)

		turnsIn := predicate.OnRight(base1, base2, onextDest)
		fails := predicate.InCircle(base2, base1, dest, onextDest)

		if !(turnsIn && fails) {
			return rcand
		}

		next := s.Onext(rcand)
		s.KillEdge(rcand)
		rcand = next
	}
}

// leftCandidate is rightCandidate's mirror image, walking Oprev instead of
// Onext.
func leftCandidate(s *quadedge.Subdivision, lcand quadedge.HalfEdgeIndex, base1, base2 predicate.Point) quadedge.HalfEdgeIndex {
	for {
		oprevDest := s.Dest(s.Oprev(lcand))
		dest := s.Dest(lcand)

		turnsIn := predicate.OnRight(base1, base2, oprevDest)
		fails := predicate.InCircle(base2, base1, dest, oprevDest)

		if !(turnsIn && fails) {
			return lcand
		}

		next := s.Oprev(lcand)
		s.KillEdge(lcand)
		lcand = next
	}
}

// candidateDecider reports whether the left candidate, not the right one,
// should be used to advance the base edge: true when the left candidate is
// valid and the left candidate's destination lies inside the circle
// through the right candidate's triangle.
func candidateDecider(s *quadedge.Subdivision, rcand, lcand quadedge.HalfEdgeIndex, lcandValid bool) bool {
	if !lcandValid {
		return false
	}

	return predicate.InCircle(s.Dest(rcand), s.Org(rcand), s.Org(lcand), s.Dest(lcand))
}

// Zip fills in the triangulated region between two hulls already joined by
// a single base edge, advancing the base edge one triangle at a time until
// neither hull offers a valid next candidate.
//
// Complexity: O(n) amortized over the whole merge, where n is the combined
// point count of the two hulls — each edge is visited and possibly killed
// at most a constant number of times.
func Zip(s *quadedge.Subdivision, base quadedge.HalfEdgeIndex) {
	for {
		base1 := s.Org(base)
		base2 := s.Dest(base)

		rcand := s.Onext(s.Sym(base))
		rcandValid := predicate.OnRight(base1, base2, s.Dest(rcand))

		lcand := s.Oprev(base)
		lcandValid := predicate.OnRight(base1, base2, s.Dest(lcand))

		if !rcandValid && !lcandValid {
			return
		}

		if rcandValid {
			rcand = rightCandidate(s, rcand, base1, base2)
		}
		if lcandValid {
			lcand = leftCandidate(s, lcand, base1, base2)
		}

		if !rcandValid || candidateDecider(s, rcand, lcand, lcandValid) {
			base = s.Connect(lcand, s.Sym(base))
		} else {
			base = s.Connect(s.Sym(base), s.Sym(rcand))
		}
	}
}
