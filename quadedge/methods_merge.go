// File methods_merge.go implements arena-level combination (Merge) and
// deactivated-edge compaction (Compact). Merge is the mechanical half of
// the divide-and-conquer step; the geometric half (finding the tangent and
// zipping the hulls) lives in package delaunay, which calls Merge before it
// starts zipping.
package quadedge

// Merge appends other's points and edges into s, renumbering other's edge
// indices by s's current edge count and other's point indices by s's
// current point count, then concatenates. other must be geometrically
// disjoint from s (every point in other strictly to the right of every
// point in s, in x) — Merge does not itself check this; package delaunay
// enforces it via the lexicographic sort order of its inputs before
// calling Merge.
//
// Merge copies other's edge records (with shifted indices) and points into
// s; other's own edge records are left as they were and no longer describe
// anything in s. Package delaunay does not use other again after Merge.
//
// Returns the HalfEdgeIndex and PointIndex shifts applied to other's
// indices, so the caller can translate any other-relative index (such as
// other's former Inner/Outer) into s's index space.
//
// Complexity: O(|other.Edges| + |other.Points|).
func (s *Subdivision) Merge(other *Subdivision) (edgeShift HalfEdgeIndex, pointShift PointIndex) {
	edgeShift = HalfEdgeIndex(len(s.Edges))
	pointShift = PointIndex(len(s.Points))

	for i := range other.Edges {
		e := other.Edges[i]
		e.Index += edgeShift
		e.Org += pointShift
		e.Dest += pointShift
		e.Sym += edgeShift
		e.Onext += edgeShift
		e.Oprev += edgeShift
		s.Edges = append(s.Edges, e)
	}
	s.Points = append(s.Points, other.Points...)

	return edgeShift, pointShift
}

// Compact removes deactivated half-edges from the arena and renumbers every
// surviving Sym/Onext/Oprev reference (and Inner/Outer) to match the
// post-compaction indices.
//
// Dropping deactivated entries without renumbering would silently corrupt
// any later enumeration that assumes dense, contiguous indices, since
// surviving Sym/Onext/Oprev fields would point at stale slots. Compact
// remaps indices during the sweep, so callers can safely call it after
// triangulation to reclaim memory without invalidating the arena.
//
// Compact does not renumber points; points are never deactivated.
//
// Complexity: O(|Edges|).
func (s *Subdivision) Compact() {
	remap := make([]HalfEdgeIndex, len(s.Edges))
	live := make([]HalfEdge, 0, len(s.Edges))

	for _, e := range s.Edges {
		if e.Deactivated {
			continue
		}
		remap[e.Index] = HalfEdgeIndex(len(live))
		live = append(live, e)
	}

	for i := range live {
		live[i].Index = HalfEdgeIndex(i)
		live[i].Sym = remap[live[i].Sym]
		live[i].Onext = remap[live[i].Onext]
		live[i].Oprev = remap[live[i].Oprev]
	}

	s.Edges = live
	if s.Inner >= 0 {
		s.Inner = remap[s.Inner]
	}
	if s.Outer >= 0 {
		s.Outer = remap[s.Outer]
	}
}
