// File methods_query.go implements the subdivision's read-side API for
// consumers: enumerating edges and triangles, walking a point's neighbors,
// and finding one representative half-edge per point.
package quadedge

import "github.com/vhill-go/triangula/predicate"

// UndirectedEdges enumerates each undirected edge exactly once: every
// non-deactivated half-edge e with e.Index < Sym(e).
//
// Complexity: O(|Edges|).
func (s *Subdivision) UndirectedEdges() []HalfEdgeIndex {
	out := make([]HalfEdgeIndex, 0, len(s.Edges)/2)
	for i := range s.Edges {
		e := s.Edges[i]
		if e.Deactivated {
			continue
		}
		if e.Index < e.Sym {
			out = append(out, e.Index)
		}
	}

	return out
}

// Triangle is an unordered set of three point indices forming a bounded
// face of the subdivision.
type Triangle [3]PointIndex

// Triangles enumerates the bounded triangular faces of the subdivision.
// For each non-deactivated half-edge e with Org(e) < Dest(e) (by index),
// it walks e -> Onext(Sym(e)) twice; if the walk returns to e after exactly
// three steps and all three origins are distinct, it emits the triangle.
// Each face is emitted once, from the half-edge whose Org has the smallest
// index of the three, and only when the walk has positive Orientation:
// bounded faces are walked that way round, while the outer face of a
// triangular hull is walked the other way and is skipped.
//
// Degenerate subdivisions (collinear input, a bare polyline) have no
// triangles and this returns an empty slice.
//
// Complexity: O(|Edges|).
func (s *Subdivision) Triangles() []Triangle {
	var out []Triangle

	for i := range s.Edges {
		e := s.Edges[i]
		if e.Deactivated || e.Org >= e.Dest {
			continue
		}

		a := e.Index
		b := s.Edges[s.Edges[a].Sym].Onext
		c := s.Edges[s.Edges[b].Sym].Onext
		back := s.Edges[s.Edges[c].Sym].Onext

		if back != a {
			continue
		}

		orgA, orgB, orgC := s.Edges[a].Org, s.Edges[b].Org, s.Edges[c].Org
		if orgA == orgB || orgB == orgC || orgA == orgC {
			continue
		}
		if orgA > orgC || predicate.Orientation(s.Points[orgA], s.Points[orgB], s.Points[orgC]) <= 0 {
			continue
		}

		out = append(out, Triangle{orgA, orgB, orgC})
	}

	return out
}

// Neighbors returns the point indices reachable in one hop from Org(e) by
// walking its Onext ring, i.e. the destinations of every live half-edge
// originating at Org(e).
//
// Complexity: O(degree(Org(e))).
func (s *Subdivision) Neighbors(e HalfEdgeIndex) []PointIndex {
	start := e
	out := []PointIndex{s.Edges[start].Dest}

	cur := s.Edges[start].Onext
	for cur != start {
		out = append(out, s.Edges[cur].Dest)
		cur = s.Edges[cur].Onext
	}

	return out
}

// UniqueEdge returns, for each point index in [0, n), one representative
// half-edge whose Org equals that point index: the first such half-edge
// encountered in arena order. A point with no incident edges (should not
// occur in a fully built subdivision with n > 1) maps to -1.
//
// Complexity: O(|Edges| + n).
func (s *Subdivision) UniqueEdge(n int) []HalfEdgeIndex {
	unique := make([]HalfEdgeIndex, n)
	for i := range unique {
		unique[i] = -1
	}

	for i := range s.Edges {
		e := s.Edges[i]
		if e.Deactivated {
			continue
		}
		if int(e.Org) < n && unique[e.Org] == -1 {
			unique[e.Org] = e.Index
		}
	}

	return unique
}
