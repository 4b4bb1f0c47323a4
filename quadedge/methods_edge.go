// File methods_edge.go implements the Guibas-Stolfi algebraic primitives:
// PushBack, SetupEdge, Splice, Connect, KillEdge, SetExtremeEdges.
//
// Policy: this file owns all ring-topology mutation. Outside it, Onext/Oprev
// fields are only renumbered (by Merge and Compact), never re-linked.
package quadedge

// PushBack appends a half-edge to the arena. e.Index must equal the arena's
// current length, so every record's Index is its own arena position without
// the arena needing to track a separate counter. SetupEdge appends its pair
// directly under the same rule.
//
// Complexity: O(1) amortized.
func (s *Subdivision) PushBack(e HalfEdge) error {
	if int(e.Index) != len(s.Edges) {
		return ErrPushBackIndexMismatch
	}
	s.Edges = append(s.Edges, e)

	return nil
}

// SetupEdge allocates a new undirected edge as a consecutive pair of
// half-edge records (k, k+1) and appends both to the arena. The new edge is
// a self-loop in both rings — Onext and Oprev each point back at the record
// itself — since it has not yet been stitched into the subdivision via
// Splice.
//
// Complexity: O(1) amortized.
func (s *Subdivision) SetupEdge(org, dest PointIndex) (e, eSym HalfEdgeIndex) {
	k := HalfEdgeIndex(len(s.Edges))
	kSym := k + 1

	edge := HalfEdge{Index: k, Org: org, Dest: dest, Sym: kSym, Onext: k, Oprev: k}
	edgeSym := HalfEdge{Index: kSym, Org: dest, Dest: org, Sym: k, Onext: kSym, Oprev: kSym}

	s.Edges = append(s.Edges, edge, edgeSym)

	return k, kSym
}

// Splice is the Guibas-Stolfi primitive that simultaneously joins or
// separates the Onext orbits at Org(a) and Org(b). It swaps the Onext
// fields of a and b, then repairs the Oprev fields of the two records those
// pointers now name.
//
//   - If Org(a) and Org(b) were in distinct orbits, Splice merges them into
//     one.
//   - If they were in the same orbit, Splice splits it into two.
//
// Splice is its own inverse: calling it twice on the same (a, b) restores
// the original rings. It is the only operation in this package that alters
// ring topology.
//
// Complexity: O(1).
func (s *Subdivision) Splice(a, b HalfEdgeIndex) {
	aOnext := s.Edges[a].Onext
	bOnext := s.Edges[b].Onext

	s.Edges[a].Onext = bOnext
	s.Edges[b].Onext = aOnext

	s.Edges[bOnext].Oprev = a
	s.Edges[aOnext].Oprev = b
}

// Connect creates a new edge from Dest(a) to Org(b) and stitches it into
// the subdivision such that it lies in the face to the left of both a and
// b. Returns the index of the half-edge running Dest(a)->Org(b); its Sym
// runs the opposite direction.
//
// Complexity: O(1).
func (s *Subdivision) Connect(a, b HalfEdgeIndex) HalfEdgeIndex {
	e, eSym := s.SetupEdge(s.Edges[a].Dest, s.Edges[b].Org)

	s.Splice(e, s.Edges[s.Edges[a].Sym].Oprev)
	s.Splice(eSym, b)

	return e
}

// KillEdge removes edge e and its Sym from their rings and marks both
// deactivated. The arena slots are retained (sparse deletion); Compact
// reclaims them later. Subsequent traversals must never retain a stale
// index to a killed edge — the live Onext/Oprev graph simply no longer
// reaches it.
//
// Calling KillEdge on an edge whose ring has already collapsed to a
// self-loop (Onext(e) == e) is a safe no-op on the ring structure: Splice
// against a self-loop leaves the ring unchanged, since swapping a pointer
// with itself and repairing Oprev for the same record is idempotent.
//
// Complexity: O(1).
func (s *Subdivision) KillEdge(e HalfEdgeIndex) {
	s.Splice(e, s.Edges[e].Oprev)
	sym := s.Edges[e].Sym
	s.Splice(sym, s.Edges[sym].Oprev)

	s.Edges[e].Deactivated = true
	s.Edges[sym].Deactivated = true
}

// SetExtremeEdges records the two convex-hull boundary half-edges: inner
// incident to the leftmost point, outer incident to the rightmost.
func (s *Subdivision) SetExtremeEdges(inner, outer HalfEdgeIndex) {
	s.Inner = inner
	s.Outer = outer
}
