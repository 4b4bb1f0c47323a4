package quadedge

import (
	"errors"

	"github.com/vhill-go/triangula/predicate"
)

// Sentinel errors for quadedge operations.
var (
	// ErrNoPoints indicates an operation required at least one point but
	// the subdivision is empty.
	ErrNoPoints = errors.New("quadedge: subdivision has no points")

	// ErrEdgeIndexOutOfRange indicates a HalfEdgeIndex referenced an arena
	// slot that does not exist. This is always a programmer error — the
	// arena only grows, indices are never reused across subdivisions.
	ErrEdgeIndexOutOfRange = errors.New("quadedge: half-edge index out of range")

	// ErrPointIndexOutOfRange indicates a PointIndex referenced a point
	// vector slot that does not exist.
	ErrPointIndexOutOfRange = errors.New("quadedge: point index out of range")

	// ErrPushBackIndexMismatch indicates PushBack was called with an edge
	// whose Index did not equal the arena's current length. PushBack
	// requires the caller to pre-assign indices via the arena length so
	// that every record's Index stays equal to its arena position.
	ErrPushBackIndexMismatch = errors.New("quadedge: push_back index does not match arena length")

	// ErrNotDisjoint describes two subdivisions whose x-ranges overlap,
	// violating the precondition that the left subdivision lies strictly
	// left of the right one. Merge does not check this precondition and
	// never returns this error.
	ErrNotDisjoint = errors.New("quadedge: subdivisions are not disjoint in x")
)

// PointIndex addresses a point in a Subdivision's point vector.
type PointIndex int

// HalfEdgeIndex addresses a half-edge record in a Subdivision's edge arena.
type HalfEdgeIndex int

// HalfEdge is one of the two directed orientations of an undirected edge.
//
// Fields:
//
//	Index       - stable self-index in the edge arena.
//	Org, Dest   - endpoint point indices.
//	Sym         - index of the opposite half-edge (same undirected edge,
//	              reversed direction).
//	Onext       - index of the next half-edge counterclockwise around Org.
//	Oprev       - index of the previous half-edge counterclockwise around
//	              Org (equivalently, the next clockwise one).
//	Deactivated - true once KillEdge has removed this half-edge from the
//	              subdivision; the arena slot is retained (sparse deletion)
//	              until Compact is called.
type HalfEdge struct {
	Index       HalfEdgeIndex
	Org         PointIndex
	Dest        PointIndex
	Sym         HalfEdgeIndex
	Onext       HalfEdgeIndex
	Oprev       HalfEdgeIndex
	Deactivated bool
}

// Subdivision is a planar graph plus its embedding: a point vector and a
// half-edge arena, together with two distinguished boundary half-edges.
//
//	Points - the owned point vector; points are immutable once assigned an
//	         index, and are addressed exclusively through PointIndex.
//	Edges  - the half-edge arena; addressed exclusively through
//	         HalfEdgeIndex. Grows monotonically; never shrinks except via
//	         Compact.
//	Inner  - a half-edge incident to the lexicographically smallest point,
//	         oriented outward on the convex hull's lower chain.
//	Outer  - a half-edge incident to the lexicographically largest point,
//	         oriented outward on the convex hull's upper chain.
//
// A Subdivision is not safe for concurrent use — see the package doc for
// the concurrency model this follows.
type Subdivision struct {
	Points []predicate.Point
	Edges  []HalfEdge
	Inner  HalfEdgeIndex
	Outer  HalfEdgeIndex
}

// New returns an empty Subdivision over the given points. The points slice
// is taken by reference (not copied); callers must not mutate it afterward
// since points are immutable once sorted.
//
// Complexity: O(1).
func New(points []predicate.Point) *Subdivision {
	return &Subdivision{
		Points: points,
		Inner:  -1,
		Outer:  -1,
	}
}

// NumEdges returns the number of half-edge arena slots, including any
// deactivated ones. It is not the number of undirected edges (divide by
// two) and not the number of live edges (see UndirectedEdges).
func (s *Subdivision) NumEdges() int {
	return len(s.Edges)
}

// NumPoints returns the number of points owned by this subdivision.
func (s *Subdivision) NumPoints() int {
	return len(s.Points)
}

// Edge returns the half-edge at index i.
func (s *Subdivision) Edge(i HalfEdgeIndex) HalfEdge {
	return s.Edges[i]
}

// Point returns the point at index i.
func (s *Subdivision) Point(i PointIndex) predicate.Point {
	return s.Points[i]
}

// Org returns the origin point of half-edge e.
func (s *Subdivision) Org(e HalfEdgeIndex) predicate.Point {
	return s.Points[s.Edges[e].Org]
}

// Dest returns the destination point of half-edge e.
func (s *Subdivision) Dest(e HalfEdgeIndex) predicate.Point {
	return s.Points[s.Edges[e].Dest]
}

// Sym returns the index of the symmetric (opposite-direction) half-edge.
func (s *Subdivision) Sym(e HalfEdgeIndex) HalfEdgeIndex {
	return s.Edges[e].Sym
}

// Onext returns the index of the next half-edge counterclockwise around
// Org(e).
func (s *Subdivision) Onext(e HalfEdgeIndex) HalfEdgeIndex {
	return s.Edges[e].Onext
}

// Oprev returns the index of the previous half-edge counterclockwise
// around Org(e) (i.e. the next clockwise one).
func (s *Subdivision) Oprev(e HalfEdgeIndex) HalfEdgeIndex {
	return s.Edges[e].Oprev
}
