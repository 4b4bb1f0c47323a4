package quadedge

import "github.com/vhill-go/triangula/predicate"

// Option configures a Subdivision at construction time.
type Option func(*Subdivision)

// WithEdgeCapacity preallocates the edge arena to hold at least n
// half-edge records, avoiding reallocation during the first few PushBack
// calls when the caller knows roughly how many edges it will build.
func WithEdgeCapacity(n int) Option {
	return func(s *Subdivision) {
		if n > cap(s.Edges) {
			edges := make([]HalfEdge, len(s.Edges), n)
			copy(edges, s.Edges)
			s.Edges = edges
		}
	}
}

// NewSubdivision returns an empty Subdivision over the given points,
// applying any options. The points slice is taken by reference, as in New.
func NewSubdivision(points []predicate.Point, opts ...Option) *Subdivision {
	s := New(points)
	for _, opt := range opts {
		opt(s)
	}

	return s
}
