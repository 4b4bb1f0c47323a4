package quadedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// buildTriangle constructs the CCW triangle (0,0)-(1,0)-(0,1) directly via
// the quadedge primitives (mirroring what package primitive's
// TrianglePrimitive does) so query methods can be tested in isolation.
func buildTriangle(t *testing.T) *quadedge.Subdivision {
	t.Helper()

	s := quadedge.New([]predicate.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
	})
	e1, e1Sym := s.SetupEdge(0, 1)
	e2, _ := s.SetupEdge(1, 2)
	s.Splice(e1Sym, e2)
	c := s.Connect(e2, e1)
	s.SetExtremeEdges(e1, s.Edge(c).Sym)

	return s
}

func TestUndirectedEdges(t *testing.T) {
	t.Parallel()

	s := buildTriangle(t)
	edges := s.UndirectedEdges()
	assert.Len(t, edges, 3)
}

func TestTrianglesOnTriangle(t *testing.T) {
	t.Parallel()

	s := buildTriangle(t)
	tris := s.Triangles()
	assert.Len(t, tris, 1)

	for _, v := range tris[0] {
		assert.Contains(t, []quadedge.PointIndex{0, 1, 2}, v)
	}
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	s := buildTriangle(t)
	unique := s.UniqueEdge(3)

	for p := 0; p < 3; p++ {
		require := unique[p]
		assert.NotEqual(t, quadedge.HalfEdgeIndex(-1), require)

		neighbors := s.Neighbors(require)
		assert.Len(t, neighbors, 2)
	}
}

func TestUniqueEdgeMissingPoint(t *testing.T) {
	t.Parallel()

	s := quadedge.New([]predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 2}})
	s.SetupEdge(0, 1)

	unique := s.UniqueEdge(3)
	assert.NotEqual(t, quadedge.HalfEdgeIndex(-1), unique[0])
	assert.NotEqual(t, quadedge.HalfEdgeIndex(-1), unique[1])
	assert.Equal(t, quadedge.HalfEdgeIndex(-1), unique[2])
}
