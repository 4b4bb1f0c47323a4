package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/primitive"
)

func TestLinePrimitive(t *testing.T) {
	t.Parallel()

	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	s := primitive.LinePrimitive(pts)

	assert.Equal(t, 2, s.NumEdges())
	assert.Equal(t, s.Edge(s.Inner).Sym, s.Outer)
}

func TestTrianglePrimitiveCCW(t *testing.T) {
	t.Parallel()

	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	require.True(t, predicate.OnRight(pts[0], pts[1], pts[2]))

	s := primitive.TrianglePrimitive(pts)
	assert.Len(t, s.Triangles(), 1)
}

func TestTrianglePrimitiveCW(t *testing.T) {
	t.Parallel()

	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: -1}}
	require.True(t, predicate.OnLeft(pts[0], pts[1], pts[2]))

	s := primitive.TrianglePrimitive(pts)
	assert.Len(t, s.Triangles(), 1)
}

func TestTrianglePrimitiveCollinear(t *testing.T) {
	t.Parallel()

	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	require.True(t, predicate.Collinear(pts[0], pts[1], pts[2]))

	s := primitive.TrianglePrimitive(pts)
	assert.Empty(t, s.Triangles())
	assert.Equal(t, 4, s.NumEdges())
}

func TestBuildDispatch(t *testing.T) {
	t.Parallel()

	_, err := primitive.Build([]predicate.Point{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, primitive.ErrInvalidGroupSize)

	s, err := primitive.Build([]predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumEdges())

	s, err = primitive.Build([]predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, 6, s.NumEdges())
}

func TestSplit(t *testing.T) {
	t.Parallel()

	pts := make([]predicate.Point, 9)
	groups, err := primitive.Split(pts)
	require.NoError(t, err)
	assert.Len(t, groups, 3)
	for _, g := range groups {
		assert.Len(t, g, 3)
	}
}

func TestSplitRemainderTwo(t *testing.T) {
	t.Parallel()

	pts := make([]predicate.Point, 8)
	groups, err := primitive.Split(pts)
	require.NoError(t, err)

	total := 0
	for _, g := range groups {
		assert.Contains(t, []int{2, 3}, len(g))
		total += len(g)
	}
	assert.Equal(t, 8, total)
	assert.Len(t, groups[len(groups)-1], 2)
}

func TestSplitRemainderOne(t *testing.T) {
	t.Parallel()

	pts := make([]predicate.Point, 7)
	groups, err := primitive.Split(pts)
	require.NoError(t, err)

	total := 0
	for _, g := range groups {
		assert.Contains(t, []int{2, 3}, len(g))
		total += len(g)
	}
	assert.Equal(t, 7, total)
	assert.Len(t, groups[len(groups)-1], 2)
	assert.Len(t, groups[len(groups)-2], 2)
}

func TestSplitMinimalFour(t *testing.T) {
	t.Parallel()

	pts := make([]predicate.Point, 4)
	groups, err := primitive.Split(pts)
	require.NoError(t, err)
	assert.Equal(t, [][]predicate.Point{pts[0:2], pts[2:4]}, groups)
}

func TestSplitEmpty(t *testing.T) {
	t.Parallel()

	_, err := primitive.Split(nil)
	assert.ErrorIs(t, err, primitive.ErrEmptyInput)
}

func TestSplitSingleton(t *testing.T) {
	t.Parallel()

	_, err := primitive.Split(make([]predicate.Point, 1))
	assert.ErrorIs(t, err, primitive.ErrInvalidGroupSize)
}
