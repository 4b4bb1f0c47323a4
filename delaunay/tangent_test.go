package delaunay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vhill-go/triangula/delaunay"
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/primitive"
)

func TestLowestCommonTangentOnTwoLines(t *testing.T) {
	t.Parallel()

	left := primitive.LinePrimitive([]predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	right := primitive.LinePrimitive([]predicate.Point{{X: 2, Y: 0}, {X: 3, Y: 1}})

	leftE, rightE := delaunay.LowestCommonTangent(left, right)

	assert.Equal(t, predicate.Point{X: 0, Y: 0}, left.Org(leftE))
	assert.Equal(t, predicate.Point{X: 2, Y: 0}, right.Org(rightE))
}
