package delaunay_test

import (
	"fmt"

	"github.com/vhill-go/triangula/delaunay"
	"github.com/vhill-go/triangula/predicate"
)

// ExampleTriangulate builds the Delaunay triangulation of a unit square,
// which splits into exactly two triangles along one of its diagonals.
func ExampleTriangulate() {
	pts := []predicate.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}

	s, err := delaunay.Triangulate(pts, delaunay.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println(len(s.Triangles()))
	// Output: 2
}
