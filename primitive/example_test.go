package primitive_test

import (
	"fmt"

	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/primitive"
)

// ExampleTrianglePrimitive builds the smallest non-degenerate triangulation
// and reports its single bounded face.
func ExampleTrianglePrimitive() {
	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	s := primitive.TrianglePrimitive(pts)

	fmt.Println(len(s.Triangles()))
	// Output: 1
}
