package quadedge_test

import (
	"fmt"

	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// ExampleSubdivision_line builds the line primitive for two points and
// shows that the two half-edges are each other's Sym.
func ExampleSubdivision_line() {
	s := quadedge.New([]predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	e, eSym := s.SetupEdge(0, 1)
	s.SetExtremeEdges(e, eSym)

	fmt.Println(s.Edge(e).Sym == eSym, s.Edge(eSym).Sym == e)
	// Output: true true
}
