package quadedge_test

import (
	"testing"

	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

func BenchmarkSplice(b *testing.B) {
	s := quadedge.New([]predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	a, _ := s.SetupEdge(0, 1)
	c, _ := s.SetupEdge(0, 2)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Splice(a, c)
		s.Splice(a, c)
	}
}

func BenchmarkConnect(b *testing.B) {
	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := quadedge.New(pts)
		e1, e1Sym := s.SetupEdge(0, 1)
		e2, _ := s.SetupEdge(1, 2)
		s.Splice(e1Sym, e2)
		s.Connect(e2, e1)
	}
}
