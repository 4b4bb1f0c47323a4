package delaunay_test

import (
	"testing"

	"github.com/vhill-go/triangula/delaunay"
	"github.com/vhill-go/triangula/predicate"
)

func BenchmarkTriangulateLattice(b *testing.B) {
	var pts []predicate.Point
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			pts = append(pts, predicate.Point{X: float64(x), Y: float64(y)})
		}
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = delaunay.Triangulate(pts, delaunay.Options{})
	}
}
