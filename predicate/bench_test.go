package predicate_test

import (
	"testing"

	"github.com/vhill-go/triangula/predicate"
)

func BenchmarkOrientation(b *testing.B) {
	p1 := predicate.Point{X: 0, Y: 0}
	p2 := predicate.Point{X: 1, Y: 0}
	p3 := predicate.Point{X: 0.5, Y: 0.3}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = predicate.Orientation(p1, p2, p3)
	}
}

func BenchmarkInCircle(b *testing.B) {
	p1 := predicate.Point{X: 1, Y: 0}
	p2 := predicate.Point{X: 0, Y: 1}
	p3 := predicate.Point{X: -1, Y: 0}
	q := predicate.Point{X: 0.1, Y: 0.1}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = predicate.InCircle(p1, p2, p3, q)
	}
}
