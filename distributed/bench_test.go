package distributed_test

import (
	"context"
	"testing"

	"github.com/vhill-go/triangula/distributed"
)

func BenchmarkTriangulateFourSlabs(b *testing.B) {
	pts := gridPoints(20)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = distributed.Triangulate(context.Background(), pts, distributed.Options{SlabCount: 4})
	}
}
