package distributed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vhill-go/triangula/predicate"
)

func TestPartitionSlabsNeverSplitsEqualXRun(t *testing.T) {
	t.Parallel()

	pts := []predicate.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3},
		{X: 1, Y: 0}, {X: 2, Y: 0},
	}

	slabs := partitionSlabs(pts, 3)

	total := 0
	for _, slab := range slabs {
		total += len(slab)
		for i := 1; i < len(slab); i++ {
			assert.GreaterOrEqual(t, slab[i].X, slab[i-1].X)
		}
	}
	assert.Equal(t, len(pts), total)

	for i := 1; i < len(slabs); i++ {
		prevSlab := slabs[i-1]
		assert.NotEqual(t, prevSlab[len(prevSlab)-1].X, slabs[i][0].X)
	}
}

func TestPartitionSlabsSingleSlab(t *testing.T) {
	t.Parallel()

	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	slabs := partitionSlabs(pts, 1)
	assert.Len(t, slabs, 1)
	assert.Len(t, slabs[0], 2)
}

func TestPartitionSlabsMoreSlabsThanPoints(t *testing.T) {
	t.Parallel()

	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	slabs := partitionSlabs(pts, 10)
	assert.Len(t, slabs, 2)
}
