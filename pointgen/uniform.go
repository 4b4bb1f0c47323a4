package pointgen

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vhill-go/triangula/predicate"
)

// Uniform returns n points drawn independently and uniformly at random
// from world, using a deterministic RNG seeded from seed: the same seed
// and n always produce the same points.
//
// Complexity: O(n).
func Uniform(n int, world r2.Box, seed int64) ([]predicate.Point, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}
	if !validWorld(world) {
		return nil, ErrEmptyWorld
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	width := world.Max.X - world.Min.X
	height := world.Max.Y - world.Min.Y

	pts := make([]predicate.Point, n)
	for i := range pts {
		pts[i] = predicate.Point{
			X: world.Min.X + rng.Float64()*width,
			Y: world.Min.Y + rng.Float64()*height,
		}
	}

	return pts, nil
}

func validWorld(world r2.Box) bool {
	return world.Min.X < world.Max.X && world.Min.Y < world.Max.Y
}
