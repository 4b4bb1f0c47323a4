package pointgen

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vhill-go/triangula/predicate"
)

// Lattice returns rows*cols points evenly spaced across world, row-major:
// rows along Y, cols along X. Lattice points are coincidence-free by
// construction, but a rectangular grid is exactly cocircular along its
// diagonals — callers relying on a unique Delaunay triangulation should
// perturb the result or expect the tie-break behavior documented on
// predicate.InCircle.
//
// Complexity: O(rows*cols).
func Lattice(rows, cols int, world r2.Box) ([]predicate.Point, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidCount
	}
	if !validWorld(world) {
		return nil, ErrEmptyWorld
	}

	width := world.Max.X - world.Min.X
	height := world.Max.Y - world.Min.Y

	var dx, dy float64
	if cols > 1 {
		dx = width / float64(cols-1)
	}
	if rows > 1 {
		dy = height / float64(rows-1)
	}

	pts := make([]predicate.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, predicate.Point{
				X: world.Min.X + float64(c)*dx,
				Y: world.Min.Y + float64(r)*dy,
			})
		}
	}

	return pts, nil
}
