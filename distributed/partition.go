package distributed

import "github.com/vhill-go/triangula/predicate"

// partitionSlabs splits a lexicographically sorted point list into at most
// slabCount contiguous, non-empty slabs of roughly equal size, never
// cutting a boundary through a run of equal-x points. If slabCount >=
// len(pts), each point gets its own slab only insofar as equal-x runs
// allow; a long run of equal-x points can force fewer, larger slabs than
// requested.
func partitionSlabs(pts []predicate.Point, slabCount int) [][]predicate.Point {
	n := len(pts)
	if slabCount < 1 {
		slabCount = 1
	}
	if slabCount > n {
		slabCount = n
	}
	if slabCount <= 1 {
		return [][]predicate.Point{pts}
	}

	target := (n + slabCount - 1) / slabCount

	var slabs [][]predicate.Point
	start := 0
	for start < n {
		end := start + target
		if end >= n {
			end = n
		} else {
			for end < n && pts[end].X == pts[end-1].X {
				end++
			}
		}
		slabs = append(slabs, pts[start:end])
		start = end
	}

	return slabs
}
