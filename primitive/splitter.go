package primitive

import "github.com/vhill-go/triangula/predicate"

// Split divides a lexicographically sorted point list into groups of size
// two or three, covering the input in order without gaps or overlaps.
//
// Strategy: emit groups of three until fewer than three points remain.
//
//   - remainder 0: nothing left to do.
//   - remainder 2: emit the final two points as one pair.
//   - remainder 1: back up one already-emitted group of three and re-emit
//     the last four points (the backed-up triple plus the leftover single)
//     as two pairs. This avoids ever emitting a lone trailing point, which
//     has no Delaunay triangulation of its own.
//
// Split requires len(pts) >= 2; pts of length 0 or 1 cannot be grouped and
// is the caller's responsibility to special-case (the top-level entry point
// handles 0/1 point inputs directly, without calling Split).
//
// Complexity: O(n).
func Split(pts []predicate.Point) ([][]predicate.Point, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	switch n % 3 {
	case 0:
		return groupsOf3(pts, n), nil
	case 2:
		groups := groupsOf3(pts, n-2)
		groups = append(groups, pts[n-2:n])

		return groups, nil
	default: // n % 3 == 1
		if n < 4 {
			// n == 1: Split's precondition (len(pts) >= 2) was violated by
			// the caller; there is no way to form a group of 2 or 3 here.
			return nil, ErrInvalidGroupSize
		}
		groups := groupsOf3(pts, n-4)
		groups = append(groups, pts[n-4:n-2], pts[n-2:n])

		return groups, nil
	}
}

func groupsOf3(pts []predicate.Point, upTo int) [][]predicate.Point {
	groups := make([][]predicate.Point, 0, (upTo+2)/3)
	for i := 0; i < upTo; i += 3 {
		groups = append(groups, pts[i:i+3])
	}

	return groups
}
