package predicate

// InCircle reports whether q lies strictly inside the circle passing through
// p1, p2, p3, which must be ordered so that OnLeft(p1, p2, p3) holds
// (negative Orientation); for the opposite order the result is inverted
// for points off the circle. It translates
// the three circle-defining points by q before forming the 4x4 lifted-
// paraboloid determinant, which keeps the arithmetic well scaled relative to
// naive untranslated coordinates:
//
//	ci = pi.X - q.X, ui = pi.Y - q.Y, vi = ci^2 + ui^2
//	det = c1*(u2*v3 - v2*u3) - c2*(u1*v3 - v1*u3) + c3*(u1*v2 - v1*u2)
//	InCircle := det < 0
//
// An exact zero determinant (q exactly on the circle) is not "in circle".
//
// Complexity: O(1), no allocations.
func InCircle(p1, p2, p3, q Point) bool {
	c1, u1 := p1.X-q.X, p1.Y-q.Y
	c2, u2 := p2.X-q.X, p2.Y-q.Y
	c3, u3 := p3.X-q.X, p3.Y-q.Y

	v1 := c1*c1 + u1*u1
	v2 := c2*c2 + u2*u2
	v3 := c3*c3 + u3*u3

	det := c1*(u2*v3-v2*u3) - c2*(u1*v3-v1*u3) + c3*(u1*v2-v1*u2)

	return det < 0
}
