package predicate

import "gonum.org/v1/gonum/spatial/r2"

// Point is an ordered pair (x, y) of finite real numbers. Points are
// immutable once sorted; the quadedge package addresses points exclusively
// by index into an owned point vector, never by value identity.
type Point = r2.Vec
