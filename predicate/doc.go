// Package predicate provides the pure geometric decision functions that
// drive every structural choice in the Guibas-Stolfi divide-and-conquer
// Delaunay triangulation: orientation, the in-circle test, and the
// lexicographic point order used to presort input.
//
// What & Why
//
//   - Orientation answers "is p3 left of, right of, or on the directed line
//     p1->p2?" via the sign of a 2x2 determinant. Every topological decision
//     in the quadedge merge (which candidate wins, when to stop the zip)
//     reduces to this sign.
//
//   - InCircle answers "does q lie strictly inside the circle through
//     p1, p2, p3 (ordered so that OnLeft holds)?" via the sign of a 4x4 determinant on
//     the lifted paraboloid. This is the Delaunay legality test: an edge is
//     illegal iff the opposite vertex of the adjacent triangle is InCircle.
//
// Both predicates are naive floating-point determinants, not adaptive-
// precision expansions. Near-collinear or near-cocircular inputs (e.g. the
// corners of a regular lattice) can produce an unstable sign and therefore
// an inconsistent triangulation decision. This is an explicit Non-goal
// inherited from the specification this package implements: production
// systems requiring robustness guarantees should substitute an
// adaptive-precision predicate library without changing this package's
// function signatures.
//
// Ties (exact zero) are never "on right" and never "in circle" — collinear
// and cocircular configurations are valid, if degenerate, inputs.
//
// Points are represented as gonum.org/v1/gonum/spatial/r2.Vec, giving this
// package (and everything built on it) a standard, already-vetted 2D vector
// type instead of a bespoke struct.
package predicate
