// Package quadedge implements the topological substrate of a planar
// subdivision: an arena of half-edge records plus the algebraic operators
// (Splice, Connect, KillEdge) that the Guibas-Stolfi algorithm uses to build
// and mutate it.
//
// What & Why
//
//   - A Subdivision owns a flat arena of HalfEdge records and a point
//     vector; edges reference each other and their endpoints exclusively by
//     integer index, never by pointer. An index-addressed arena removes
//     aliasing concerns and makes the whole structure trivially
//     serializable, unlike an object-graph-of-pointers representation.
//
//   - Each undirected edge is realized as exactly two HalfEdge records,
//     always allocated as a consecutive pair (k, k+1) whose Sym fields point
//     at each other. The classical Guibas-Stolfi quad-edge has four records
//     per edge (two dual pairs) to also represent the Voronoi dual; since
//     this package never builds the dual, two records per edge suffice.
//
//   - Splice is the single primitive that can alter ring topology; every
//     other mutator (Connect, KillEdge) is defined in terms of it. Splice is
//     its own inverse: applying it twice to the same pair restores the
//     original rings.
//
// Invariants maintained after every completed public operation:
//
//  1. For every non-deactivated half-edge e: Sym(Sym(e)) == e, Sym(e) != e,
//     and Org(e) == Dest(Sym(e)).
//  2. The Onext ring around any point is a cyclic permutation covering
//     exactly the non-deactivated half-edges whose Org equals that point,
//     in counterclockwise angular order.
//  3. Oprev(e) == Sym(Onext(Sym(e))).
//  4. Inner has Org equal to the lexicographically smallest point in the
//     subdivision; Outer has Org equal to the largest.
//  5. After a full triangulation, every bounded face is a triangle, every
//     triangle's circumcircle contains no other point (Delaunay property),
//     and the outer boundary is the convex hull.
//
// Concurrency model: a Subdivision carries no internal synchronization. It
// holds no locks and shares no state; callers must hold exclusive mutable
// access to a Subdivision for the duration of an operation. A single
// Subdivision is always owned by exactly one goroutine at a time (even
// under the distributed driver in package distributed, each goroutine
// builds and merges its own disjoint Subdivision), so adding mutexes here
// would only cost throughput without buying safety.
package quadedge
