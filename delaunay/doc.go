// Package delaunay implements the Guibas-Stolfi divide-and-conquer merge
// engine: given two side-by-side Delaunay subdivisions, it finds the base
// edge joining their hulls and fills in the triangulated strip between
// them, and drives the recursive reduction that builds a full
// triangulation from two/three-point base cases.
//
// What & Why
//
//   - The merge step has three phases, each its own file: LowestCommonTangent
//     (tangent.go) finds the starting base edge, Combine (combine.go) merges
//     the two arenas and connects that edge, and Zip (zip.go) advances the
//     base edge across the gap one triangle at a time, deleting edges that
//     would violate the empty-circumcircle property as it goes.
//
//   - Merging is strictly sequential and mutates its left argument in
//     place rather than returning a new value, mirroring package quadedge's
//     no-internal-synchronization model: a merge pass owns both input
//     subdivisions exclusively, and the right one is consumed: its edges
//     and points are copied into the left one's arena and it is not used
//     again.
//
//   - Triangulate's recursive reduction pairs adjacent subdivisions and
//     merges each pair, which preserves the left-to-right ordering every
//     merge depends on without needing to re-sort between passes.
package delaunay
