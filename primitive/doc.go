// Package primitive builds the base-case subdivisions the merge engine
// starts from: a single edge for a group of two points, a single triangle
// for a group of three, and the splitter that divides a sorted point list
// into such groups.
//
// What & Why
//
//   - The divide-and-conquer recursion bottoms out at groups of two or
//     three points, because those are the smallest point sets with a
//     well-defined Delaunay triangulation (one edge, or one triangle/
//     polyline). Groups of size zero, one, or four-or-more are a splitter
//     bug — the algorithm has no geometric definition for them.
//
//   - Split emits groups of three until fewer than three points remain; a
//     remainder of two becomes its own pair; a remainder of one backs up
//     one already-emitted group of three and re-emits the last four points
//     as two pairs instead. A naive pairing pass that just chunks by two
//     would drop a trailing point on odd-length input; Split never does.
package primitive
