// Package pointgen produces input point sets for package delaunay and
// package distributed. The core triangulation engine has no opinion on
// where points come from; this package exists only so cmd/triangula and
// tests have something concrete to feed it.
//
// What & Why
//
//   - Both generators take an explicit world rectangle rather than
//     inferring bounds, so output is reproducible across calls and
//     trivially composable with the CLI's --out flag.
//   - Uniform uses a seeded math/rand/v2 source rather than math/rand's
//     global source, so the same seed always yields the same points
//     regardless of what else has drawn from the global source.
//   - Neither generator deduplicates coincident points; that is the
//     caller's responsibility if it matters. Lattice is coincidence-free
//     by construction, but Uniform is not, however vanishingly unlikely
//     a float64 collision is in practice.
package pointgen
