// Package geom provides the vector arithmetic and the numeric tolerance that
// every other voro3d package builds on.
//
// What:
//
//   - Vec is an alias for gonum's r3.Vec, plus a handful of free functions
//     (Add, Sub, Dot, Cross, Scale, Norm2, Lerp) so callers never have to
//     import gonum.org/v1/gonum/spatial/r3 directly.
//   - Epsilon is the single positive constant governing plane-side
//     classification (spec §4.2): a vertex is Up if its signed distance from
//     a clipping plane exceeds Epsilon, Down if it falls below -Epsilon, and
//     On otherwise.
//
// Why:
//
//   - Every clip, every neighbor-search distance bound, and every output
//     statistic is a few lines of 3-vector arithmetic; centralizing it here
//     keeps voronoicell and compute free of ad-hoc (x, y, z float64) triples.
//
// Non-goals:
//
//   - No exact/robust arithmetic predicates (spec.md Non-goals). Epsilon is
//     a fixed, non-adaptive constant; correctness of thin cells depends on
//     the caller choosing a sensible grid length scale.
package geom
