// Package compute implements the neighbor-search driver: for a target
// particle it visits grid blocks in order of non-decreasing conservative
// lower-bound squared distance, feeds each candidate neighbor's perpendicular
// bisector to the cell builder, and proves termination once no unvisited
// block can still contribute (spec §4.4).
//
// What:
//
//   - ShellTable precomputes, once per grid block geometry, every block
//     offset (Δi,Δj,Δk) sorted by its conservative lower-bound squared
//     distance L² to the origin block — grounded on dijkstra's
//     frontier-ordered traversal (dijkstra.go), adapted here from a
//     per-call priority queue to a table built once and reused for every
//     particle, since the bound depends only on block geometry.
//   - Driver.Build drives one particle's cell to completion: initialize the
//     box, optionally pre-clip by walls, then walk the shell table
//     submitting bisector planes until L²(next block) >= the termination
//     radius (4r² for Euclidean, 4(r+r_max)² for the radical variant).
//   - Driver.FindVoronoiCell performs the analogous nearest-particle search
//     for a query point not tied to any particle.
//
// Non-goals: exact-arithmetic guarantees (spec §1); this package inherits
// voronoicell's tolerance-based clipping.
package compute
