// Package output extracts statistics from a completed voronoicell.Cell and
// renders them through the printf-like %-code template mini-language (spec
// §4.6, §6), plus a supplementary bulk CSV exporter.
//
// What:
//
//   - Faces walks a cell's edge graph into one Face per polygon, using the
//     orientation convention of voronoicell §3 ("arrive at j from i, depart
//     along the edge immediately preceding the back-edge").
//   - Volume, Centroid, SurfaceArea, FaceEdgeHistogram and friends derive
//     from that walk in a single pass each; EdgeCount and
//     VertexOrderHistogram read vertex orders directly.
//   - Writer parses a %-code template once and renders it for any number of
//     particles, writing to an explicit io.Writer — the redesign spec.md §9
//     asks for ("an explicit writer interface ... eliminating the
//     process-wide state" the original source accumulated into a global
//     table).
//   - CSVWriter is a supplemented bulk exporter (one row per cell: id,
//     volume, surface area, face count, centroid), grounded on
//     pthm-soup/telemetry/output.go's gocsv usage; not part of spec.md's
//     %-code language, not excluded by any Non-goal.
//
// Non-goals:
//
//   - No Gnuplot or POV-Ray rendering (explicit external collaborators,
//     spec §1).
package output
