// Package wall defines the capability a bounding-wall primitive must expose
// to the container and voronoicell packages, and a Registry that assigns
// wall identifiers (spec §4.5).
//
// What:
//
//   - Wall: PointInside rejects an initial query as outside the domain;
//     CutCell applies zero or more clipping planes representing the wall to
//     a cell, returning false if the cell is annihilated.
//   - Registry: an ordered, concurrency-safe collection of walls, assigning
//     each a negative identifier at registration order (-1, -2, ...),
//     distinct from particle identifiers in neighbor output.
//
// Why:
//
//   - Concrete wall shapes (plane, sphere, cylinder, cone) are explicitly out
//     of core scope (spec §1); this package specifies only the abstraction a
//     concrete shape must implement, the way builder/variants_platonic.go
//     dispatches by closure rather than by a shape-specific struct method
//     table.
//
// Non-goals:
//
//   - No shape implementations. A host package can satisfy Wall directly.
package wall
