// Package voro3d is the computational core of a three-dimensional Voronoi
// tessellation engine.
//
// 🧊 What is voro3d?
//
//	Given a bounded rectangular domain (optionally periodic per axis), a set
//	of particles, and an optional set of bounding walls, voro3d computes, for
//	each particle, the convex polyhedron of points strictly closer to it than
//	to any other particle — clipped by the domain and by any walls.
//
// ✨ Why choose voro3d?
//
//   - Deterministic    — cell geometry is invariant under insertion order
//   - Thread-safe      — concurrent insertion with deferred overflow repair
//   - Extensible       — walls are a two-method capability interface
//   - Focused          — the computational core only; no CLI, no rendering
//
// Under the hood, everything is organized under single-purpose subpackages:
//
//	geom/        — vector arithmetic and the tolerance ε (§4.2)
//	wall/        — the wall capability abstraction (§4.5)
//	container/   — the block grid: insertion, periodic folding, overflow (§4.1)
//	voronoicell/ — the incremental vertex/edge polyhedron and its clip (§4.3)
//	compute/     — the shell-ordered neighbor-search driver (§4.4)
//	output/      — cell statistics and the %-code template language (§4.6, §6)
//	ptcio/       — whitespace-record particle stream parsing (§6)
//
// Quick outline, one particle in a unit cube:
//
//	grid, _ := container.New(
//		container.WithBox(container.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}),
//		container.WithGridDims(6, 6, 6),
//	)
//	p := container.Particle{ID: 0, X: 0.5, Y: 0.5, Z: 0.5}
//	grid.Put(p, false)
//	cell, _ := compute.NewDriver(grid, nil).Build(p, false)
//	vol := output.Volume(cell) // 1.0
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full design and
// grounding notes, and original_source/ for the reference C++ this core was
// distilled from.
package voro3d
