// SPDX-License-Identifier: MIT
// Package: voro3d/wall
//
// wall.go — the Wall capability interface and an ordered Registry.
//
// Contract:
//   - A Wall never retains a reference to the Clippable it is given; it only
//     calls Clip on it some number of times (zero or more) and returns
//     whether the cell survived.
//   - Registry.Add assigns identifiers in strict registration order, the
//     first wall receiving -1, the second -2, and so on, reserved as
//     disjoint from particle identifiers (spec §4.5).
//   - Registry is safe for concurrent Add/Entries/PointInside/CutCell calls,
//     mirroring core's RWMutex-guarded read-mostly access pattern, because
//     spec §5 states the wall list is read-only once search begins but does
//     not forbid registration from multiple goroutines before that point.

package wall

import "sync"

// Clippable is the minimal surface a cell implementation (voronoicell.Cell)
// must expose so a Wall can clip it without this package importing
// voronoicell; the two packages stay independent of each other.
//
// ux, uy, uz, w describe the half-space (ux*x+uy*y+uz*z <= 2w) that is kept,
// exactly as voronoicell.Cell.Clip expects (spec §4.3).
type Clippable interface {
	Clip(ux, uy, uz, w float64, neighborID int64, tagged bool) (kept bool)
}

// Wall is a bounding-surface primitive. Concrete shapes (plane, sphere,
// cylinder, cone) live outside this module; only the abstraction is
// specified here (spec §1, §4.5).
type Wall interface {
	// PointInside reports whether (x, y, z) lies inside the wall's boundary.
	// Used to reject an initial find_voronoi_cell query as outside the domain.
	PointInside(x, y, z float64) bool

	// CutCell applies the wall's clipping plane(s) to c, a cell owned by a
	// particle at (px, py, pz). It returns false if the cell was annihilated.
	CutCell(c Clippable, px, py, pz float64) bool
}

// Entry pairs a registered Wall with its assigned identifier.
type Entry struct {
	ID   int64
	Wall Wall
}

// Registry holds a container's ordered list of walls and assigns their
// negative identifiers.
//
// Concurrency: muWalls guards entries; Add takes a write lock, all other
// methods take a read lock, following the same muVert/muEdgeAdj split the
// teacher's core.Graph uses for vertex vs. edge state.
type Registry struct {
	muWalls sync.RWMutex
	entries []Entry
}

// NewRegistry returns an empty wall registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers w and returns its assigned identifier.
//
// Complexity: O(1) amortized.
func (r *Registry) Add(w Wall) int64 {
	r.muWalls.Lock()
	defer r.muWalls.Unlock()

	id := -(int64(len(r.entries)) + 1) // first wall is -1, per spec §4.5
	r.entries = append(r.entries, Entry{ID: id, Wall: w})

	return id
}

// Len reports the number of registered walls.
func (r *Registry) Len() int {
	r.muWalls.RLock()
	defer r.muWalls.RUnlock()

	return len(r.entries)
}

// Entries returns a copy of the registered (ID, Wall) pairs in registration
// order. The copy lets callers iterate without holding the registry lock.
func (r *Registry) Entries() []Entry {
	r.muWalls.RLock()
	defer r.muWalls.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// PointInside reports whether (x, y, z) lies inside every registered wall.
// An empty registry always returns true (no walls constrain the domain).
//
// Complexity: O(len(entries)).
func (r *Registry) PointInside(x, y, z float64) bool {
	for _, e := range r.Entries() {
		if !e.Wall.PointInside(x, y, z) {
			return false
		}
	}
	return true
}

// CutCell clips c against every registered wall in registration order,
// stopping early if the cell is annihilated. It reports whether the cell
// survived all walls.
//
// Complexity: O(len(entries)) calls to each wall's CutCell.
func (r *Registry) CutCell(c Clippable, px, py, pz float64) bool {
	for _, e := range r.Entries() {
		if !e.Wall.CutCell(c, px, py, pz) {
			return false
		}
	}
	return true
}
