// SPDX-License-Identifier: MIT
// Package: voro3d/compute
//
// search.go — Driver, the per-particle neighbor-search loop (spec §4.4),
// grounded on dijkstra/dijkstra.go's frontier-driven traversal and its
// termination-by-distance-bound discipline.

package compute

import (
	"math"

	"github.com/katalvlaran/voro3d/container"
	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/voronoicell"
	"github.com/katalvlaran/voro3d/wall"
)

// Driver drives the construction of one cell at a time against a Grid and
// an optional wall Registry, reusing one precomputed ShellTable across every
// call (spec §4.4's "precomputed shell-expansion table").
//
// Driver itself holds no per-search mutable state, so a single Driver may be
// shared by many goroutines each calling Build with their own thread-private
// *voronoicell.Cell output (spec §5's "cell workspaces are strictly
// thread-private").
type Driver struct {
	grid   *container.Grid
	walls  *wall.Registry
	shells *ShellTable
}

// NewDriver builds a Driver for grid, optionally bounding cells by walls
// (pass nil for no walls).
func NewDriver(grid *container.Grid, walls *wall.Registry) *Driver {
	nx, ny, nz := grid.Dims()
	dx, dy, dz := grid.BlockSide()
	return &Driver{
		grid:   grid,
		walls:  walls,
		shells: NewShellTable(nx, ny, nz, dx, dy, dz),
	}
}

// Build drives target's cell to completion: initialize the bounding box in
// target's local frame, clip by walls, then visit blocks in non-decreasing
// lower-bound distance order, submitting each candidate's bisector plane,
// until the next unvisited block cannot possibly contribute (spec §4.4).
//
// Returns voronoicell.ErrAnnihilated if target's cell was entirely clipped
// away, and compute.ErrOutsideDomain if target itself lies outside the
// grid's non-periodic domain.
func (d *Driver) Build(target container.Particle, tagging bool) (*voronoicell.Cell, error) {
	_, _, _, wx, wy, wz, ok := d.grid.LocateBlock(target.X, target.Y, target.Z)
	if !ok {
		return nil, ErrOutsideDomain
	}
	target.X, target.Y, target.Z = wx, wy, wz
	origin := geom.Vec{X: target.X, Y: target.Y, Z: target.Z}

	box := d.grid.Box()
	cellBox := voronoicell.Box{AX: box.AX, BX: box.BX, AY: box.AY, BY: box.BY, AZ: box.AZ, BZ: box.BZ}
	cell := voronoicell.NewBox(cellBox, origin, tagging)

	if d.walls != nil {
		if !d.walls.CutCell(cell, target.X, target.Y, target.Z) {
			return cell, voronoicell.ErrAnnihilated
		}
	}

	radical := d.grid.Radical()
	rMax := d.grid.MaxRadius()

	i0, j0, k0 := blockOf(d.grid, target.X, target.Y, target.Z)
	nx, ny, nz := d.grid.Dims()
	periodX, periodY, periodZ := d.grid.Box().PeriodicX, d.grid.Box().PeriodicY, d.grid.Box().PeriodicZ
	lenX, lenY, lenZ := box.BX-box.AX, box.BY-box.AY, box.BZ-box.AZ

	for _, off := range d.shells.Offsets() {
		threshold := terminationThreshold(cell.MaxRadiusSq(), radical, rMax)
		if off.L2 >= threshold {
			break
		}

		ii, shiftX, okI := wrapAxisShift(i0+off.Di, nx, lenX, periodX)
		jj, shiftY, okJ := wrapAxisShift(j0+off.Dj, ny, lenY, periodY)
		kk, shiftZ, okK := wrapAxisShift(k0+off.Dk, nz, lenZ, periodZ)
		if !okI || !okJ || !okK {
			continue
		}

		idx := d.grid.BlockIndex(ii, jj, kk)
		for _, q := range d.grid.BlockParticles(idx) {
			if q.ID == target.ID && shiftX == 0 && shiftY == 0 && shiftZ == 0 {
				continue // target's own record, found in its own home block
			}

			// q's true position for this visit is its stored position plus
			// the periodic shift implied by the wrapped block we're in, not
			// merely the nearest image of the raw coordinate difference —
			// otherwise a particle's own periodic copy (e.g. any axis with
			// nx==1) collapses to delta zero and is mistaken for itself.
			dx := (q.X + shiftX) - target.X
			dy := (q.Y + shiftY) - target.Y
			dz := (q.Z + shiftZ) - target.Z

			delta2 := dx*dx + dy*dy + dz*dz
			w := delta2 / 4
			if radical {
				w = (delta2 + target.R*target.R - q.R*q.R) / 4
			}

			if !cell.Clip(dx, dy, dz, w, q.ID, tagging) {
				return cell, voronoicell.ErrAnnihilated
			}
		}
	}

	return cell, nil
}

// blockOf locates (x,y,z)'s block coordinates, assuming the point has
// already been validated/wrapped by the caller.
func blockOf(g *container.Grid, x, y, z float64) (i, j, k int) {
	i, j, k, _, _, _, _ = g.LocateBlock(x, y, z)
	return
}

// wrapIndex folds a raw block coordinate into [0,n) for a periodic axis, or
// rejects it if out of range on a non-periodic axis.
func wrapIndex(raw, n int, periodic bool) (int, bool) {
	if periodic {
		return ((raw % n) + n) % n, true
	}
	if raw < 0 || raw >= n {
		return 0, false
	}
	return raw, true
}

// wrapAxisShift folds a raw block coordinate into [0,n) for a periodic axis
// and reports the coordinate shift (a signed integer multiple of length)
// that recovers the true position of a particle stored in the wrapped
// block — e.g. wraps==1 means that block is one full domain length beyond
// the stored coordinates. Build uses this, rather than a plain
// minimum-image fold, because it must bisect against the specific
// periodic image implied by the shell offset being visited, including a
// particle's own image under a periodic axis.
func wrapAxisShift(raw, n int, length float64, periodic bool) (idx int, shift float64, ok bool) {
	if !periodic {
		if raw < 0 || raw >= n {
			return 0, 0, false
		}
		return raw, 0, true
	}
	wrapped := ((raw % n) + n) % n
	wraps := (raw - wrapped) / n
	return wrapped, float64(wraps) * length, true
}

// minImage returns the minimum-image displacement along one periodic axis:
// the representative of d modulo length with the smallest magnitude.
func minImage(d, length float64, periodic bool) float64 {
	if !periodic {
		return d
	}
	for d > length/2 {
		d -= length
	}
	for d < -length/2 {
		d += length
	}
	return d
}

// terminationThreshold returns the squared-distance bound past which no
// unvisited block can still affect the cell (spec §4.4 steps 5-6).
func terminationThreshold(maxR2 float64, radical bool, rMax float64) float64 {
	if !radical {
		return 4 * maxR2
	}
	r := math.Sqrt(maxR2)
	rr := r + rMax
	return 4 * rr * rr
}
