// SPDX-License-Identifier: MIT
// Package: voro3d/compute
//
// find.go — Driver.FindVoronoiCell, the nearest-particle query variant
// (spec §4.1's find_voronoi_cell, §4.4's "same shell enumeration").

package compute

import "github.com/katalvlaran/voro3d/container"

// FindVoronoiCell locates the particle whose cell contains (x,y,z): the
// nearest particle under Euclidean distance, or under power (radical)
// distance |x-p|^2 - r_p^2 when the grid is radical. The same shell
// enumeration and termination proof used by Build establishes that once no
// unvisited block can yield a closer particle, the current best candidate
// is correct by construction — the weighted-nearest particle found under a
// terminated shell search already satisfies the Voronoi cell membership
// test that Build's bisector clipping would otherwise re-derive, so no
// separate confirmation pass against a built cell is needed.
//
// Returns ErrOutsideDomain if (x,y,z) falls outside the grid's non-periodic
// domain, or ErrNoParticle if the grid has no particles.
func (d *Driver) FindVoronoiCell(x, y, z float64) (container.Particle, error) {
	i0, j0, k0, wx, wy, wz, ok := d.grid.LocateBlock(x, y, z)
	if !ok {
		return container.Particle{}, ErrOutsideDomain
	}
	x, y, z = wx, wy, wz

	nx, ny, nz := d.grid.Dims()
	periodX, periodY, periodZ := d.grid.Box().PeriodicX, d.grid.Box().PeriodicY, d.grid.Box().PeriodicZ
	box := d.grid.Box()
	lenX, lenY, lenZ := box.BX-box.AX, box.BY-box.AY, box.BZ-box.AZ
	radical := d.grid.Radical()
	rMax := d.grid.MaxRadius()

	var (
		found    bool
		best     container.Particle
		bestDist float64
	)

	for _, off := range d.shells.Offsets() {
		// A block at squared lower-bound L² can contain a point whose power
		// distance to the query is as low as L²-rMax² (worst case, a
		// particle with the grid's largest radius). Stop once even that
		// best case can no longer beat the current candidate.
		if found && off.L2 >= bestDist+rMax*rMax {
			break
		}

		ii, okI := wrapIndex(i0+off.Di, nx, periodX)
		jj, okJ := wrapIndex(j0+off.Dj, ny, periodY)
		kk, okK := wrapIndex(k0+off.Dk, nz, periodZ)
		if !okI || !okJ || !okK {
			continue
		}

		idx := d.grid.BlockIndex(ii, jj, kk)
		for _, q := range d.grid.BlockParticles(idx) {
			dx := minImage(q.X-x, lenX, periodX)
			dy := minImage(q.Y-y, lenY, periodY)
			dz := minImage(q.Z-z, lenZ, periodZ)
			dist := dx*dx + dy*dy + dz*dz
			if radical {
				dist -= q.R * q.R
			}
			if !found || dist < bestDist {
				found, best, bestDist = true, q, dist
			}
		}
	}

	if !found {
		return container.Particle{}, ErrNoParticle
	}
	return best, nil
}
