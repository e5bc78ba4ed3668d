// SPDX-License-Identifier: MIT
// Package: voro3d/compute
//
// shell.go — the precomputed (Δi,Δj,Δk) shell-expansion table (spec §4.4
// step 3).

package compute

import "sort"

// Offset is one block displacement from a search's origin block, with its
// conservative lower-bound squared distance to that origin block.
type Offset struct {
	Di, Dj, Dk int
	L2         float64
}

// ShellTable is the full set of block offsets reachable within a grid of the
// given dimensions, sorted by non-decreasing L². Built once per grid
// geometry (block side lengths and block counts) and reused for every
// target particle, since the lower bound depends only on block geometry,
// not on any particle's exact position within its block.
type ShellTable struct {
	offsets []Offset
}

// NewShellTable builds the table for a grid with block side lengths
// (dx,dy,dz) and (nx,ny,nz) blocks per axis. Offsets range over the full
// [-n, n] span per axis (one step past every distinct non-periodic block
// pair at [-(n-1), n-1]) so that a periodic axis's own one-wraparound
// image — Di==±n, which folds back onto a real block exactly one domain
// length away — is representable too; a non-periodic axis simply rejects
// that extra step at lookup time (wrapAxisShift's range check), so the
// wider range costs a little more table size but changes nothing for a
// non-periodic grid.
//
// Complexity: O(nx*ny*nz log(nx*ny*nz)) once; deliberately a single sorted
// pass rather than voro++'s incrementally-grown shell rings, since a grid's
// block count is bounded and this table is amortized across every particle
// search run against it.
func NewShellTable(nx, ny, nz int, dx, dy, dz float64) *ShellTable {
	offsets := make([]Offset, 0, (2*nx+1)*(2*ny+1)*(2*nz+1))
	for di := -nx; di <= nx; di++ {
		for dj := -ny; dj <= ny; dj++ {
			for dk := -nz; dk <= nz; dk++ {
				offsets = append(offsets, Offset{
					Di: di, Dj: dj, Dk: dk,
					L2: axisGapSq(di, dx) + axisGapSq(dj, dy) + axisGapSq(dk, dz),
				})
			}
		}
	}
	sort.Slice(offsets, func(a, b int) bool { return offsets[a].L2 < offsets[b].L2 })
	return &ShellTable{offsets: offsets}
}

// axisGapSq returns the squared minimum gap between a block and another
// block delta steps away along one axis, given that axis's block side
// length: 0 for delta in {-1,0,1} (blocks touch or coincide), otherwise
// ((|delta|-1)*side)^2.
func axisGapSq(delta int, side float64) float64 {
	if delta < 0 {
		delta = -delta
	}
	if delta <= 1 {
		return 0
	}
	gap := float64(delta-1) * side
	return gap * gap
}

// Offsets returns the table's entries in non-decreasing L² order.
func (st *ShellTable) Offsets() []Offset { return st.offsets }
