// SPDX-License-Identifier: MIT
// Package: voro3d/voronoicell
//
// ring.go — cyclic-order and back-link bookkeeping shared by box
// initialization (cell.go) and clipping (clip.go).

package voronoicell

import (
	"sort"

	"github.com/katalvlaran/voro3d/geom"
)

// ringOrder returns a permutation of 0..len(pts)-1 ordering pts by angle
// around axis (the reference normal at center), so that walking pts in the
// returned order sweeps a single consistent rotational sense.
//
// This is the one geometric primitive this package leans on instead of
// voro++'s hand-derived winged-edge walk: since voro3d's cells are always
// convex, sorting a vertex's (or a new face's) boundary points by angle
// around a single reference axis yields a valid rotation system, which is
// sufficient for the planar/3-connected invariants spec §3 requires.
//
// Complexity: O(n log n).
func ringOrder(center, axis geom.Vec, pts []geom.Vec) []int {
	e1, e2 := geom.OrthonormalBasis(axis)

	idx := make([]int, len(pts))
	angles := make([]float64, len(pts))
	for i, p := range pts {
		idx[i] = i
		angles[i] = geom.Angle(center, p, e1, e2)
	}

	sort.Slice(idx, func(a, b int) bool { return angles[idx[a]] < angles[idx[b]] })

	return idx
}

// computeBackLinks derives the back-link table for an adjacency list nbr by
// scanning: for every directed edge (i,k)->j, it locates a slot s in nbr[j]
// with nbr[j][s]==i. For the simple (no parallel-edge) graphs a convex cell
// produces, this slot is unique.
//
// Complexity: O(sum of order(i)*order(j)) over incident pairs, negligible
// for the small vertex orders (typically 3-8) a Voronoi cell exhibits.
func computeBackLinks(nbr [][]int32) [][]int32 {
	bak := make([][]int32, len(nbr))
	for i := range nbr {
		bak[i] = make([]int32, len(nbr[i]))
		for k, j := range nbr[i] {
			for s, back := range nbr[j] {
				if back == int32(i) {
					bak[i][k] = int32(s)
					break
				}
			}
		}
	}
	return bak
}
