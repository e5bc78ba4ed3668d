// SPDX-License-Identifier: MIT
// Package: voro3d/container
//
// box.go — the domain box and its per-axis periodicity (spec §3).

package container

import "math"

// Box is the bounded rectangular domain [AX,BX] x [AY,BY] x [AZ,BZ], plus
// per-axis periodicity flags. Invariant: BX>AX, BY>AY, BZ>AZ.
type Box struct {
	AX, BX float64
	AY, BY float64
	AZ, BZ float64

	PeriodicX, PeriodicY, PeriodicZ bool
}

// validate reports whether the box's intervals are all strictly increasing.
func (b Box) validate() error {
	if !(b.BX > b.AX) || !(b.BY > b.AY) || !(b.BZ > b.AZ) {
		return ErrEmptyDomain
	}
	return nil
}

// lenX, lenY, lenZ return the domain's side lengths.
func (b Box) lenX() float64 { return b.BX - b.AX }
func (b Box) lenY() float64 { return b.BY - b.AY }
func (b Box) lenZ() float64 { return b.BZ - b.AZ }

// GuessOptimal returns a grid resolution (nx,ny,nz) targeting an average of
// particlesPerBlock particles in each of nx*ny*nz blocks, given n particles
// spread over b.
//
// This is the corrected per-axis heuristic: the original voro++
// guess_optimal (common.cc) computes a shared per-block side length from the
// domain's volume and then derives ny/nz by erroneously reusing the x-axis
// ratio; here every axis uses its own side length, so elongated domains get
// the non-cubical block counts the heuristic was meant to produce.
//
// Complexity: O(1).
func GuessOptimal(b Box, n int, particlesPerBlock float64) (nx, ny, nz int) {
	if n <= 0 || particlesPerBlock <= 0 {
		return 1, 1, 1
	}
	volume := b.lenX() * b.lenY() * b.lenZ()
	if volume <= 0 {
		return 1, 1, 1
	}
	// Target block count so that n particles split particlesPerBlock-per-block.
	targetBlocks := float64(n) / particlesPerBlock
	// Side length of a notional cubical block with that count over this volume.
	side := math.Cbrt(volume / targetBlocks)

	nx = clampDim(int(math.Ceil(b.lenX() / side)))
	ny = clampDim(int(math.Ceil(b.lenY() / side)))
	nz = clampDim(int(math.Ceil(b.lenZ() / side)))
	return nx, ny, nz
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
