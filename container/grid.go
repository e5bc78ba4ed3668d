// SPDX-License-Identifier: MIT
// Package: voro3d/container
//
// grid.go — Grid, the block-partitioned spatial index (spec §4.1),
// grounded on core/types.go's RWMutex-guarded facade and builder/config.go's
// functional-options construction.

package container

import (
	"fmt"
	"log"
	"math"
	"sync"
)

// OrderEntry records one (block, slot) insertion, in the order Put was
// called, for callers that need output in input order (spec §3, "particle
// order (optional)").
type OrderEntry struct {
	Block int
	Slot  int
}

// Grid is the block grid spatial index: it owns per-block particle arrays
// and a read-mostly-during-search, read/append-during-insertion lifecycle
// (spec §5).
//
// Concurrency: Put is not safe for concurrent callers. PutParallel is, via
// an atomic per-block slot claim; ReconcileOverflow must run single-threaded
// once insertion is quiescent. Once built, blocks are read-only during
// search (spec §5's "wall list is read-only once search begins" applies
// equally to the block arrays).
type Grid struct {
	muBlocks sync.RWMutex // guards blocks slice reallocation during Put/grow
	cfg      Config
	blocks   []*block
	logger   *log.Logger

	muOrder sync.Mutex
	order   []OrderEntry

	muOverflow    sync.Mutex
	overflow      []overflowEntry
	maxRadiusBits uint64 // atomic storage for the running max particle radius, see overflow.go
}

// overflowEntry is a particle that arrived at a slot beyond its block's
// capacity during a concurrent PutParallel phase (spec §4.1).
type overflowEntry struct {
	blockIdx int
	slot     int
	p        Particle
}

// New constructs a Grid from DefaultConfig with opts applied in order, then
// validates the result (spec §3's box and grid-dimension invariants).
//
// Complexity: O(nx*ny*nz) to allocate blocks.
func New(opts ...Option) (*Grid, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewFromConfig(cfg, nil)
}

// NewFromConfig builds a Grid directly from cfg (e.g. one loaded via
// LoadConfig), attaching logger (nil is accepted and treated as discard).
func NewFromConfig(cfg Config, logger *log.Logger) (*Grid, error) {
	if err := cfg.Box.validate(); err != nil {
		return nil, err
	}
	if cfg.Nx <= 0 || cfg.Ny <= 0 || cfg.Nz <= 0 {
		return nil, ErrBadGridDims
	}
	if cfg.BlockCapacityCeiling <= 0 {
		return nil, ErrBadCapacityCeiling
	}

	n := cfg.Nx * cfg.Ny * cfg.Nz
	blocks := make([]*block, n)
	for i := range blocks {
		blocks[i] = newBlock()
	}

	return &Grid{cfg: cfg, blocks: blocks, logger: logOrDiscard(logger)}, nil
}

// Box returns the grid's domain box.
func (g *Grid) Box() Box { return g.cfg.Box }

// Dims returns the block grid resolution.
func (g *Grid) Dims() (nx, ny, nz int) { return g.cfg.Nx, g.cfg.Ny, g.cfg.Nz }

// BlockSide returns the per-axis block side lengths (dx,dy,dz).
func (g *Grid) BlockSide() (dx, dy, dz float64) {
	return g.cfg.Box.lenX() / float64(g.cfg.Nx),
		g.cfg.Box.lenY() / float64(g.cfg.Ny),
		g.cfg.Box.lenZ() / float64(g.cfg.Nz)
}

// Radical reports whether this grid stores per-particle radii.
func (g *Grid) Radical() bool { return g.cfg.Radical }

// NBlocks returns the total number of blocks (nx*ny*nz).
func (g *Grid) NBlocks() int { return len(g.blocks) }

// BlockIndex folds (i,j,k) block coordinates into a flat index, matching
// the row-major layout i + nx*(j + ny*k) used throughout this package.
func (g *Grid) BlockIndex(i, j, k int) int {
	return i + g.cfg.Nx*(j+g.cfg.Ny*k)
}

// BlockCoords is the inverse of BlockIndex.
func (g *Grid) BlockCoords(idx int) (i, j, k int) {
	i = idx % g.cfg.Nx
	idx /= g.cfg.Nx
	j = idx % g.cfg.Ny
	k = idx / g.cfg.Ny
	return
}

// BlockParticles returns the particles currently stored in block idx. The
// returned slice aliases internal storage and must be treated as read-only
// by callers (the neighbor-search driver is the intended reader).
func (g *Grid) BlockParticles(idx int) []Particle {
	g.muBlocks.RLock()
	defer g.muBlocks.RUnlock()
	bl := g.blocks[idx]
	return bl.data[:bl.len()]
}

// locateBlock folds a position into block coordinates along periodic axes
// (wrapping the coordinate by integer multiples of the axis length and the
// index modulo the axis block count); returns ok=false if a non-periodic
// axis is violated (spec §4.1 put_locate_block).
func (g *Grid) locateBlock(x, y, z float64) (i, j, k int, wx, wy, wz float64, ok bool) {
	dx, dy, dz := g.BlockSide()
	b := g.cfg.Box

	wx, i, ok = foldAxis(x, b.AX, b.lenX(), dx, g.cfg.Nx, b.PeriodicX)
	if !ok {
		return
	}
	wy, j, ok = foldAxis(y, b.AY, b.lenY(), dy, g.cfg.Ny, b.PeriodicY)
	if !ok {
		return
	}
	wz, k, ok = foldAxis(z, b.AZ, b.lenZ(), dz, g.cfg.Nz, b.PeriodicZ)
	return
}

// foldAxis wraps v into [lo, lo+length) when periodic, else rejects v
// outside that interval; returns the (possibly wrapped) coordinate and its
// block index along this axis.
func foldAxis(v, lo, length, step float64, n int, periodic bool) (wrapped float64, idx int, ok bool) {
	rel := v - lo
	if periodic {
		rel = math.Mod(rel, length)
		if rel < 0 {
			rel += length
		}
	} else if rel < 0 || rel >= length {
		return 0, 0, false
	}
	idx = int(rel / step)
	if idx >= n {
		idx = n - 1 // guards the v==hi boundary from floating-point overshoot
	}
	return lo + rel, idx, true
}

// LocateBlock is the exported form of put_locate_block (spec §4.1): folds a
// position into block coordinates along periodic axes, returning ok=false
// if a non-periodic axis is violated.
func (g *Grid) LocateBlock(x, y, z float64) (i, j, k int, wx, wy, wz float64, ok bool) {
	return g.locateBlock(x, y, z)
}

// Remap is locateBlock plus the periodic image offset (ai,aj,ak): the
// integer number of domain lengths v was shifted by on each periodic axis,
// so a caller can reconstruct the absolute (non-wrapped) position of a
// periodic neighbor (spec §4.1; supplemented from original_source's
// container_3d.cc, which tracks this triple alongside the wrapped index).
func (g *Grid) Remap(x, y, z float64) (i, j, k, ai, aj, ak int, wx, wy, wz float64, ok bool) {
	b := g.cfg.Box
	i, j, k, wx, wy, wz, ok = g.locateBlock(x, y, z)
	if !ok {
		return
	}
	if b.PeriodicX {
		ai = int(math.Floor((x - b.AX) / b.lenX()))
	}
	if b.PeriodicY {
		aj = int(math.Floor((y - b.AY) / b.lenY()))
	}
	if b.PeriodicZ {
		ak = int(math.Floor((z - b.AZ) / b.lenZ()))
	}
	return
}

// Put locates p's block, grows it if full, and appends. Not safe for
// concurrent callers (use PutParallel). Returns (false, nil) silently if p
// falls outside a non-periodic axis (spec §4.1); the attempt is still
// logged via the grid's logger.
func (g *Grid) Put(p Particle, recordOrder bool) (inserted bool, err error) {
	if g.cfg.Radical == false && p.R != 0 {
		return false, ErrRadiusRequired
	}

	g.muBlocks.Lock()
	defer g.muBlocks.Unlock()

	i, j, k, wx, wy, wz, ok := g.locateBlock(p.X, p.Y, p.Z)
	if !ok {
		g.logger.Printf("container: put: id=%d (%.6g,%.6g,%.6g) outside domain, dropped", p.ID, p.X, p.Y, p.Z)
		return false, nil
	}
	p.X, p.Y, p.Z = wx, wy, wz

	if g.cfg.Radical {
		g.observeRadius(p.R)
	}

	idx := g.BlockIndex(i, j, k)
	slot, err := g.blocks[idx].put(p, g.cfg.BlockCapacityCeiling)
	if err != nil {
		return false, fmt.Errorf("container: put id=%d: %w", p.ID, err)
	}

	if recordOrder {
		g.muOrder.Lock()
		g.order = append(g.order, OrderEntry{Block: idx, Slot: slot})
		g.muOrder.Unlock()
	}
	return true, nil
}

// Order returns the (block,slot) insertion-order log recorded by Put calls
// made with recordOrder=true, in call order.
func (g *Grid) Order() []OrderEntry {
	g.muOrder.Lock()
	defer g.muOrder.Unlock()
	return append([]OrderEntry(nil), g.order...)
}

// Config returns a copy of the grid's configuration.
func (g *Grid) Config() Config { return g.cfg }
