// SPDX-License-Identifier: MIT
// Package: voro3d/voronoicell
//
// cell.go — the Cell type, its box initializer, and read-only accessors.
//
// Grounded on: matrix/impl_dense.go's flat-slice arena with doubling growth,
// core/types.go's doc-comment density for exported types.

package voronoicell

import (
	"github.com/katalvlaran/voro3d/geom"
)

const (
	// defaultMaxVertices is the scratch ceiling on total live vertices,
	// matching spec §4.3's "vertex-count ... arrays grow by doubling to
	// configured ceilings; exceeding either is fatal".
	defaultMaxVertices = 1 << 16
	// defaultMaxOrder is the scratch ceiling on a single vertex's edge count.
	defaultMaxOrder = 1 << 8
)

// Cell is the incrementally-clipped vertex/edge polyhedron of one particle,
// represented in the particle's local frame (spec §3).
//
// Not safe for concurrent use: each search thread owns a private Cell
// (spec §5, "cell workspaces are strictly thread-private").
type Cell struct {
	pos []geom.Vec // pos[i]: position of vertex i, local frame
	nbr [][]int32  // nbr[i][k]: index of the k-th neighbor of vertex i
	bak [][]int32  // bak[i][k]: slot s such that nbr[nbr[i][k]][s] == i

	tagging bool
	tag     [][]int64 // tag[i][k]: neighbor/wall id that created edge (i,k)
	hasTag  [][]bool  // hasTag[i][k]: whether tag[i][k] is meaningful

	alive bool // false once the cell has been clipped away entirely

	maxVertices int
	maxOrder    int
	lastErr     error // set when a scratch ceiling or degenerate face is hit
}

// Err returns the most recent fatal condition Clip encountered (scratch
// ceiling exceeded, or a degenerate new face), or nil if none occurred; it
// is never cleared once set. Per spec §4.3/§7 these are
// fatal; voro3d surfaces them here instead of panicking so the caller
// decides how to abort.
func (c *Cell) Err() error { return c.lastErr }

// Box is an axis-aligned bounding box, used both as container.Box's local
// counterpart for cell initialization and as a small self-contained value
// type so this package does not depend on container.
type Box struct {
	AX, BX float64
	AY, BY float64
	AZ, BZ float64
}

// cubeAdjacency lists, for each of the 8 box corners, the (unordered) indices
// of its 3 neighboring corners in the standard cube graph.
var cubeAdjacency = [8][3]int{
	{1, 3, 4},
	{0, 2, 5},
	{1, 3, 6},
	{0, 2, 7},
	{0, 5, 7},
	{1, 4, 6},
	{2, 5, 7},
	{3, 4, 6},
}

// cubeSigns gives each corner's outward sign pattern, used as the reference
// normal for ordering that corner's neighbor ring (see ringOrder in ring.go).
var cubeSigns = [8]geom.Vec{
	{X: -1, Y: -1, Z: -1},
	{X: +1, Y: -1, Z: -1},
	{X: +1, Y: +1, Z: -1},
	{X: -1, Y: +1, Z: -1},
	{X: -1, Y: -1, Z: +1},
	{X: +1, Y: -1, Z: +1},
	{X: +1, Y: +1, Z: +1},
	{X: -1, Y: +1, Z: +1},
}

// NewBox returns a Cell initialized to box, translated into the local frame
// of a particle at origin (spec §4.3 "Initialization").
//
// Complexity: O(1) (fixed 8 vertices, 3 edges each).
func NewBox(box Box, origin geom.Vec, tagging bool) *Cell {
	corners := [8]geom.Vec{
		{X: box.AX, Y: box.AY, Z: box.AZ},
		{X: box.BX, Y: box.AY, Z: box.AZ},
		{X: box.BX, Y: box.BY, Z: box.AZ},
		{X: box.AX, Y: box.BY, Z: box.AZ},
		{X: box.AX, Y: box.AY, Z: box.BZ},
		{X: box.BX, Y: box.AY, Z: box.BZ},
		{X: box.BX, Y: box.BY, Z: box.BZ},
		{X: box.AX, Y: box.BY, Z: box.BZ},
	}

	c := &Cell{
		pos:         make([]geom.Vec, 8),
		nbr:         make([][]int32, 8),
		bak:         make([][]int32, 8),
		tagging:     tagging,
		alive:       true,
		maxVertices: defaultMaxVertices,
		maxOrder:    defaultMaxOrder,
	}
	if tagging {
		c.tag = make([][]int64, 8)
		c.hasTag = make([][]bool, 8)
	}

	for i := 0; i < 8; i++ {
		c.pos[i] = geom.Sub(corners[i], origin)
	}
	for i := 0; i < 8; i++ {
		nbrs := cubeAdjacency[i]
		pts := [3]geom.Vec{c.pos[nbrs[0]], c.pos[nbrs[1]], c.pos[nbrs[2]]}
		order := ringOrder(c.pos[i], cubeSigns[i], pts[:])

		row := make([]int32, 3)
		for k, idx := range order {
			row[k] = int32(nbrs[idx])
		}
		c.nbr[i] = row
		if tagging {
			c.tag[i] = make([]int64, 3)
			c.hasTag[i] = make([]bool, 3) // initial box faces carry no neighbor tag
		}
	}
	c.bak = computeBackLinks(c.nbr)

	return c
}

// Alive reports whether the cell still has non-empty interior.
func (c *Cell) Alive() bool { return c.alive }

// NVertices returns the current number of live vertices.
func (c *Cell) NVertices() int { return len(c.pos) }

// Vertex returns the position of vertex i in the local (particle) frame.
func (c *Cell) Vertex(i int) geom.Vec { return c.pos[i] }

// Order returns the current degree of vertex i.
func (c *Cell) Order(i int) int { return len(c.nbr[i]) }

// Neighbor returns the vertex index the k-th edge of vertex i leads to.
func (c *Cell) Neighbor(i, k int) int { return int(c.nbr[i][k]) }

// BackLink returns the slot s such that Neighbor(Neighbor(i,k), s) == i.
func (c *Cell) BackLink(i, k int) int { return int(c.bak[i][k]) }

// EdgeTag returns the neighbor/wall identifier that created edge (i,k), and
// whether that edge carries a tag at all (false for edges inherited from the
// initial box, per spec §3's "optional per-edge tag ... empty/undefined if
// the edge came from the initial box or a wall with untagged clips").
func (c *Cell) EdgeTag(i, k int) (id int64, ok bool) {
	if !c.tagging {
		return 0, false
	}
	return c.tag[i][k], c.hasTag[i][k]
}

// MaxRadiusSq returns r² = max_i (x_i²+y_i²+z_i²), the squared radius of the
// smallest origin-centered sphere enclosing every current vertex (spec §4.4
// step 2). Recomputed from scratch on every call; compute's Driver.Build
// calls it once per visited block offset.
//
// Complexity: O(NVertices()).
func (c *Cell) MaxRadiusSq() float64 {
	var maxR2 float64
	for _, p := range c.pos {
		if r2 := geom.Norm2(p); r2 > maxR2 {
			maxR2 = r2
		}
	}
	return maxR2
}
