// SPDX-License-Identifier: MIT
// Package: voro3d/voronoicell
//
// clip.go — Cell.Clip, the half-space clipping operation (spec §4.3).

package voronoicell

import (
	"github.com/katalvlaran/voro3d/geom"
)

// Clip cuts the cell by the half-space ux*x+uy*y+uz*z <= 2w, keeping the
// side containing the origin (spec §4.3). neighborID/tagged are recorded on
// every edge of the newly exposed face when the cell was built with tagging
// enabled and tagged is true; pass tagged=false for a wall clip that should
// leave its edges untagged.
//
// Returns kept=false if the cell was annihilated (every vertex strictly
// beyond the plane); the caller must stop processing this cell (spec §4.3
// step 3). Returns kept=true with the geometry unchanged if no vertex was
// beyond the plane (spec §4.3 step 2); in that case, for a tagged clip on a
// tagging cell, edges whose endpoints both lie On the plane are retagged
// with neighborID.
//
// Complexity: O(NVertices()) to classify, O(boundary size) to rebuild.
func (c *Cell) Clip(ux, uy, uz, w float64, neighborID int64, tagged bool) (kept bool) {
	if !c.alive {
		return false
	}

	u := geom.Vec{X: ux, Y: uy, Z: uz}
	n := len(c.pos)
	side := make([]geom.Side, n)
	dist := make([]float64, n)

	var nUp int
	for i, p := range c.pos {
		d := geom.Dot(u, p) - 2*w
		dist[i] = d
		s := geom.Classify(d)
		side[i] = s
		if s == geom.Up {
			nUp++
		}
	}

	if nUp == 0 {
		// Plane does not cut this cell, but it may lie exactly on an
		// existing face (every vertex of that face classified On): e.g. a
		// periodic neighbor exactly one box length away reproduces the
		// cell's own wall. Tag that face's edges with this neighbor rather
		// than leaving them marked as inherited from the initial box,
		// since a genuine neighbor plane touched them.
		if tagged && c.tagging {
			c.tagOnPlaneFace(side, neighborID)
		}
		return true
	}
	if nUp == n {
		c.annihilate()
		return false
	}

	c.clipMixed(u, w, side, dist, neighborID, tagged)
	return true
}

// tagOnPlaneFace marks every edge whose both endpoints classified On as
// belonging to neighborID, for a clip that touched but did not cut the cell.
func (c *Cell) tagOnPlaneFace(side []geom.Side, neighborID int64) {
	for i, s := range side {
		if s != geom.On {
			continue
		}
		for k, j := range c.nbr[i] {
			if side[j] == geom.On {
				c.tag[i][k] = neighborID
				c.hasTag[i][k] = true
			}
		}
	}
}

// annihilate empties the cell once every vertex has been classified Up.
func (c *Cell) annihilate() {
	c.pos = nil
	c.nbr = nil
	c.bak = nil
	c.tag = nil
	c.hasTag = nil
	c.alive = false
}

// faceVertex describes one boundary point of the newly exposed face, before
// its final vertex index and ring links are resolved.
type faceVertex struct {
	pos    geom.Vec
	fresh  bool  // true: a brand-new vertex created on a crossed edge
	newIdx int32 // resolved index into the rebuilt vertex table
	// Fields valid only when fresh:
	downOld  int32 // old index of the surviving (down) endpoint
	downNew  int32 // new index of the surviving (down) endpoint
	downSlot int   // slot in the down endpoint's ring to overwrite
	// Field valid only when !fresh (an On-plane vertex kept verbatim):
	onOld int32 // this vertex's own old index, for re-reading its old ring
}

// clipMixed rebuilds the cell's vertex/edge tables after a clip that left a
// genuine mix of Up and non-Up vertices (spec §4.3 step 4-6).
func (c *Cell) clipMixed(u geom.Vec, w float64, side []geom.Side, dist []float64, neighborID int64, tagged bool) {
	n := len(c.pos)

	oldToNew := make([]int32, n)
	for i := range oldToNew {
		oldToNew[i] = -1
	}

	var newPos []geom.Vec
	var newNbr [][]int32
	var newTag [][]int64
	var newHasTag [][]bool

	// 1) Compact surviving (Down or On) vertices, copying their old ring
	// verbatim; non-Up entries are remapped to new indices immediately,
	// Up-bound entries are left as stale old indices and resolved below.
	for i := 0; i < n; i++ {
		if side[i] == geom.Up {
			continue
		}
		oldToNew[i] = int32(len(newPos))
		newPos = append(newPos, c.pos[i])
		newNbr = append(newNbr, append([]int32(nil), c.nbr[i]...))
		if c.tagging {
			newTag = append(newTag, append([]int64(nil), c.tag[i]...))
			newHasTag = append(newHasTag, append([]bool(nil), c.hasTag[i]...))
		}
	}
	for i := 0; i < n; i++ {
		if side[i] == geom.Up {
			continue
		}
		ni := oldToNew[i]
		for k, v := range newNbr[ni] {
			if side[v] != geom.Up {
				newNbr[ni][k] = oldToNew[v]
			}
			// Up-bound slots are resolved in step 3 below.
		}
	}

	// 2) Walk every Up vertex's edges, collecting the boundary of the new
	// face: a fresh vertex per crossed (Up->Down) edge, or the existing
	// vertex itself per (Up->On) edge (visited once even if several Up
	// neighbors touch the same On vertex).
	var faces []faceVertex
	onSeen := make(map[int32]bool)

	for i := 0; i < n; i++ {
		if side[i] != geom.Up {
			continue
		}
		for k, j := range c.nbr[i] {
			switch side[j] {
			case geom.Down:
				t := dist[i] / (dist[i] - dist[j])
				p := geom.Lerp(c.pos[i], c.pos[j], t)

				slot := -1
				for s, back := range c.nbr[j] {
					if back == int32(i) {
						slot = s
						break
					}
				}
				faces = append(faces, faceVertex{
					pos: p, fresh: true,
					downOld: j, downNew: oldToNew[j], downSlot: slot,
				})
			case geom.On:
				if onSeen[j] {
					continue
				}
				onSeen[j] = true
				faces = append(faces, faceVertex{
					pos: c.pos[j], fresh: false, newIdx: oldToNew[j], onOld: j,
				})
			case geom.Up:
				_ = k // both endpoints discarded; nothing to link
			}
		}
	}

	// 3) Order the new face's boundary by angle around u and resolve each
	// fresh vertex's final index.
	var centroid geom.Vec
	for _, fv := range faces {
		centroid = geom.Add(centroid, fv.pos)
	}
	if len(faces) > 0 {
		centroid = geom.Scale(1/float64(len(faces)), centroid)
	}
	if len(faces) < 3 {
		c.lastErr = ErrDegenerateFace
	}
	order := ringOrder(centroid, u, faceVerticesPos(faces))
	faces = reorderFaces(faces, order)

	for t := range faces {
		if faces[t].fresh {
			faces[t].newIdx = int32(len(newPos))
			newPos = append(newPos, faces[t].pos)
			newNbr = append(newNbr, make([]int32, 0, 3))
			if c.tagging {
				newTag = append(newTag, make([]int64, 0, 3))
				newHasTag = append(newHasTag, make([]bool, 0, 3))
			}
		}
	}

	// 4) Splice each face vertex into the rebuilt ring, linking it to its
	// two new-face neighbors (spec §4.3 step 4).
	m := len(faces)
	for t, fv := range faces {
		prevIdx := faces[(t-1+m)%m].newIdx
		nextIdx := faces[(t+1)%m].newIdx

		if fv.fresh {
			newNbr[fv.downNew][fv.downSlot] = fv.newIdx
			newNbr[fv.newIdx] = append(newNbr[fv.newIdx], fv.downNew, prevIdx, nextIdx)

			if c.tagging {
				oldTag, oldHas := int64(0), false
				if len(c.tag) > 0 {
					oldTag = c.tag[fv.downOld][fv.downSlot]
					oldHas = c.hasTag[fv.downOld][fv.downSlot]
				}
				newTag[fv.newIdx] = append(newTag[fv.newIdx], oldTag, neighborID, neighborID)
				newHasTag[fv.newIdx] = append(newHasTag[fv.newIdx], oldHas, tagged, tagged)
			}
			continue
		}

		// On-plane vertex: drop the slot(s) that pointed at a deleted Up
		// neighbor, then append the two new-face links. Per spec §4.3's
		// note that a vertex's order may grow on a later clip, this can
		// increase its order rather than reuse a single freed slot.
		//
		// Rebuilt from c.nbr[fv.onOld], the original OLD-index-keyed ring,
		// rather than from newNbr[onIdx]: by this point newNbr[onIdx] is a
		// mix of already-remapped NEW indices (non-Up slots, remapped in
		// step 1) and stale OLD indices (Up-bound slots, not yet touched),
		// and side[] is keyed by OLD index only — indexing it with a slot
		// that might already be a NEW index would misclassify it whenever
		// the two index spaces collide numerically.
		onIdx := fv.newIdx
		oldRing := c.nbr[fv.onOld]
		var keptNbr []int32
		var keptTag []int64
		var keptHasTag []bool
		for s, oldV := range oldRing {
			if side[oldV] == geom.Up {
				continue
			}
			keptNbr = append(keptNbr, oldToNew[oldV])
			if c.tagging {
				keptTag = append(keptTag, c.tag[fv.onOld][s])
				keptHasTag = append(keptHasTag, c.hasTag[fv.onOld][s])
			}
		}
		newNbr[onIdx] = append(keptNbr, prevIdx, nextIdx)
		if c.tagging {
			newTag[onIdx] = append(keptTag, neighborID, neighborID)
			newHasTag[onIdx] = append(keptHasTag, tagged, tagged)
		}
	}

	if len(newPos) > c.maxVertices {
		c.lastErr = ErrScratchCeiling
	}
	for _, row := range newNbr {
		if len(row) > c.maxOrder {
			c.lastErr = ErrScratchCeiling
			break
		}
	}

	c.pos = newPos
	c.nbr = newNbr
	c.bak = computeBackLinks(newNbr)
	c.tag = newTag
	c.hasTag = newHasTag
}

func faceVerticesPos(faces []faceVertex) []geom.Vec {
	out := make([]geom.Vec, len(faces))
	for i, fv := range faces {
		out[i] = fv.pos
	}
	return out
}

func reorderFaces(faces []faceVertex, order []int) []faceVertex {
	out := make([]faceVertex, len(order))
	for i, idx := range order {
		out[i] = faces[idx]
	}
	return out
}
