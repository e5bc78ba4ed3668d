// SPDX-License-Identifier: MIT
// Package: voro3d/output
//
// stats.go — face walking and the statistics derivable from it (spec §4.6).

package output

import (
	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/voronoicell"
)

// Face is one planar polygon of a completed cell.
type Face struct {
	// Loop lists the face's vertex indices in the cell's orientation
	// convention (spec §3).
	Loop []int
	// NeighborID is the identifier of the particle (or negative wall id)
	// whose clipping plane created this face, if tagging was enabled.
	NeighborID    int64
	HasNeighborID bool
}

// Faces walks c's edge graph into one Face per polygon, each reported
// exactly once, using edge-visited marks to avoid duplicates (spec §4.6).
//
// Complexity: O(edges) = O(sum of vertex orders).
func Faces(c *voronoicell.Cell) []Face {
	n := c.NVertices()
	if n == 0 {
		return nil
	}

	visited := make([][]bool, n)
	for i := 0; i < n; i++ {
		visited[i] = make([]bool, c.Order(i))
	}

	var faces []Face
	for i := 0; i < n; i++ {
		for k := 0; k < c.Order(i); k++ {
			if visited[i][k] {
				continue
			}

			startI, startK := i, k
			ci, ck := i, k
			var loop []int
			tagID, hasTag := c.EdgeTag(ci, ck)

			for {
				visited[ci][ck] = true
				loop = append(loop, ci)

				j := c.Neighbor(ci, ck)
				s := c.BackLink(ci, ck)
				nextSlot := (s - 1 + c.Order(j)) % c.Order(j)
				ci, ck = j, nextSlot

				if ci == startI && ck == startK {
					break
				}
			}

			faces = append(faces, Face{Loop: loop, NeighborID: tagID, HasNeighborID: hasTag})
		}
	}
	return faces
}

// Volume returns the cell's volume: the sum over faces of the signed
// tetrahedral volume with apex at the local-frame origin (spec §4.6).
//
// Complexity: O(vertices across all faces).
func Volume(c *voronoicell.Cell) float64 {
	var vol float64
	for _, f := range Faces(c) {
		pts := vertexPositions(c, f.Loop)
		for k := 1; k < len(pts)-1; k++ {
			vol += geom.Dot(pts[0], geom.Cross(pts[k], pts[k+1]))
		}
	}
	return vol / 6
}

// Centroid returns the volume-weighted centroid in the cell's local frame.
// If origin is non-zero, the result is translated into that global frame
// (spec §4.6's "local or global frame").
//
// Complexity: O(vertices across all faces).
func Centroid(c *voronoicell.Cell, origin geom.Vec) geom.Vec {
	var moment geom.Vec
	var vol float64

	for _, f := range Faces(c) {
		pts := vertexPositions(c, f.Loop)
		for k := 1; k < len(pts)-1; k++ {
			tetVol := geom.Dot(pts[0], geom.Cross(pts[k], pts[k+1])) / 6
			tetCentroid := geom.Scale(1.0/4.0, geom.Add(geom.Add(pts[0], pts[k]), pts[k+1]))
			moment = geom.Add(moment, geom.Scale(tetVol, tetCentroid))
			vol += tetVol
		}
	}
	if vol == 0 {
		return origin
	}
	return geom.Add(origin, geom.Scale(1/vol, moment))
}

// FaceArea returns a face's planar area via the standard 3D polygon formula
// (half the magnitude of the sum of consecutive edge cross products).
func FaceArea(c *voronoicell.Cell, f Face) float64 {
	return geom.Norm(faceAreaVector(c, f)) / 2
}

// FaceNormal returns a face's outward unit normal.
func FaceNormal(c *voronoicell.Cell, f Face) geom.Vec {
	v := faceAreaVector(c, f)
	norm := geom.Norm(v)
	if norm == 0 {
		return geom.Zero
	}
	return geom.Scale(1/norm, v)
}

func faceAreaVector(c *voronoicell.Cell, f Face) geom.Vec {
	pts := vertexPositions(c, f.Loop)
	var sum geom.Vec
	for k := 0; k < len(pts); k++ {
		p, q := pts[k], pts[(k+1)%len(pts)]
		sum = geom.Add(sum, geom.Cross(p, q))
	}
	return sum
}

// FacePerimeter returns the sum of edge lengths bounding a face.
func FacePerimeter(c *voronoicell.Cell, f Face) float64 {
	pts := vertexPositions(c, f.Loop)
	var perim float64
	for k := 0; k < len(pts); k++ {
		p, q := pts[k], pts[(k+1)%len(pts)]
		perim += geom.Norm(geom.Sub(q, p))
	}
	return perim
}

// SurfaceArea returns the sum of all face areas.
func SurfaceArea(c *voronoicell.Cell) float64 {
	var total float64
	for _, f := range Faces(c) {
		total += FaceArea(c, f)
	}
	return total
}

// EdgeCount returns the number of distinct edges (each shared by two
// half-edges, hence the division by two).
func EdgeCount(c *voronoicell.Cell) int {
	var total int
	for i := 0; i < c.NVertices(); i++ {
		total += c.Order(i)
	}
	return total / 2
}

// MaxRadiusSq returns the squared radius of the smallest origin-centered
// sphere enclosing every vertex, in the local frame (spec §6's %m).
func MaxRadiusSq(c *voronoicell.Cell) float64 { return c.MaxRadiusSq() }

// VertexOrderHistogram counts vertices by their degree.
func VertexOrderHistogram(c *voronoicell.Cell) map[int]int {
	hist := make(map[int]int)
	for i := 0; i < c.NVertices(); i++ {
		hist[c.Order(i)]++
	}
	return hist
}

// FaceEdgeHistogram counts faces by their edge (= vertex) count (spec §6's
// %A, "frequency histogram of face edge counts").
func FaceEdgeHistogram(c *voronoicell.Cell) map[int]int {
	hist := make(map[int]int)
	for _, f := range Faces(c) {
		hist[len(f.Loop)]++
	}
	return hist
}

func vertexPositions(c *voronoicell.Cell, loop []int) []geom.Vec {
	pts := make([]geom.Vec, len(loop))
	for i, idx := range loop {
		pts[i] = c.Vertex(idx)
	}
	return pts
}
