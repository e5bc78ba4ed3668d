// SPDX-License-Identifier: MIT
// Package: voro3d/output
//
// template.go — the %-code output mini-language (spec §6).

package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/voronoicell"
)

// Particle carries the per-particle fields a template may reference, since
// none of them are recoverable from a bare *voronoicell.Cell (spec §6's
// %i, %x/%y/%z/%q, %r, and the global-frame codes %P/%C all need the
// particle's own id, position and optional radius).
type Particle struct {
	ID        int64
	Pos       geom.Vec
	HasRadius bool
	Radius    float64
}

// segment is one piece of a compiled template: either literal text, or a
// %-code with its optional precision prefix.
type segment struct {
	literal   string
	code      byte // 0 for a literal segment
	precision int  // -1: default formatting
}

// Writer is a compiled template, ready to render any number of (Particle,
// Cell) pairs to an explicit io.Writer. Compiling once and rendering many
// times avoids re-parsing the template per cell (spec §9's redesign note
// that output should go through an explicit writer rather than global
// process state).
type Writer struct {
	segments []segment
}

// Compile parses template into a Writer, or returns ErrUnknownCode /
// ErrBadPrecision / ErrDanglingPercent if it contains an unrecognized code,
// a malformed "%.Pd" precision prefix, or a trailing unterminated '%'.
func Compile(template string) (*Writer, error) {
	var segs []segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			lit.WriteRune(runes[i])
			continue
		}
		if i+1 >= len(runes) {
			return nil, ErrDanglingPercent
		}

		precision := -1
		i++
		if runes[i] == '.' {
			start := i + 1
			j := start
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			if j == start || j >= len(runes) || runes[j] != 'd' {
				return nil, ErrBadPrecision
			}
			p, err := strconv.Atoi(string(runes[start:j]))
			if err != nil {
				return nil, ErrBadPrecision
			}
			precision = p
			i = j + 1
			if i >= len(runes) {
				return nil, ErrDanglingPercent
			}
		}

		code := byte(runes[i])
		if !validCode(code) {
			return nil, fmt.Errorf("%w: %%%c", ErrUnknownCode, code)
		}
		flush()
		segs = append(segs, segment{code: code, precision: precision})
	}
	flush()

	return &Writer{segments: segs}, nil
}

func validCode(c byte) bool {
	switch c {
	case 'i', 'x', 'y', 'z', 'q', 'r', 'w', 'p', 'P', 'o', 'm', 'g', 'E',
		'e', 's', 'F', 'A', 'a', 'f', 't', 'l', 'n', 'v', 'c', 'C':
		return true
	}
	return false
}

// Render writes one instantiation of the template for p's cell to w.
// Returns ErrRadiusUnavailable if the template uses %r on a particle with
// HasRadius false.
func (wr *Writer) Render(w io.Writer, p Particle, c *voronoicell.Cell) error {
	for _, seg := range wr.segments {
		if seg.code == 0 {
			if _, err := io.WriteString(w, seg.literal); err != nil {
				return err
			}
			continue
		}
		if err := renderCode(w, seg.code, seg.precision, p, c); err != nil {
			return err
		}
	}
	return nil
}

func renderCode(w io.Writer, code byte, precision int, p Particle, c *voronoicell.Cell) error {
	f := func(x float64) error { return writeFloat(w, x, precision) }

	switch code {
	case 'i':
		return writeInt(w, p.ID)
	case 'x':
		return f(p.Pos.X)
	case 'y':
		return f(p.Pos.Y)
	case 'z':
		return f(p.Pos.Z)
	case 'q':
		if err := f(p.Pos.X); err != nil {
			return err
		}
		if err := writeSpace(w); err != nil {
			return err
		}
		if err := f(p.Pos.Y); err != nil {
			return err
		}
		if err := writeSpace(w); err != nil {
			return err
		}
		return f(p.Pos.Z)
	case 'r':
		if !p.HasRadius {
			return ErrRadiusUnavailable
		}
		return f(p.Radius)
	case 'w':
		return writeInt(w, int64(c.NVertices()))
	case 'p':
		return writeVertexList(w, c, precision, geom.Zero)
	case 'P':
		return writeVertexList(w, c, precision, p.Pos)
	case 'o':
		return writeOrderList(w, c)
	case 'm':
		return f(MaxRadiusSq(c))
	case 'g':
		return writeInt(w, int64(EdgeCount(c)))
	case 'E':
		return f(totalEdgeLength(c))
	case 'e':
		return writeFaceFloats(w, c, precision, FacePerimeter)
	case 's':
		return writeInt(w, int64(len(Faces(c))))
	case 'F':
		return f(SurfaceArea(c))
	case 'A':
		return writeHistogram(w, FaceEdgeHistogram(c))
	case 'a':
		return writeFaceInts(w, c, func(f Face) int64 { return int64(len(f.Loop)) })
	case 'f':
		return writeFaceFloats(w, c, precision, FaceArea)
	case 't':
		return writeFaceLoops(w, c)
	case 'l':
		return writeFaceNormals(w, c, precision)
	case 'n':
		return writeFaceNeighbors(w, c)
	case 'v':
		return f(Volume(c))
	case 'c':
		return writeVec(w, Centroid(c, geom.Zero), precision)
	case 'C':
		return writeVec(w, Centroid(c, p.Pos), precision)
	}
	return fmt.Errorf("%w: %%%c", ErrUnknownCode, code)
}

func writeFloat(w io.Writer, x float64, precision int) error {
	var s string
	if precision < 0 {
		s = strconv.FormatFloat(x, 'g', -1, 64)
	} else {
		s = strconv.FormatFloat(x, 'f', precision, 64)
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeInt(w io.Writer, x int64) error {
	_, err := io.WriteString(w, strconv.FormatInt(x, 10))
	return err
}

func writeSpace(w io.Writer) error {
	_, err := io.WriteString(w, " ")
	return err
}

func writeVec(w io.Writer, v geom.Vec, precision int) error {
	if err := writeFloat(w, v.X, precision); err != nil {
		return err
	}
	if err := writeSpace(w); err != nil {
		return err
	}
	if err := writeFloat(w, v.Y, precision); err != nil {
		return err
	}
	if err := writeSpace(w); err != nil {
		return err
	}
	return writeFloat(w, v.Z, precision)
}

func writeVertexList(w io.Writer, c *voronoicell.Cell, precision int, offset geom.Vec) error {
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	for i := 0; i < c.NVertices(); i++ {
		if i > 0 {
			if _, err := io.WriteString(w, ") ("); err != nil {
				return err
			}
		}
		if err := writeVec(w, geom.Add(c.Vertex(i), offset), precision); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

func writeOrderList(w io.Writer, c *voronoicell.Cell) error {
	for i := 0; i < c.NVertices(); i++ {
		if i > 0 {
			if err := writeSpace(w); err != nil {
				return err
			}
		}
		if err := writeInt(w, int64(c.Order(i))); err != nil {
			return err
		}
	}
	return nil
}

func totalEdgeLength(c *voronoicell.Cell) float64 {
	var total float64
	for i := 0; i < c.NVertices(); i++ {
		for k := 0; k < c.Order(i); k++ {
			j := c.Neighbor(i, k)
			if j <= i {
				continue // each undirected edge counted once, from its lower endpoint
			}
			total += geom.Norm(geom.Sub(c.Vertex(j), c.Vertex(i)))
		}
	}
	return total
}

func writeFaceFloats(w io.Writer, c *voronoicell.Cell, precision int, f func(*voronoicell.Cell, Face) float64) error {
	faces := Faces(c)
	for i, face := range faces {
		if i > 0 {
			if err := writeSpace(w); err != nil {
				return err
			}
		}
		if err := writeFloat(w, f(c, face), precision); err != nil {
			return err
		}
	}
	return nil
}

func writeFaceInts(w io.Writer, c *voronoicell.Cell, f func(Face) int64) error {
	faces := Faces(c)
	for i, face := range faces {
		if i > 0 {
			if err := writeSpace(w); err != nil {
				return err
			}
		}
		if err := writeInt(w, f(face)); err != nil {
			return err
		}
	}
	return nil
}

func writeFaceLoops(w io.Writer, c *voronoicell.Cell) error {
	faces := Faces(c)
	for i, face := range faces {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		for j, idx := range face.Loop {
			if j > 0 {
				if err := writeSpace(w); err != nil {
					return err
				}
			}
			if err := writeInt(w, int64(idx)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ")"); err != nil {
			return err
		}
	}
	return nil
}

func writeFaceNormals(w io.Writer, c *voronoicell.Cell, precision int) error {
	faces := Faces(c)
	for i, face := range faces {
		if i > 0 {
			if _, err := io.WriteString(w, " ("); err != nil {
				return err
			}
		} else if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		if err := writeVec(w, FaceNormal(c, face), precision); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ")"); err != nil {
			return err
		}
	}
	return nil
}

func writeFaceNeighbors(w io.Writer, c *voronoicell.Cell) error {
	faces := Faces(c)
	for i, face := range faces {
		if i > 0 {
			if err := writeSpace(w); err != nil {
				return err
			}
		}
		id := int64(0)
		if face.HasNeighborID {
			id = face.NeighborID
		}
		if err := writeInt(w, id); err != nil {
			return err
		}
	}
	return nil
}

func writeHistogram(w io.Writer, hist map[int]int) error {
	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for i, k := range keys {
		if i > 0 {
			if err := writeSpace(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d,%d", k, hist[k]); err != nil {
			return err
		}
	}
	return nil
}
