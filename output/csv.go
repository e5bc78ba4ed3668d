// SPDX-License-Identifier: MIT
// Package: voro3d/output
//
// csv.go — supplemented bulk CSV exporter (spec.md's %-code table has no
// single-file-of-many-cells rendition; grounded on pthm-soup/telemetry's
// gocsv header/no-header writer pattern).

package output

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/voro3d/voronoicell"
)

// CellRecord is one row of a bulk CSV export: the summary statistics of a
// single completed cell, keyed by its owning particle.
type CellRecord struct {
	ParticleID  int64   `csv:"particle_id"`
	X           float64 `csv:"x"`
	Y           float64 `csv:"y"`
	Z           float64 `csv:"z"`
	Volume      float64 `csv:"volume"`
	SurfaceArea float64 `csv:"surface_area"`
	Faces       int     `csv:"faces"`
	Vertices    int     `csv:"vertices"`
	CentroidX   float64 `csv:"centroid_x"`
	CentroidY   float64 `csv:"centroid_y"`
	CentroidZ   float64 `csv:"centroid_z"`
}

// NewCellRecord summarizes c into a CellRecord, with the centroid translated
// into the global frame via p.Pos.
func NewCellRecord(p Particle, c *voronoicell.Cell) CellRecord {
	centroid := Centroid(c, p.Pos)
	return CellRecord{
		ParticleID:  p.ID,
		X:           p.Pos.X,
		Y:           p.Pos.Y,
		Z:           p.Pos.Z,
		Volume:      Volume(c),
		SurfaceArea: SurfaceArea(c),
		Faces:       len(Faces(c)),
		Vertices:    c.NVertices(),
		CentroidX:   centroid.X,
		CentroidY:   centroid.Y,
		CentroidZ:   centroid.Z,
	}
}

// CSVWriter accumulates CellRecords and flushes them to an io.Writer as a
// header plus one row per cell, mirroring the single-header-then-rows
// discipline pthm-soup's telemetry writer uses for its own CSV streams.
type CSVWriter struct {
	w             io.Writer
	headerWritten bool
}

// NewCSVWriter returns a CSVWriter that appends to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// WriteCell appends one record's worth of CSV output, writing the header row
// on the first call only.
func (cw *CSVWriter) WriteCell(p Particle, c *voronoicell.Cell) error {
	records := []CellRecord{NewCellRecord(p, c)}

	if !cw.headerWritten {
		if err := gocsv.Marshal(records, cw.w); err != nil {
			return fmt.Errorf("output: writing csv header+row: %w", err)
		}
		cw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, cw.w); err != nil {
		return fmt.Errorf("output: writing csv row: %w", err)
	}
	return nil
}

// WriteAll writes one CSV row per (particle, cell) pair in order.
func (cw *CSVWriter) WriteAll(particles []Particle, cells []*voronoicell.Cell) error {
	if len(particles) != len(cells) {
		return fmt.Errorf("output: %d particles but %d cells", len(particles), len(cells))
	}
	for i := range particles {
		if err := cw.WriteCell(particles[i], cells[i]); err != nil {
			return err
		}
	}
	return nil
}
