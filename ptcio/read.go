// SPDX-License-Identifier: MIT
// Package: voro3d/ptcio
//
// read.go — streaming whitespace-tokenized particle record parsing.

package ptcio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/voro3d/container"
)

// ErrBadRecord indicates a line had the wrong number of whitespace-separated
// fields, or a field failed to parse as the expected numeric type.
var ErrBadRecord = errors.New("ptcio: malformed particle record")

// ReadAll parses every non-blank line of r as a particle record and returns
// them in file order. radical selects whether a trailing radius field ("id x
// y z r") is required; non-radical records are "id x y z".
//
// No library in the retrieved pack offers a bare-whitespace (non-CSV,
// non-YAML) record format, so this reads directly off bufio.Scanner —
// the same token-at-a-time discipline the teacher's own parsers use for
// hand-rolled formats, just with a stdlib scanner instead of a rune cursor.
//
// Complexity: O(total input bytes).
func ReadAll(r io.Reader, radical bool) ([]container.Particle, error) {
	var out []container.Particle
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := parseRecord(line, radical)
		if err != nil {
			return nil, fmt.Errorf("ptcio: line %d: %w", lineNo, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ptcio: scanning input: %w", err)
	}
	return out, nil
}

func parseRecord(line string, radical bool) (container.Particle, error) {
	fields := strings.Fields(line)
	wantFields := 4
	if radical {
		wantFields = 5
	}
	if len(fields) != wantFields {
		return container.Particle{}, ErrBadRecord
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return container.Particle{}, fmt.Errorf("%w: id %q", ErrBadRecord, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return container.Particle{}, fmt.Errorf("%w: x %q", ErrBadRecord, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return container.Particle{}, fmt.Errorf("%w: y %q", ErrBadRecord, fields[2])
	}
	z, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return container.Particle{}, fmt.Errorf("%w: z %q", ErrBadRecord, fields[3])
	}

	p := container.Particle{ID: id, X: x, Y: y, Z: z}
	if radical {
		r, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return container.Particle{}, fmt.Errorf("%w: r %q", ErrBadRecord, fields[4])
		}
		p.R = r
	}
	return p, nil
}
