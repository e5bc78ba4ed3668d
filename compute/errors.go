// SPDX-License-Identifier: MIT
// Package: voro3d/compute

package compute

import "errors"

// ErrNoParticle indicates FindVoronoiCell found no particle in range of a
// query point (an empty, not a failed, result).
var ErrNoParticle = errors.New("compute: no particle found for query point")

// ErrOutsideDomain indicates a target particle's own position (Build) or a
// query point (FindVoronoiCell) falls outside the grid's non-periodic
// domain, so it cannot be searched.
var ErrOutsideDomain = errors.New("compute: target position outside non-periodic domain")
