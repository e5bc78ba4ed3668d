// SPDX-License-Identifier: MIT
// Package: voro3d/voronoicell
//
// errors.go — sentinel errors for the voronoicell package.
//
// Error policy: only sentinel variables are exposed; callers use errors.Is.
// Scratch-growth ceilings are fatal per spec §4.3/§7 ("exceeding either is
// fatal"); ErrScratchCeiling is the value returned (not panicked) so a caller
// can choose how "fatal" is surfaced (process exit, test failure, ...).

package voronoicell

import "errors"

// ErrScratchCeiling indicates a cell's vertex count or a vertex's edge order
// would exceed the configured growth ceiling. Per spec §4.3/§7 this is a
// fatal condition; voro3d surfaces it as an error rather than panicking so
// the decision to abort the process is the caller's.
var ErrScratchCeiling = errors.New("voronoicell: scratch growth ceiling exceeded")

// ErrAnnihilated indicates an operation was attempted on a cell whose
// interior has already been clipped away entirely (spec §4.3 step 3).
var ErrAnnihilated = errors.New("voronoicell: cell has been annihilated")

// ErrDegenerateFace indicates a clip produced fewer than 3 boundary vertices
// for the new face, which cannot happen for a non-degenerate convex cell in
// general position. Surfaced rather than panicking, per spec §7's "fatal
// conditions abort the process" via caller-chosen propagation.
var ErrDegenerateFace = errors.New("voronoicell: clip produced a degenerate face")
