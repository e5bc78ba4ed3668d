// SPDX-License-Identifier: MIT
// Package: voro3d/container
//
// errors.go — sentinel errors for grid configuration and insertion.

package container

import "errors"

// Sentinel errors for container construction and mutation.
var (
	// ErrEmptyDomain indicates a Box axis interval is not strictly increasing.
	ErrEmptyDomain = errors.New("container: domain axis must satisfy lo < hi")

	// ErrBadGridDims indicates a non-positive grid dimension was requested.
	ErrBadGridDims = errors.New("container: grid dimensions must be positive")

	// ErrBadCapacityCeiling indicates a non-positive block capacity ceiling.
	ErrBadCapacityCeiling = errors.New("container: block capacity ceiling must be positive")

	// ErrCapacityExceeded indicates a block's capacity ceiling was exceeded,
	// either by Put or during overflow reconciliation (spec §4.1, "exceeding
	// a configured ceiling raises a fatal condition").
	ErrCapacityExceeded = errors.New("container: block capacity ceiling exceeded")

	// ErrOutsideDomain indicates put was asked to place a point outside a
	// non-periodic axis range; put fails silently by design (spec §4.1), so
	// neither Put nor PutParallel returns this error: they report
	// inserted=false and log the dropped point.
	ErrOutsideDomain = errors.New("container: point outside non-periodic domain axis")

	// ErrRadiusRequired indicates a radius-bearing operation was invoked on
	// a non-radical Grid.
	ErrRadiusRequired = errors.New("container: grid was not configured for particle radii")
)
