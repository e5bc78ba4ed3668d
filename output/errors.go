// SPDX-License-Identifier: MIT
// Package: voro3d/output
//
// errors.go — sentinel errors for template parsing and rendering.

package output

import "errors"

// ErrUnknownCode indicates a template contains a %-code this package does
// not recognize (spec §6's table).
var ErrUnknownCode = errors.New("output: unknown template code")

// ErrBadPrecision indicates a malformed "%.Pd" precision prefix.
var ErrBadPrecision = errors.New("output: malformed precision prefix")

// ErrDanglingPercent indicates a template ends in an unterminated '%'.
var ErrDanglingPercent = errors.New("output: dangling '%' at end of template")

// ErrRadiusUnavailable indicates %r was requested on a particle with no
// radius (non-radical container).
var ErrRadiusUnavailable = errors.New("output: %r requested without a particle radius")
