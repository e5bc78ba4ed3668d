// SPDX-License-Identifier: MIT
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or direction in 3-space. It is a type alias for gonum's
// r3.Vec so voro3d never has to round-trip between an in-house triple and
// the ecosystem's vector type.
type Vec = r3.Vec

// Zero is the additive identity.
var Zero = Vec{X: 0, Y: 0, Z: 0}

// Add returns a+b.
func Add(a, b Vec) Vec { return r3.Add(a, b) }

// Sub returns a-b.
func Sub(a, b Vec) Vec { return r3.Sub(a, b) }

// Scale returns s*v.
func Scale(s float64, v Vec) Vec { return r3.Scale(s, v) }

// Dot returns the scalar product a·b.
func Dot(a, b Vec) float64 { return r3.Dot(a, b) }

// Cross returns a×b.
func Cross(a, b Vec) Vec { return r3.Cross(a, b) }

// Norm2 returns the squared Euclidean length of v.
//
// Complexity: O(1). Used on every search-shell termination check (spec §4.4),
// so it deliberately avoids the sqrt that Norm would need.
func Norm2(v Vec) float64 { return r3.Dot(v, v) }

// Norm returns the Euclidean length of v.
func Norm(v Vec) float64 { return math.Sqrt(Norm2(v)) }

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Vec, t float64) Vec { return Add(a, Scale(t, Sub(b, a))) }

// OrthonormalBasis returns two unit vectors (e1, e2) spanning the plane
// perpendicular to n, chosen so that (n̂, e1, e2) is right-handed. n need not
// be normalized; it must be non-zero.
//
// Used to build a consistent angular ordering of points around an axis: both
// voronoicell's vertex-ring construction and its new-face assembly rely on
// it to turn "these points lie in a plane" into "here is their cyclic order".
//
// Complexity: O(1).
func OrthonormalBasis(n Vec) (e1, e2 Vec) {
	nn := Norm(n)
	nHat := Scale(1/nn, n)

	// Pick the standard basis vector least aligned with n to avoid a
	// near-parallel cross product.
	var a Vec
	switch {
	case math.Abs(nHat.X) <= math.Abs(nHat.Y) && math.Abs(nHat.X) <= math.Abs(nHat.Z):
		a = Vec{X: 1}
	case math.Abs(nHat.Y) <= math.Abs(nHat.Z):
		a = Vec{Y: 1}
	default:
		a = Vec{Z: 1}
	}

	e1raw := Cross(nHat, a)
	e1 = Scale(1/Norm(e1raw), e1raw)
	e2 = Cross(nHat, e1)
	return e1, e2
}

// Angle returns the angle of point p (relative to center) in the plane
// spanned by (e1, e2), in (-π, π]. Used to sort vertices into a cyclic ring.
func Angle(center, p, e1, e2 Vec) float64 {
	d := Sub(p, center)
	return math.Atan2(Dot(d, e2), Dot(d, e1))
}
