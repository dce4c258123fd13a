// SPDX-License-Identifier: MIT

// Package tuple implements the homogeneous 4-component tuple shared by points
// and vectors.
//
// A Tuple is a point when W ≈ 1 and a vector when W ≈ 0. The distinction
// lives in the W value only: there is one flat type so that matrix transforms
// apply to both uniformly. Constructors and operators keep W consistent as
// long as callers use the valid combinations documented on each method.
package tuple

import (
	"fmt"
	"math"

	"github.com/Hobbs96/geometry/approx"
	"golang.org/x/image/math/f64"
)

// Homogeneous W values of the two tuple kinds.
const (
	PointW  = 1.0
	VectorW = 0.0
)

// Tuple is an immutable homogeneous coordinate. Methods never mutate the receiver.
type Tuple struct {
	X, Y, Z, W float64
}

// Point returns the point (x, y, z) with W = 1.
func Point(x, y, z float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: PointW} }

// Vector returns the vector (x, y, z) with W = 0.
func Vector(x, y, z float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: VectorW} }

// New returns a raw tuple. Prefer Point or Vector; New exists for callers that
// compute W themselves (e.g. matrix products).
func New(x, y, z, w float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: w} }

// IsPoint reports whether W ≈ 1.
func (t Tuple) IsPoint() bool { return approx.Equal(t.W, PointW) }

// IsVector reports whether W ≈ 0.
func (t Tuple) IsVector() bool { return approx.Equal(t.W, VectorW) }

// Add returns t + o component-wise, W included.
//
//	point  + vector → point
//	vector + vector → vector
//	point  + point  → W = 2, meaningless; callers must not do this.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns t - o component-wise, W included.
//
//	point  - point  → vector from o to t
//	point  - vector → point
//	vector - vector → vector
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Negate flips every component, W included. Only meaningful for vectors.
func (t Tuple) Negate() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W}
}

// Scale multiplies every component, W included, by k. Only meaningful for
// vectors: scaling a point moves its W away from 1.
func (t Tuple) Scale(k float64) Tuple {
	return Tuple{X: t.X * k, Y: t.Y * k, Z: t.Z * k, W: t.W * k}
}

// Div divides every component, W included, by k. Same caller contract as Scale.
func (t Tuple) Div(k float64) Tuple {
	return Tuple{X: t.X / k, Y: t.Y / k, Z: t.Z / k, W: t.W / k}
}

// Magnitude returns the Euclidean length of (X, Y, Z). W is ignored.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns t divided by its magnitude (all four components).
// The input must be a vector; the zero vector is returned unchanged.
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if approx.Zero(m) {
		return t
	}

	return t.Div(m)
}

// Dot returns the 4-component dot product t·o.
// Both operands must be vectors; otherwise ErrNotVector is returned.
func (t Tuple) Dot(o Tuple) (float64, error) {
	if err := validateVectors(opDot, t, o); err != nil {
		return 0, err
	}

	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W, nil
}

// Cross returns the 3-D cross product t×o with W copied from t.
// Both operands must be vectors; otherwise ErrNotVector is returned.
// Cross is anti-commutative: o×t == -(t×o).
func (t Tuple) Cross(o Tuple) (Tuple, error) {
	if err := validateVectors(opCross, t, o); err != nil {
		return Tuple{}, err
	}

	return Tuple{
		X: t.Y*o.Z - t.Z*o.Y,
		Y: t.Z*o.X - t.X*o.Z,
		Z: t.X*o.Y - t.Y*o.X,
		W: t.W,
	}, nil
}

// Reflect returns t reflected around normal: t - normal*2*(t·normal).
func (t Tuple) Reflect(normal Tuple) (Tuple, error) {
	d, err := t.Dot(normal)
	if err != nil {
		return Tuple{}, tupleErrorf(opReflect, err)
	}

	return t.Sub(normal.Scale(2 * d)), nil
}

// Equal reports whether all four components are approximately equal.
func (t Tuple) Equal(o Tuple) bool {
	return approx.Equal(t.X, o.X) &&
		approx.Equal(t.Y, o.Y) &&
		approx.Equal(t.Z, o.Z) &&
		approx.Equal(t.W, o.W)
}

// String renders the tuple tagged with its kind.
func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
	}
}

// Vec4 returns the tuple as an x/image f64.Vec4 in X, Y, Z, W order.
func (t Tuple) Vec4() f64.Vec4 { return f64.Vec4{t.X, t.Y, t.Z, t.W} }

// FromVec4 builds a Tuple from an f64.Vec4 in X, Y, Z, W order.
func FromVec4(v f64.Vec4) Tuple { return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]} }
