// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/Hobbs96/geometry/approx"
	"github.com/Hobbs96/geometry/matrix"
	"github.com/Hobbs96/geometry/tuple"
)

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) *matrix.Matrix {
	return matrix.MustFromRows([][]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scaling multiplies each axis by its factor. A negative factor reflects.
func Scaling(x, y, z float64) *matrix.Matrix {
	return matrix.MustFromRows([][]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// RotationX rotates by rad radians around the X axis.
func RotationX(rad float64) *matrix.Matrix {
	s, c := math.Sincos(rad)

	return matrix.MustFromRows([][]float64{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	})
}

// RotationY rotates by rad radians around the Y axis.
func RotationY(rad float64) *matrix.Matrix {
	s, c := math.Sincos(rad)

	return matrix.MustFromRows([][]float64{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ rotates by rad radians around the Z axis.
func RotationZ(rad float64) *matrix.Matrix {
	s, c := math.Sincos(rad)

	return matrix.MustFromRows([][]float64{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing moves each coordinate in proportion to the other two:
//
//	x' = x + xy*y + xz*z
//	y' = y + yx*x + yz*z
//	z' = z + zx*x + zy*y
func Shearing(xy, xz, yx, yz, zx, zy float64) *matrix.Matrix {
	return matrix.MustFromRows([][]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// ViewTransform orients the world as seen by an eye at from looking toward
// to, with up giving the approximate upward direction.
//
// Steps:
//  1. forward = normalize(to - from)
//  2. left    = forward × normalize(up)
//  3. trueUp  = left × forward
//  4. result  = orientation × Translation(-from)
//
// The default orientation (from the origin toward -Z, up +Y) yields the
// identity matrix.
//
// Errors:
//   - tuple.ErrNotVector if up is not a vector.
//   - ErrDegenerateView if from ≈ to or up is parallel to forward.
func ViewTransform(from, to, up tuple.Tuple) (*matrix.Matrix, error) {
	dir := to.Sub(from)
	if approx.Zero(dir.Magnitude()) {
		return nil, transformErrorf(opView, ErrDegenerateView)
	}
	forward := dir.Normalize()

	left, err := forward.Cross(up.Normalize())
	if err != nil {
		return nil, transformErrorf(opView, err)
	}
	if approx.Zero(left.Magnitude()) {
		return nil, transformErrorf(opView, ErrDegenerateView)
	}
	trueUp, err := left.Cross(forward)
	if err != nil {
		return nil, transformErrorf(opView, err)
	}

	orientation := matrix.MustFromRows([][]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})

	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
