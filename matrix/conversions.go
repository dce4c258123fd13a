// SPDX-License-Identifier: MIT
// Package matrix: conversions to and from golang.org/x/image/math/f64, the
// fixed-size row-major types used by image and graphics code.

package matrix

import "golang.org/x/image/math/f64"

// ToMat4 copies a 4×4 matrix into an f64.Mat4 (m[4*r + c] is row r, column c).
// Returns ErrDimensionMismatch for any other shape.
func (m *Matrix) ToMat4() (f64.Mat4, error) {
	var out f64.Mat4
	if err := ValidateTupleCompatible(m); err != nil {
		return out, matrixErrorf(opToMat4, err)
	}
	copy(out[:], m.data)

	return out, nil
}

// FromMat4 builds a writable 4×4 Matrix from an f64.Mat4.
func FromMat4(a f64.Mat4) *Matrix {
	m := newZero(tupleSize, tupleSize)
	copy(m.data, a[:])

	return m
}

// FromAff3 lifts a 2-D affine transform (f64.Aff3, 2 rows of 3) into a 4×4
// matrix acting on X and Y: the linear part fills the top-left 2×2 block and
// the translation column goes to the W column.
func FromAff3(a f64.Aff3) *Matrix {
	m := newIdentity(tupleSize)
	m.data[0], m.data[1], m.data[3] = a[0], a[1], a[2]
	m.data[4], m.data[5], m.data[7] = a[3], a[4], a[5]

	return m
}
