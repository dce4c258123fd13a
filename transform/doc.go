// SPDX-License-Identifier: MIT

// Package transform builds the 4×4 affine matrices used to move, resize and
// orient points and vectors in homogeneous coordinates.
//
// Every constructor returns a fresh, writable *matrix.Matrix in row-major
// layout that acts on column tuples:
//
//	p' = M × p
//
// Rotations are right-handed and take radians. Composition follows the
// mathematics: the transform applied first sits rightmost in the product.
// Chain hides that ordering by recording transforms in the order they are
// applied:
//
//	m, err := transform.Chain().
//		RotateX(math.Pi / 2).
//		Scale(5, 5, 5).
//		Translate(10, 5, 7).
//		Matrix() // Translation × Scaling × RotationX
//
// Translation affects points only: a vector (W=0) ignores the last column.
package transform
