// SPDX-License-Identifier: MIT

// Package matrix implements the dynamically sized, row-major float64 matrix
// used to build and apply homogeneous transformations.
//
// The package provides:
//
//   - Matrix: a dense r×c grid with bounds-checked At/Set, row access,
//     cloning and epsilon equality (shape mismatch is simply unequal).
//   - Mul: the general product A×B, summing over A.Cols() terms and
//     rejecting A.Cols() != B.Rows() with ErrDimensionMismatch.
//   - MulTuple: A×t for a 4×4 A, re-tagging the result as a point or a
//     vector from its computed W.
//   - Identity: the shared, read-only 4×4 identity, built once on first use.
//   - Transpose, Submatrix, Minor, Cofactor, Determinant and Inverse for
//     composing and undoing transformations.
//
// Contract violations (bad shapes, bad indices, singular inversion) are
// reported as the sentinel errors in errors.go and should be matched with
// errors.Is. The package never panics on caller input.
//
// Matrices are mutable while being filled and are expected to be treated as
// immutable once composed into a transform chain. A Matrix must not be
// mutated concurrently.
package matrix
