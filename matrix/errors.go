// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag via matrixErrorf) and tests match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it is easy to grep for.
// Wrapping adds the operation tag in front: "Mul: matrix: dimension mismatch".

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that a literal has no rows.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows, or MulTuple on a non-4×4 matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonRectangular signals literal rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: rows have differing lengths")

	// ErrSingular is returned when inverting a matrix whose determinant is zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrReadOnly is returned when writing into the shared identity matrix.
	ErrReadOnly = errors.New("matrix: matrix is read-only")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opFromData  = "FromData"
	opMul       = "Mul"
	opMulTuple  = "MulTuple"
	opTranspose = "Transpose"
	opSubmatrix = "Submatrix"
	opMinor     = "Minor"
	opCofactor  = "Cofactor"
	opDet       = "Determinant"
	opInverse   = "Inverse"
	opToMat4    = "ToMat4"
)

// Method tags used by matrixIndexErrorf.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// matrixIndexErrorf wraps err with the method name and the offending coordinates.
func matrixIndexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
