// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels: product, tuple
// transform, transpose, cofactor family, determinant and inverse.
// All kernels validate through validators.go, never mutate their inputs and
// allocate a fresh result.

package matrix

import (
	"fmt"
	"math"

	"github.com/Hobbs96/geometry/approx"
	"github.com/Hobbs96/geometry/tuple"
)

// ZeroSum is the initial value of every accumulated dot product.
const ZeroSum = 0.0

// singularTol is the pivot magnitude below which elimination treats a matrix
// as singular. It is far below approx.Epsilon so that legitimately tiny
// scale factors (e.g. Scaling(1e-3, 1e-3, 1e-3)) remain invertible.
const singularTol = 1e-12

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over the flat buffers, summing over exactly A.Cols() terms.
//
// Behavior highlights:
//   - Rectangular operands are supported; the inner bound is never hard-coded.
//   - Zero A[i,k] entries are skipped; transformation matrices are mostly zeros.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix: new matrix with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(a, b), nil
}

// mulDense is the product kernel shared by Mul and MulTuple.
// Callers guarantee a.c == b.r.
func mulDense(a, b *Matrix) *Matrix {
	aRows, aCols, bCols := a.r, a.c, b.c
	res := newZero(aRows, bCols)

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// MulTuple computes m × t, treating t as the column [x y z w]ᵀ.
// Implementation:
//   - Stage 1: validate m is a non-nil 4×4 matrix.
//   - Stage 2: run the general product kernel against a 4×1 column.
//   - Stage 3: reclassify by value: W ≈ 1 yields tuple.Point, anything else
//     yields tuple.Vector, each built from the computed X, Y, Z.
//
// Behavior highlights:
//   - Transforms preserve the point/vector distinction without a type tag:
//     an affine matrix keeps W=1 for points and W=0 for vectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m is not 4×4).
//
// Complexity:
//   - Time O(16), Space O(4).
func MulTuple(m *Matrix, t tuple.Tuple) (tuple.Tuple, error) {
	if err := ValidateTupleCompatible(m); err != nil {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
	}

	col := &Matrix{r: tupleSize, c: 1, data: []float64{t.X, t.Y, t.Z, t.W}}
	out := mulDense(m, col).data

	if approx.Equal(out[3], tuple.PointW) {
		return tuple.Point(out[0], out[1], out[2]), nil
	}

	return tuple.Vector(out[0], out[1], out[2]), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := newZero(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Submatrix returns a copy of m without the given row and column.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions when m has fewer than 2 rows or columns.
//   - ErrOutOfRange for bad indices.
//
// Complexity: O(r*c).
func Submatrix(m *Matrix, row, col int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opSubmatrix, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidDimensions))
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opSubmatrix, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	res := newZero(m.r-1, m.c-1)
	dst := 0
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[i*m.c+j]
			dst++
		}
	}

	return res, nil
}

// Minor returns the determinant of Submatrix(m, row, col).
// m must be square with at least 2 rows.
func Minor(m *Matrix, row, col int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	sub, err := Submatrix(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return determinant(sub), nil
}

// Cofactor returns Minor(m, row, col) negated when row+col is odd.
func Cofactor(m *Matrix, row, col int) (float64, error) {
	minor, err := Minor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if (row+col)%2 == 1 {
		return -minor, nil
	}

	return minor, nil
}

// Determinant returns det(m) for a square m.
// Implementation:
//   - 1×1 and 2×2 use the closed forms.
//   - Larger orders use Gaussian elimination with partial pivoting on a copy.
//
// Behavior highlights:
//   - A pivot whose magnitude falls below singularTol yields exactly 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m *Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return determinant(m), nil
}

// determinant assumes a validated square matrix.
func determinant(m *Matrix) float64 {
	n := m.r
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	a := make([]float64, len(m.data))
	copy(a, m.data)

	det := 1.0
	var col, i, j, p int
	var pivot, f float64
	for col = 0; col < n; col++ {
		p = pivotRow(a, n, col)
		if math.Abs(a[p*n+col]) < singularTol {
			return 0
		}
		if p != col {
			swapRows(a, n, p, col)
			det = -det
		}
		pivot = a[col*n+col]
		det *= pivot
		for i = col + 1; i < n; i++ {
			f = a[i*n+col] / pivot
			if f == 0 {
				continue
			}
			for j = col; j < n; j++ {
				a[i*n+j] -= f * a[col*n+j]
			}
		}
	}

	return det
}

// IsInvertible reports whether m is square with a non-zero determinant.
func IsInvertible(m *Matrix) bool {
	det, err := Determinant(m)

	return err == nil && det != 0
}

// Inverse returns m⁻¹.
// Implementation:
//   - Stage 1: validate m (not nil, square).
//   - Stage 2: Gauss–Jordan elimination with partial pivoting on [m | I].
//
// Behavior highlights:
//   - Pivoting keeps rotations and permutations (zero leading entries) invertible.
//   - Input m is read-only.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (pivot below singularTol).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	a := make([]float64, len(m.data))
	copy(a, m.data)
	inv := newIdentity(n)

	var col, i, j, p int
	var pivot, f float64
	for col = 0; col < n; col++ {
		p = pivotRow(a, n, col)
		if math.Abs(a[p*n+col]) < singularTol {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if p != col {
			swapRows(a, n, p, col)
			swapRows(inv.data, n, p, col)
		}

		// Normalize the pivot row.
		pivot = a[col*n+col]
		for j = 0; j < n; j++ {
			a[col*n+j] /= pivot
			inv.data[col*n+j] /= pivot
		}

		// Eliminate the pivot column from every other row.
		for i = 0; i < n; i++ {
			if i == col {
				continue
			}
			f = a[i*n+col]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a[i*n+j] -= f * a[col*n+j]
				inv.data[i*n+j] -= f * inv.data[col*n+j]
			}
		}
	}

	return inv, nil
}

// pivotRow returns the row in [col, n) with the largest |a[row, col]|.
func pivotRow(a []float64, n, col int) int {
	best, bestAbs := col, math.Abs(a[col*n+col])
	for i := col + 1; i < n; i++ {
		if v := math.Abs(a[i*n+col]); v > bestAbs {
			best, bestAbs = i, v
		}
	}

	return best
}

// swapRows exchanges rows r1 and r2 of an n-column row-major buffer.
func swapRows(a []float64, n, r1, r2 int) {
	for j := 0; j < n; j++ {
		a[r1*n+j], a[r2*n+j] = a[r2*n+j], a[r1*n+j]
	}
}
