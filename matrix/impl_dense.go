// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed so results are reproducible bit for bit.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Equal: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/Hobbs96/geometry/approx"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - readOnly marks the shared identity; writes are rejected with ErrReadOnly.
type Matrix struct {
	r, c     int       // row and column counts
	data     []float64 // contiguous row-major storage (len == r*c)
	readOnly bool      // set only on the shared identity
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, matrixErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return newZero(rows, cols), nil
}

// newZero allocates an r×c zero matrix without validation.
// Callers guarantee rows>0 && cols>0.
func newZero(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a square matrix from literal row data.
// MAIN DESCRIPTION:
//   - The literal form used for transformation constants and tests.
//
// Implementation:
//   - Stage 1: ValidateSquareLiteral (non-empty, every row as long as the outer slice).
//   - Stage 2: copy rows into a fresh flat buffer; the input is not retained.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty.
//   - ErrNonSquare when any row's length differs from len(rows).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func FromRows(rows [][]float64) (*Matrix, error) {
	if err := ValidateSquareLiteral(rows); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return fromLiteral(rows), nil
}

// FromData builds an r×c matrix from rectangular literal row data.
// Unlike FromRows it accepts non-square input.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrNonRectangular when row lengths differ.
func FromData(rows [][]float64) (*Matrix, error) {
	if err := ValidateRectLiteral(rows); err != nil {
		return nil, matrixErrorf(opFromData, err)
	}

	return fromLiteral(rows), nil
}

// fromLiteral copies validated rectangular rows into a new Matrix.
func fromLiteral(rows [][]float64) *Matrix {
	m := newZero(len(rows), len(rows[0]))
	for i, row := range rows {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m
}

// MustFromRows is FromRows for literals whose shape is fixed at compile time,
// such as transformation constants. It panics on a malformed literal.
func MustFromRows(rows [][]float64) *Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// ReadOnly reports whether writes to m are rejected (true only for Identity()).
func (m *Matrix) ReadOnly() bool { return m.readOnly }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange sentinel; public methods wrap it with coordinates.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixIndexErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write used while a matrix is being filled.
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrReadOnly when m is the shared identity.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixIndexErrorf(ctxSet, row, col, err)
	}
	if m.readOnly {
		return matrixIndexErrorf(ctxSet, row, col, ErrReadOnly)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixIndexErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow assigns a whole row. vals must have exactly Cols() elements.
//
// Errors:
//   - ErrOutOfRange for a bad row index.
//   - ErrDimensionMismatch when len(vals) != Cols().
//   - ErrReadOnly when m is the shared identity.
func (m *Matrix) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return matrixIndexErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return matrixIndexErrorf(ctxSetRow, i, len(vals), ErrDimensionMismatch)
	}
	if m.readOnly {
		return matrixIndexErrorf(ctxSetRow, i, 0, ErrReadOnly)
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Clone returns a deep, writable copy. Cloning Identity() yields a mutable identity.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// ToRows returns the contents as a fresh [][]float64 (row-major).
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether a and b have the same shape and approximately equal
// elements. Shape mismatch is never an error, just false. Two nil matrices are equal.
// Complexity: O(r*c).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !approx.Equal(a.data[k], b.data[k]) {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated values, for diagnostics.
//
//	[1, 2]
//	[3, 4]
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
