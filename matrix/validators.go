// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/literal checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// tupleSize is the number of homogeneous components in a tuple.
const tupleSize = 4

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
// Returns ErrNilMatrix or ErrNonSquare.
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateTupleCompatible ensures m is a non-nil 4×4 matrix, the only shape
// that maps a homogeneous tuple onto another tuple.
func ValidateTupleCompatible(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != tupleSize || m.c != tupleSize {
		return validatorErrorf("ValidateTupleCompatible",
			fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateRectLiteral ensures rows is non-empty, its first row is non-empty,
// and all rows share that length.
// Returns ErrInvalidDimensions or ErrNonRectangular.
func ValidateRectLiteral(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRectLiteral", ErrInvalidDimensions)
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return validatorErrorf("ValidateRectLiteral",
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), w, ErrNonRectangular))
		}
	}

	return nil
}

// ValidateSquareLiteral ensures rows is non-empty and every row has exactly
// len(rows) values.
// Returns ErrInvalidDimensions or ErrNonSquare.
func ValidateSquareLiteral(rows [][]float64) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateSquareLiteral", ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != n {
			return validatorErrorf("ValidateSquareLiteral",
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), n, ErrNonSquare))
		}
	}

	return nil
}
