// SPDX-License-Identifier: MIT
// Package matrix — method facades.
//
// Purpose:
//   - Offer receiver-style spellings (a.Mul(b), m.MulTuple(t)) for chaining.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.
//
// Argument order follows the mathematics: a.Mul(b) is a × b, never b × a.

package matrix

import "github.com/Hobbs96/geometry/tuple"

// Mul returns m × b. See the package-level Mul.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) { return Mul(m, b) }

// MulTuple returns m × t. See the package-level MulTuple.
func (m *Matrix) MulTuple(t tuple.Tuple) (tuple.Tuple, error) { return MulTuple(m, t) }

// Equal reports whether m and b are equal within epsilon. See the package-level Equal.
func (m *Matrix) Equal(b *Matrix) bool { return Equal(m, b) }

// Transpose returns mᵀ. See the package-level Transpose.
func (m *Matrix) Transpose() (*Matrix, error) { return Transpose(m) }

// Determinant returns det(m). See the package-level Determinant.
func (m *Matrix) Determinant() (float64, error) { return Determinant(m) }

// Inverse returns m⁻¹. See the package-level Inverse.
func (m *Matrix) Inverse() (*Matrix, error) { return Inverse(m) }

// MulAll folds a left-to-right product ms[0] × ms[1] × … × ms[n-1].
// Returns ErrInvalidDimensions for an empty list and the first Mul error otherwise.
func MulAll(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	acc := ms[0]
	var err error
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, err
		}
	}
	if acc == ms[0] {
		return acc.Clone(), nil
	}

	return acc, nil
}
