// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/Hobbs96/geometry/matrix"
	"github.com/stretchr/testify/require"
)

// zeros builds an r×c zero matrix for shape-only checks.
func zeros(tb testing.TB, r, c int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(r, c)
	require.NoError(tb, err)

	return m
}

// TestValidateMulCompatible covers nil inputs, matching and mismatched inner dimensions.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"2x3 by 3x5", zeros(t, 2, 3), zeros(t, 3, 5), nil},
		{"2x3 by 2x3", zeros(t, 2, 3), zeros(t, 2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateMulCompatible(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil, square and rectangular inputs.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(zeros(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(zeros(t, 3, 2)), matrix.ErrNonSquare)
}

// TestValidateTupleCompatible accepts only 4×4.
func TestValidateTupleCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateTupleCompatible(matrix.Identity()))
	require.ErrorIs(t, matrix.ValidateTupleCompatible(zeros(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateTupleCompatible(zeros(t, 4, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateTupleCompatible(nil), matrix.ErrNilMatrix)
}

// TestValidateLiterals checks the literal validators and their messages.
func TestValidateLiterals(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateRectLiteral([][]float64{{1, 2, 3}}))
	err := matrix.ValidateRectLiteral([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
	require.EqualError(t, err, "ValidateRectLiteral: row 1 has 1 values, want 2: matrix: rows have differing lengths")

	require.NoError(t, matrix.ValidateSquareLiteral([][]float64{{1}}))
	require.ErrorIs(t, matrix.ValidateSquareLiteral(nil), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateSquareLiteral([][]float64{{1, 2}}), matrix.ErrNonSquare)
}
