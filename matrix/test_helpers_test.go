// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/Hobbs96/geometry/approx"
	"github.com/Hobbs96/geometry/matrix"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// approxOpt compares float64 values with the module epsilon.
var approxOpt = cmpopts.EquateApprox(0, approx.Epsilon)

// mustRows builds a square matrix from a literal or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustData builds a rectangular matrix from a literal or fails the test.
func mustData(tb testing.TB, rows [][]float64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromData(rows)
	require.NoError(tb, err)

	return m
}

// mustMul multiplies or fails the test.
func mustMul(tb testing.TB, a, b *matrix.Matrix) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.Mul(a, b)
	require.NoError(tb, err)

	return m
}

// requireMatrix asserts approximate equality and prints a cmp diff on failure.
func requireMatrix(tb testing.TB, want, got *matrix.Matrix) {
	tb.Helper()
	if !matrix.Equal(want, got) {
		tb.Fatalf("matrix mismatch (-want +got):\n%s", cmp.Diff(want.ToRows(), got.ToRows(), approxOpt))
	}
}

// randomMatrix fills an r×c matrix with values in [-10, 10) from a seeded source.
func randomMatrix(tb testing.TB, r *rand.Rand, rows, cols int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows, cols)
	require.NoError(tb, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(tb, m.Set(i, j, r.Float64()*20-10))
		}
	}

	return m
}
