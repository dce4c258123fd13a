// SPDX-License-Identifier: MIT
package transform_test

import (
	"math"
	"testing"

	"github.com/Hobbs96/geometry/matrix"
	"github.com/Hobbs96/geometry/transform"
	"github.com/Hobbs96/geometry/tuple"
	"github.com/stretchr/testify/require"
)

// requireApply transforms t by m and compares with want.
func requireApply(tb testing.TB, m *matrix.Matrix, t, want tuple.Tuple) {
	tb.Helper()
	got, err := m.MulTuple(t)
	require.NoError(tb, err)
	require.Truef(tb, got.Equal(want), "got %v, want %v", got, want)
}

func TestTranslation(t *testing.T) {
	tr := transform.Translation(5, -3, 2)
	requireApply(t, tr, tuple.Point(-3, 4, 5), tuple.Point(2, 1, 7))
	requireApply(t, tr, tuple.Vector(-3, 4, 5), tuple.Vector(-3, 4, 5))

	inv, err := tr.Inverse()
	require.NoError(t, err)
	requireApply(t, inv, tuple.Point(-3, 4, 5), tuple.Point(-8, 7, 3))
}

func TestScaling(t *testing.T) {
	s := transform.Scaling(2, 3, 4)
	requireApply(t, s, tuple.Point(-4, 6, 8), tuple.Point(-8, 18, 32))
	requireApply(t, s, tuple.Vector(-4, 6, 8), tuple.Vector(-8, 18, 32))

	inv, err := s.Inverse()
	require.NoError(t, err)
	requireApply(t, inv, tuple.Vector(-4, 6, 8), tuple.Vector(-2, 2, 2))

	// Reflection is scaling by a negative value.
	requireApply(t, transform.Scaling(-1, 1, 1), tuple.Point(2, 3, 4), tuple.Point(-2, 3, 4))
}

func TestRotations(t *testing.T) {
	half := math.Sqrt2 / 2

	tests := []struct {
		name       string
		half, full *matrix.Matrix
		in         tuple.Tuple
		wantHalf   tuple.Tuple
		wantFull   tuple.Tuple
	}{
		{
			name: "X", half: transform.RotationX(math.Pi / 4), full: transform.RotationX(math.Pi / 2),
			in:       tuple.Point(0, 1, 0),
			wantHalf: tuple.Point(0, half, half), wantFull: tuple.Point(0, 0, 1),
		},
		{
			name: "Y", half: transform.RotationY(math.Pi / 4), full: transform.RotationY(math.Pi / 2),
			in:       tuple.Point(0, 0, 1),
			wantHalf: tuple.Point(half, 0, half), wantFull: tuple.Point(1, 0, 0),
		},
		{
			name: "Z", half: transform.RotationZ(math.Pi / 4), full: transform.RotationZ(math.Pi / 2),
			in:       tuple.Point(0, 1, 0),
			wantHalf: tuple.Point(-half, half, 0), wantFull: tuple.Point(-1, 0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireApply(t, tt.half, tt.in, tt.wantHalf)
			requireApply(t, tt.full, tt.in, tt.wantFull)
		})
	}

	// The inverse of an X rotation turns the other way.
	inv, err := transform.RotationX(math.Pi / 4).Inverse()
	require.NoError(t, err)
	requireApply(t, inv, tuple.Point(0, 1, 0), tuple.Point(0, half, -half))
}

func TestShearing(t *testing.T) {
	p := tuple.Point(2, 3, 4)
	tests := []struct {
		name string
		m    *matrix.Matrix
		want tuple.Tuple
	}{
		{"x in proportion to y", transform.Shearing(1, 0, 0, 0, 0, 0), tuple.Point(5, 3, 4)},
		{"x in proportion to z", transform.Shearing(0, 1, 0, 0, 0, 0), tuple.Point(6, 3, 4)},
		{"y in proportion to x", transform.Shearing(0, 0, 1, 0, 0, 0), tuple.Point(2, 5, 4)},
		{"y in proportion to z", transform.Shearing(0, 0, 0, 1, 0, 0), tuple.Point(2, 7, 4)},
		{"z in proportion to x", transform.Shearing(0, 0, 0, 0, 1, 0), tuple.Point(2, 3, 6)},
		{"z in proportion to y", transform.Shearing(0, 0, 0, 0, 0, 1), tuple.Point(2, 3, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireApply(t, tt.m, p, tt.want)
		})
	}
}

func TestConstructorsReturnFreshMatrices(t *testing.T) {
	a := transform.Translation(1, 2, 3)
	b := transform.Translation(1, 2, 3)
	require.NotSame(t, a, b)
	require.False(t, a.ReadOnly())
	require.NoError(t, a.Set(0, 3, 9))
	v, _ := b.At(0, 3)
	require.Equal(t, 1.0, v)
}

func TestViewTransform(t *testing.T) {
	t.Run("default orientation", func(t *testing.T) {
		m, err := transform.ViewTransform(tuple.Point(0, 0, 0), tuple.Point(0, 0, -1), tuple.Vector(0, 1, 0))
		require.NoError(t, err)
		require.True(t, matrix.Equal(matrix.Identity(), m))
	})
	t.Run("looking in positive z", func(t *testing.T) {
		m, err := transform.ViewTransform(tuple.Point(0, 0, 0), tuple.Point(0, 0, 1), tuple.Vector(0, 1, 0))
		require.NoError(t, err)
		require.True(t, matrix.Equal(transform.Scaling(-1, 1, -1), m))
	})
	t.Run("moves the world", func(t *testing.T) {
		m, err := transform.ViewTransform(tuple.Point(0, 0, 8), tuple.Point(0, 0, 0), tuple.Vector(0, 1, 0))
		require.NoError(t, err)
		require.True(t, matrix.Equal(transform.Translation(0, 0, -8), m))
	})
	t.Run("arbitrary", func(t *testing.T) {
		m, err := transform.ViewTransform(tuple.Point(1, 3, 2), tuple.Point(4, -2, 8), tuple.Vector(1, 1, 0))
		require.NoError(t, err)
		want := matrix.MustFromRows([][]float64{
			{-0.50709, 0.50709, 0.67612, -2.36643},
			{0.76772, 0.60609, 0.12122, -2.82843},
			{-0.35857, 0.59761, -0.71714, 0.00000},
			{0.00000, 0.00000, 0.00000, 1.00000},
		})
		require.True(t, matrix.Equal(want, m), "got\n%v", m)
	})
	t.Run("degenerate", func(t *testing.T) {
		_, err := transform.ViewTransform(tuple.Point(1, 1, 1), tuple.Point(1, 1, 1), tuple.Vector(0, 1, 0))
		require.ErrorIs(t, err, transform.ErrDegenerateView)

		_, err = transform.ViewTransform(tuple.Point(0, 0, 0), tuple.Point(0, 5, 0), tuple.Vector(0, 1, 0))
		require.ErrorIs(t, err, transform.ErrDegenerateView)
	})
	t.Run("up must be a vector", func(t *testing.T) {
		_, err := transform.ViewTransform(tuple.Point(0, 0, 0), tuple.Point(0, 0, -1), tuple.Point(0, 1, 0))
		require.ErrorIs(t, err, tuple.ErrNotVector)
	})
}
