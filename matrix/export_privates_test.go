// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose unexported helpers to matrix_test only; the file is compiled
//     into the test binary and never into production builds.

var (
	// ExportedSingularTol exposes the elimination pivot tolerance.
	ExportedSingularTol = singularTol
	// ExportedPivotRow exposes the partial-pivot selector.
	ExportedPivotRow = pivotRow
)

// ExportedData returns the backing buffer of m (shared, not copied).
func ExportedData(m *Matrix) []float64 { return m.data }
