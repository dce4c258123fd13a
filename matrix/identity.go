// SPDX-License-Identifier: MIT
package matrix

import "sync"

// identity4 builds the shared 4×4 identity exactly once, on first use.
// The result is marked read-only and is never mutated afterwards, so
// concurrent readers need no locking.
var identity4 = sync.OnceValue(func() *Matrix {
	m := newIdentity(tupleSize)
	m.readOnly = true

	return m
})

// Identity returns the process-wide 4×4 identity matrix.
//
// The same *Matrix is returned on every call. It is read-only: Set and SetRow
// return ErrReadOnly. Use Clone (or NewIdentity) to obtain a writable copy.
// For multiplication it is an ordinary matrix: Mul(a, Identity()) equals a
// for any 4×4 a.
func Identity() *Matrix { return identity4() }

// NewIdentity returns a fresh, writable n×n identity.
// Returns ErrInvalidDimensions when n < 1.
func NewIdentity(n int) (*Matrix, error) {
	if n < 1 {
		return nil, ErrInvalidDimensions
	}

	return newIdentity(n), nil
}

// newIdentity sets the diagonal of a zero n×n matrix. n must be >= 1.
func newIdentity(n int) *Matrix {
	m := newZero(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m
}
