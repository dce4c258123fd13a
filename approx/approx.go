// SPDX-License-Identifier: MIT

// Package approx provides the epsilon comparison every equality check in the
// module is built on. Tuples, colors and matrices never compare float64
// values with ==; they call Equal.
package approx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the single absolute tolerance used across the module.
const Epsilon = 1e-5

// Equal reports whether |a-b| < Epsilon.
// Infinities of the same sign are equal; NaN equals nothing.
func Equal(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return EqualWithin(a, b, Epsilon)
}

// Zero reports whether x is within Epsilon of 0.
func Zero(x float64) bool { return Equal(x, 0) }

// EqualWithin reports whether |a-b| < eps for any float type.
// A negative eps is treated as |eps|.
func EqualWithin[F constraints.Float](a, b, eps F) bool {
	if eps < 0 {
		eps = -eps
	}
	d := a - b
	if d < 0 {
		d = -d
	}

	return d < eps
}
