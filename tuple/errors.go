// SPDX-License-Identifier: MIT
package tuple

import (
	"errors"
	"fmt"
)

// ErrNotVector is returned when an operation defined only between vectors
// (Dot, Cross, Reflect) receives a point or a tuple with a corrupted W.
var ErrNotVector = errors.New("tuple: operand is not a vector")

// Operation tags for error wrapping.
const (
	opDot     = "Dot"
	opCross   = "Cross"
	opReflect = "Reflect"
)

// tupleErrorf wraps err with an operation tag. err must be non-nil.
func tupleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateVectors checks that every operand is classified as a vector.
func validateVectors(tag string, ts ...Tuple) error {
	for _, t := range ts {
		if !t.IsVector() {
			return tupleErrorf(tag, fmt.Errorf("%v: %w", t, ErrNotVector))
		}
	}

	return nil
}
