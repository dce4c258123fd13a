// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

// ErrDegenerateView indicates ViewTransform was given coincident eye and
// target points, or an up vector parallel to the line of sight.
var ErrDegenerateView = errors.New("transform: degenerate view orientation")

const (
	opView  = "ViewTransform"
	opChain = "Chain"
)

// transformErrorf wraps err with an operation tag.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
