// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive height or width.
	ErrInvalidDimensions = errors.New("canvas: dimensions must be > 0")

	// ErrOutOfRange indicates a (row, col) outside the grid.
	ErrOutOfRange = errors.New("canvas: pixel index out of range")

	// ErrUnknownFormat indicates an unsupported serialization format.
	ErrUnknownFormat = errors.New("canvas: unknown format")
)

// Operation tags for error wrapping.
const (
	opNew         = "New"
	opEncode      = "Encode"
	opParseFormat = "ParseFormat"
	opWriteBMP    = "WriteBMP"
	opWriteTIFF   = "WriteTIFF"
)

// canvasErrorf wraps err with an operation tag.
func canvasErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with the method name and coordinates.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Canvas.%s(%d,%d): %w", method, row, col, err)
}
