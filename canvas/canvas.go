// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"

	"github.com/Hobbs96/geometry/color"
)

// Canvas is a height × width grid of colors stored row-major.
// A Canvas is not safe for concurrent mutation; concurrent reads
// (including Encode) are fine.
type Canvas struct {
	height, width int
	pixels        []color.Color
}

// New returns a height × width canvas with every pixel black.
// Returns ErrInvalidDimensions if either dimension is not positive.
func New(height, width int) (*Canvas, error) {
	if height <= 0 || width <= 0 {
		return nil, canvasErrorf(opNew, fmt.Errorf("%dx%d: %w", height, width, ErrInvalidDimensions))
	}

	return &Canvas{
		height: height,
		width:  width,
		pixels: make([]color.Color, height*width),
	}, nil
}

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// indexOf maps (row, col) to the flat offset or reports ErrOutOfRange.
func (c *Canvas) indexOf(row, col int) (int, error) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return 0, ErrOutOfRange
	}

	return row*c.width + col, nil
}

// At returns the color at (row, col).
func (c *Canvas) At(row, col int) (color.Color, error) {
	i, err := c.indexOf(row, col)
	if err != nil {
		return color.Color{}, indexErrorf("At", row, col, err)
	}

	return c.pixels[i], nil
}

// Set stores v at (row, col).
func (c *Canvas) Set(row, col int, v color.Color) error {
	i, err := c.indexOf(row, col)
	if err != nil {
		return indexErrorf("Set", row, col, err)
	}
	c.pixels[i] = v

	return nil
}

// Fill sets every pixel to v.
func (c *Canvas) Fill(v color.Color) {
	for i := range c.pixels {
		c.pixels[i] = v
	}
}

// row returns the pixels of row r without copying.
func (c *Canvas) row(r int) []color.Color {
	return c.pixels[r*c.width : (r+1)*c.width]
}
