// SPDX-License-Identifier: MIT

// Package canvas provides a fixed-size height × width grid of colors, indexed
// by (row, col) with row 0 at the top, and its serialization to the portable
// pixel map (PPM) format.
//
// Plain PPM (the default) is ASCII:
//
//	P3
//	<width> <height>
//	255
//	<r g b r g b ... for row 0>
//	...
//	<row height-1>
//
// Every channel is quantized with color.Color.Quantize, each row ends with a
// newline and there is no other trailing whitespace. WithFormat(FormatBinary)
// selects the raw P6 variant instead. WithLineWidth wraps long plain rows at
// channel boundaries for readers that cap line length.
//
// Rows are independent, so encoding may run on several workers
// (WithWorkers); rows are always written top to bottom.
//
// The grid can also be exported as an image.Image (ToImage) and written as
// BMP or TIFF.
package canvas
