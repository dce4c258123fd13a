// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	stdcolor "image/color"
	"io"

	"github.com/Hobbs96/geometry/color"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ToImage converts c to an opaque *image.NRGBA. Column maps to x and row to
// y, so row 0 is the top scanline.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x, p := range c.row(y) {
			r, g, b := p.Quantize()
			img.SetNRGBA(x, y, stdcolor.NRGBA{R: r, G: g, B: b, A: color.MaxChannel})
		}
	}

	return img
}

// FromImage creates a canvas from img, discarding alpha.
// Returns ErrInvalidDimensions for an empty image.
func FromImage(img image.Image) (*Canvas, error) {
	bounds := img.Bounds()
	c, err := New(bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, err
	}
	for y := 0; y < c.height; y++ {
		px := c.row(y)
		for x := range px {
			px[x] = color.FromStd(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return c, nil
}

// WriteBMP writes c to w as a 24-bit BMP.
func (c *Canvas) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, c.ToImage()); err != nil {
		return canvasErrorf(opWriteBMP, err)
	}

	return nil
}

// WriteTIFF writes c to w as a deflate-compressed TIFF.
func (c *Canvas) WriteTIFF(w io.Writer) error {
	opt := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
	if err := tiff.Encode(w, c.ToImage(), opt); err != nil {
		return canvasErrorf(opWriteTIFF, err)
	}

	return nil
}
