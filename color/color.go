// SPDX-License-Identifier: MIT

// Package color implements floating-point RGB colors.
//
// Channels are unbounded during arithmetic: intermediate results may be
// negative or exceed 1. They are clamped only when quantized for output.
package color

import (
	stdcolor "image/color"
	"strconv"

	"github.com/Hobbs96/geometry/approx"
)

// MaxChannel is the largest quantized channel value.
const MaxChannel = 255

// Color is an RGB triple. The zero value is black.
type Color struct {
	R, G, B float64
}

// Named colors.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
	Red   = Color{R: 1}
	Green = Color{G: 1}
	Blue  = Color{B: 1}
)

// Compile-time check that Color can be used where image/color.Color is expected.
var _ stdcolor.Color = Color{}

// New returns the color (r, g, b).
func New(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// Add returns c + o per channel.
func (c Color) Add(o Color) Color { return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B} }

// Sub returns c - o per channel.
func (c Color) Sub(o Color) Color { return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B} }

// Scale multiplies every channel by k.
func (c Color) Scale(k float64) Color { return Color{R: c.R * k, G: c.G * k, B: c.B * k} }

// Mul returns the Hadamard (per-channel) product, used to tint one color by another.
func (c Color) Mul(o Color) Color { return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B} }

// Equal reports whether every channel is approximately equal.
func (c Color) Equal(o Color) bool {
	return approx.Equal(c.R, o.R) && approx.Equal(c.G, o.G) && approx.Equal(c.B, o.B)
}

// Quantize maps each channel to trunc(clamp(ch*255, 0, 255)).
// This is the only place out-of-range channel values are corrected.
func (c Color) Quantize() (r, g, b uint8) {
	return quantize(c.R), quantize(c.G), quantize(c.B)
}

// AppendText appends the display string of c to dst and returns the result.
// The canvas encoder uses it to avoid per-pixel allocations.
func (c Color) AppendText(dst []byte) []byte {
	r, g, b := c.Quantize()
	dst = strconv.AppendUint(dst, uint64(r), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendUint(dst, uint64(g), 10)
	dst = append(dst, ' ')

	return strconv.AppendUint(dst, uint64(b), 10)
}

// String returns the quantized channels separated by spaces, e.g. "25 178 178".
func (c Color) String() string {
	return string(c.AppendText(make([]byte, 0, 11)))
}

// RGBA implements image/color.Color. The color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: MaxChannel}.RGBA()
}

// FromStd converts any image/color.Color to a Color, dropping alpha after
// un-premultiplying. Each channel becomes v/255 of its 8-bit value.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)

	return Color{
		R: float64(n.R) / MaxChannel,
		G: float64(n.G) / MaxChannel,
		B: float64(n.B) / MaxChannel,
	}
}

// quantize scales a channel to [0, 255] and truncates toward zero.
func quantize(ch float64) uint8 {
	return uint8(clamp255(ch * MaxChannel))
}

// clamp255 restricts x to [0, 255]. NaN maps to 0.
func clamp255(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > MaxChannel {
		return MaxChannel
	}

	return x
}
