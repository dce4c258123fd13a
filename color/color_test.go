// SPDX-License-Identifier: MIT
package color_test

import (
	stdcolor "image/color"
	"math"
	"testing"

	"github.com/Hobbs96/geometry/approx"
	"github.com/Hobbs96/geometry/color"
	"github.com/stretchr/testify/require"
)

func TestNewKeepsOutOfRangeChannels(t *testing.T) {
	c := color.New(-0.4, 0.5, 1.7)
	require.InDelta(t, -0.4, c.R, approx.Epsilon)
	require.InDelta(t, 0.5, c.G, approx.Epsilon)
	require.InDelta(t, 1.7, c.B, approx.Epsilon)
	require.True(t, color.Black.Equal(color.Color{}))
}

func TestArithmetic(t *testing.T) {
	c1 := color.New(0.9, 0.6, 0.75)
	c2 := color.New(0.7, 0.1, 0.25)

	tests := []struct {
		name string
		got  color.Color
		want color.Color
	}{
		{"add", c1.Add(c2), color.New(1.6, 0.7, 1.0)},
		{"sub", c1.Sub(c2), color.New(0.2, 0.5, 0.5)},
		{"scale", color.New(0.2, 0.3, 0.4).Scale(2), color.New(0.4, 0.6, 0.8)},
		{"hadamard", color.New(1, 0.2, 0.4).Mul(color.New(0.9, 1, 0.1)), color.New(0.9, 0.2, 0.04)},
		{"white tints nothing", c1.Mul(color.White), c1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Truef(t, tt.want.Equal(tt.got), "want %+v, got %+v", tt.want, tt.got)
		})
	}
}

func TestMulIsCommutative(t *testing.T) {
	a := color.New(0.3, 1.4, -0.2)
	b := color.New(2, 0.5, 0.7)
	require.True(t, a.Mul(b).Equal(b.Mul(a)))
}

func TestEqualUsesEpsilon(t *testing.T) {
	c := color.New(0.1, 0.2, 0.3)
	require.True(t, c.Equal(color.New(0.1+approx.Epsilon/2, 0.2, 0.3)))
	require.False(t, c.Equal(color.New(0.11, 0.2, 0.3)))
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name    string
		c       color.Color
		r, g, b uint8
	}{
		{"black", color.Black, 0, 0, 0},
		{"white", color.White, 255, 255, 255},
		{"truncates", color.New(0.1, 0.7, 0.7), 25, 178, 178},
		{"clamps both ends", color.New(-0.5, 0.5, 1.1), 0, 127, 255},
		{"far out of range", color.New(-100, 3, 0.999), 0, 255, 254},
		{"nan is black", color.New(math.NaN(), 0, 0), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.Quantize()
			require.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b})
		})
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "25 178 178", color.New(0.1, 0.7, 0.7).String())
	require.Equal(t, "0 127 255", color.New(-0.5, 0.5, 1.1).String())
	require.Equal(t, "0 0 0", color.Black.String())
	require.Equal(t, "x 255 0 0", string(color.Red.AppendText([]byte("x "))))
}

func TestRGBAImplementsImageColor(t *testing.T) {
	var c stdcolor.Color = color.New(1, 0.5, -1)
	got := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	require.Equal(t, stdcolor.NRGBA{R: 255, G: 127, B: 0, A: 255}, got)
}

func TestFromStd(t *testing.T) {
	c := color.FromStd(stdcolor.NRGBA{R: 255, G: 51, B: 0, A: 255})
	require.True(t, c.Equal(color.New(1, 0.2, 0)), "got %+v", c)

	// Round trip through quantization is exact on 8-bit values.
	orig := color.New(0.1, 0.7, 0.7)
	r, g, b := color.FromStd(orig).Quantize()
	require.Equal(t, []uint8{25, 178, 178}, []uint8{r, g, b})

	// Alpha is dropped after un-premultiplying.
	half := color.FromStd(stdcolor.RGBA{R: 64, G: 0, B: 0, A: 128})
	require.InDelta(t, 127.0/255, half.R, 0.01)
}
