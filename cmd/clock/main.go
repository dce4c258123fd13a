// SPDX-License-Identifier: MIT

// Command clock draws the twelve hour marks of a clock face by rotating a
// single point around the Y axis, and saves the canvas as PPM, BMP or TIFF.
//
// Usage:
//
//	clock -size 200 -format p6 -out clock.ppm -v
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/Hobbs96/geometry"
	"github.com/Hobbs96/geometry/canvas"
	"github.com/Hobbs96/geometry/color"
	"github.com/Hobbs96/geometry/transform"
	"github.com/Hobbs96/geometry/tuple"
	"go.uber.org/zap"
)

// minSize keeps every mark and its border inside the canvas.
const minSize = 8

var errSizeTooSmall = fmt.Errorf("clock: size must be >= %d", minSize)

func main() {
	var (
		size    = flag.Int("size", 200, "canvas width and height in pixels")
		format  = flag.String("format", "ppm", "output format: ppm, p6, bmp or tiff")
		out     = flag.String("out", "clock.ppm", "output file")
		workers = flag.Int("workers", 1, "PPM row encoding workers")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = l.Sync() }()
		geometry.SetLogger(l)
	}
	log := geometry.Logger()

	if err := run(*size, *format, *out, *workers); err != nil {
		log.Error("clock failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info("clock saved", zap.String("path", *out), zap.Int("size", *size), zap.String("format", *format))
}

// run renders the clock and writes it to path.
func run(size int, format, path string, workers int) error {
	if workers < 1 {
		return errors.New("clock: workers must be >= 1")
	}
	c, err := render(size)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err = save(c, bw, format, workers); err == nil {
		err = bw.Flush()
	}

	return errors.Join(err, f.Close())
}

// save writes c to w in the named format.
func save(c *canvas.Canvas, w io.Writer, format string, workers int) error {
	switch format {
	case "bmp":
		return c.WriteBMP(w)
	case "tiff", "tif":
		return c.WriteTIFF(w)
	}
	ppm, err := canvas.ParseFormat(format)
	if err != nil {
		return err
	}

	return c.Encode(w, canvas.WithFormat(ppm), canvas.WithWorkers(workers), canvas.WithLineWidth(70))
}

// render draws a size × size canvas with twelve white 3×3 marks on a circle
// of radius 3/8·size around the center. Looking down the Y axis, +Z is
// twelve o'clock and +X is three o'clock.
func render(size int) (*canvas.Canvas, error) {
	if size < minSize {
		return nil, errSizeTooSmall
	}
	c, err := canvas.New(size, size)
	if err != nil {
		return nil, err
	}

	center := float64(size) / 2
	radius := float64(size) * 3 / 8
	twelve := tuple.Point(0, 0, 1)
	for hour := 0; hour < 12; hour++ {
		p, err := transform.Chain().
			RotateY(float64(hour)*math.Pi/6).
			Scale(radius, 1, radius).
			Apply(twelve)
		if err != nil {
			return nil, err
		}
		row := int(math.Round(center - p.Z))
		col := int(math.Round(center + p.X))
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if err := c.Set(row+dr, col+dc, color.White); err != nil {
					return nil, err
				}
			}
		}
	}

	return c, nil
}
