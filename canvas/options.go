// SPDX-License-Identifier: MIT

// Package canvas: functional configuration for serialization. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package canvas

import (
	"fmt"
	"strings"
)

// Format selects the PPM variant written by Encode.
type Format int

const (
	// FormatPlain is the ASCII "P3" variant.
	FormatPlain Format = iota
	// FormatBinary is the raw "P6" variant.
	FormatBinary
)

// String returns the PPM magic number of f.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return magicPlain
	case FormatBinary:
		return magicBinary
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a user-facing name onto a Format.
// Accepted (case-insensitive): "ppm", "p3", "plain", "p6", "binary".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "ppm", "p3", "plain":
		return FormatPlain, nil
	case "p6", "binary":
		return FormatBinary, nil
	default:
		return 0, canvasErrorf(opParseFormat, fmt.Errorf("%q: %w", s, ErrUnknownFormat))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFormat is the plain ASCII variant.
	DefaultFormat = FormatPlain

	// DefaultWorkers encodes rows sequentially.
	DefaultWorkers = 1

	// DefaultLineWidth disables wrapping: one text line per pixel row.
	DefaultLineWidth = 0

	// MaxValue is the maximum channel value written in the header.
	MaxValue = 255
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "canvas: WithWorkers: n must be >= 1"
	panicLineWidthInvalid = "canvas: WithLineWidth: n must be >= 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; Encode and PPM accept ...Option.
type Options struct {
	format    Format // DefaultFormat
	workers   int    // >= 1; DefaultWorkers
	lineWidth int    // >= 0; DefaultLineWidth (0 = no wrapping)
}

// WithFormat selects the PPM variant. An unknown value is reported by Encode
// as ErrUnknownFormat.
func WithFormat(f Format) Option {
	return func(o *Options) { o.format = f }
}

// WithWorkers sets how many goroutines encode rows concurrently.
// Output is byte-identical for every n.
//
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLineWidth wraps plain rows so that no line exceeds n bytes; many PPM
// readers reject lines longer than 70. Wrapping happens between channel
// values only. 0 disables wrapping. Ignored by FormatBinary.
//
// Panics if n < 0.
func WithLineWidth(n int) Option {
	if n < 0 {
		panic(panicLineWidthInvalid)
	}

	return func(o *Options) { o.lineWidth = n }
}

// gatherOptions applies user setters over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		format:    DefaultFormat,
		workers:   DefaultWorkers,
		lineWidth: DefaultLineWidth,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
