// SPDX-License-Identifier: MIT

package canvas

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/Hobbs96/geometry"
	"github.com/Hobbs96/geometry/color"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	magicPlain  = "P3"
	magicBinary = "P6"
)

// rowEncoder appends the serialized form of row r to dst.
type rowEncoder func(dst []byte, r int) []byte

// Encode writes c to w as a portable pixel map. See EncodeContext.
func (c *Canvas) Encode(w io.Writer, opts ...Option) error {
	return c.EncodeContext(context.Background(), w, opts...)
}

// EncodeContext writes c to w as a portable pixel map.
// Implementation:
//   - Stage 1: resolve options and pick the row encoder for the format.
//   - Stage 2: write the header "<magic>\n<width> <height>\n255\n".
//   - Stage 3: encode rows sequentially, or in row bands on an errgroup when
//     workers > 1, and write them top to bottom.
//
// Behavior highlights:
//   - Output is byte-identical for every worker count.
//   - ctx is checked before each row; a cancelled encode may leave a
//     truncated prefix in w.
//   - c is not modified and may be encoded again.
//
// Errors:
//   - ErrUnknownFormat, ctx.Err(), or the first write error from w.
func (c *Canvas) EncodeContext(ctx context.Context, w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)

	var enc rowEncoder
	switch o.format {
	case FormatPlain:
		enc = func(dst []byte, r int) []byte { return appendPlainRow(dst, c.row(r), o.lineWidth) }
	case FormatBinary:
		enc = func(dst []byte, r int) []byte { return appendBinaryRow(dst, c.row(r)) }
	default:
		return canvasErrorf(opEncode, fmt.Errorf("%v: %w", o.format, ErrUnknownFormat))
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	err := writeHeader(bw, o.format, c.width, c.height)
	if err == nil {
		if o.workers == 1 || c.height == 1 {
			err = c.encodeSequential(ctx, bw, enc)
		} else {
			err = c.encodeParallel(ctx, bw, enc, o.workers)
		}
	}
	if err == nil {
		err = bw.Flush()
	}

	log := geometry.Logger()
	if err != nil {
		if ctx.Err() != nil {
			log.Warn("canvas encode aborted", zap.Error(err), zap.Int64("bytes", cw.n))
		}
		return canvasErrorf(opEncode, err)
	}
	log.Debug("canvas encoded",
		zap.Stringer("format", o.format),
		zap.Int("width", c.width),
		zap.Int("height", c.height),
		zap.Int("workers", o.workers),
		zap.Int("lineWidth", o.lineWidth),
		zap.Int64("bytes", cw.n),
	)

	return nil
}

// PPM returns the serialized canvas as a byte slice.
func (c *Canvas) PPM(opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	// "255 255 255 " per pixel is the plain worst case.
	buf.Grow(32 + c.width*c.height*12)
	if err := c.Encode(&buf, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writeHeader writes the magic number, dimensions and maximum value.
func writeHeader(w io.Writer, f Format, width, height int) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", f, width, height, MaxValue)

	return err
}

// encodeSequential encodes and writes one row at a time, reusing one buffer.
func (c *Canvas) encodeSequential(ctx context.Context, w io.Writer, enc rowEncoder) error {
	var buf []byte
	for r := 0; r < c.height; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		buf = enc(buf[:0], r)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// encodeParallel splits rows into contiguous bands, one per worker, encodes
// every row into its own slot and then writes the slots in row order.
func (c *Canvas) encodeParallel(ctx context.Context, w io.Writer, enc rowEncoder, workers int) error {
	rows := make([][]byte, c.height)
	band := (c.height + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < c.height; start += band {
		start := start
		end := min(start+band, c.height)
		g.Go(func() error {
			for r := start; r < end; r++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				rows[r] = enc(nil, r)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// appendPlainRow appends one P3 row: channel values separated by single
// spaces, terminated by '\n'. With lineWidth > 0 a space is replaced by
// '\n' whenever the next value would push the line past lineWidth bytes.
func appendPlainRow(dst []byte, px []color.Color, lineWidth int) []byte {
	if lineWidth == 0 {
		for i, p := range px {
			if i > 0 {
				dst = append(dst, ' ')
			}
			dst = p.AppendText(dst)
		}
		return append(dst, '\n')
	}

	lineStart := len(dst)
	for _, p := range px {
		r, g, b := p.Quantize()
		for _, v := range [3]uint8{r, g, b} {
			if len(dst) > lineStart {
				if len(dst)-lineStart+1+digits(v) > lineWidth {
					dst = append(dst, '\n')
					lineStart = len(dst)
				} else {
					dst = append(dst, ' ')
				}
			}
			dst = strconv.AppendUint(dst, uint64(v), 10)
		}
	}

	return append(dst, '\n')
}

// appendBinaryRow appends one P6 row: three raw bytes per pixel, no separators.
func appendBinaryRow(dst []byte, px []color.Color) []byte {
	for _, p := range px {
		r, g, b := p.Quantize()
		dst = append(dst, r, g, b)
	}

	return dst
}

// digits returns the decimal width of v.
func digits(v uint8) int {
	switch {
	case v >= 100:
		return 3
	case v >= 10:
		return 2
	default:
		return 1
	}
}

// countingWriter counts bytes accepted by the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err
}
