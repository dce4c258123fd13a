// SPDX-License-Identifier: MIT

// Package geometry is a small homogeneous-coordinate kernel for ray tracers
// and other 3-D renderers: tuples that know whether they are points or
// vectors, RGB colors, dense matrices and a pixel canvas that serializes to
// the portable pixel map format.
//
// Everything is organized under subpackages:
//
//	approx/    — the shared epsilon and approximate float comparison
//	tuple/     — Point/Vector 4-tuples classified by W
//	color/     — RGB triples with channel arithmetic and 0–255 quantization
//	matrix/    — dense row-major matrices, products, inverse, shared identity
//	transform/ — translation, scaling, rotation, shearing, view, chains
//	canvas/    — 2-D color grid with PPM (P3/P6), BMP and TIFF output
//
// Quick example:
//
//	c, _ := canvas.New(100, 100)
//	p, _ := transform.RotationY(math.Pi/6).MulTuple(tuple.Point(0, 0, 1))
//	_ = c.Set(50-int(p.Z*40), 50+int(p.X*40), color.White)
//	_ = c.Encode(os.Stdout)
//
// This package itself only carries the process-wide logger shared by the
// subpackages; see SetLogger.
//
//	go get github.com/Hobbs96/geometry
package geometry
