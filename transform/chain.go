// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/Hobbs96/geometry/matrix"
	"github.com/Hobbs96/geometry/tuple"
)

// Builder accumulates transforms in the order they should be applied.
// The zero value is not usable; start from Chain.
//
// Each step left-multiplies the accumulated matrix, so
// Chain().A().B().C() yields C × B × A. The first error from Then is kept
// and reported by Matrix, Inverse and Apply; later steps are skipped.
type Builder struct {
	m   *matrix.Matrix
	err error
}

// Chain starts an empty transform sequence equal to the identity.
func Chain() *Builder {
	id, _ := matrix.NewIdentity(4)

	return &Builder{m: id}
}

// Then appends an arbitrary 4×4 transform. Any other shape records
// matrix.ErrDimensionMismatch.
func (b *Builder) Then(m *matrix.Matrix) *Builder {
	if b.err != nil {
		return b
	}
	if err := matrix.ValidateTupleCompatible(m); err != nil {
		b.err = transformErrorf(opChain, err)
		return b
	}
	next, err := matrix.Mul(m, b.m)
	if err != nil {
		b.err = transformErrorf(opChain, err)
		return b
	}
	b.m = next

	return b
}

// Translate appends Translation(x, y, z).
func (b *Builder) Translate(x, y, z float64) *Builder { return b.Then(Translation(x, y, z)) }

// Scale appends Scaling(x, y, z).
func (b *Builder) Scale(x, y, z float64) *Builder { return b.Then(Scaling(x, y, z)) }

// RotateX appends RotationX(rad).
func (b *Builder) RotateX(rad float64) *Builder { return b.Then(RotationX(rad)) }

// RotateY appends RotationY(rad).
func (b *Builder) RotateY(rad float64) *Builder { return b.Then(RotationY(rad)) }

// RotateZ appends RotationZ(rad).
func (b *Builder) RotateZ(rad float64) *Builder { return b.Then(RotationZ(rad)) }

// Shear appends Shearing(xy, xz, yx, yz, zx, zy).
func (b *Builder) Shear(xy, xz, yx, yz, zx, zy float64) *Builder {
	return b.Then(Shearing(xy, xz, yx, yz, zx, zy))
}

// Matrix returns a copy of the composed transform.
func (b *Builder) Matrix() (*matrix.Matrix, error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.m.Clone(), nil
}

// Inverse returns the transform that undoes the whole chain.
func (b *Builder) Inverse() (*matrix.Matrix, error) {
	if b.err != nil {
		return nil, b.err
	}
	inv, err := b.m.Inverse()
	if err != nil {
		return nil, transformErrorf(opChain, err)
	}

	return inv, nil
}

// Apply transforms t by the composed matrix.
func (b *Builder) Apply(t tuple.Tuple) (tuple.Tuple, error) {
	if b.err != nil {
		return tuple.Tuple{}, b.err
	}

	return b.m.MulTuple(t)
}
