// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/vector"
)

// Matrix is the read contract every representation satisfies.
//
// Representations are safe for concurrent reads once constructed. Structural
// mutation (AppendRow/AppendColumn, RemoveRow/RemoveColumn on a view) must be
// serialized by the caller.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (r, c) or ErrOutOfRange.
	At(r, c int) (numeric.Numeric, error)
	// Kind is the declared numeric kind of the elements.
	Kind() numeric.Kind
	// Context is the precision context of the matrix.
	Context() numeric.Context
}

// The capability interfaces below are the representation fast paths. The
// package-level operations try them first and fall back to the generic
// algorithm written once against Matrix.

type determinanter interface {
	determinant(o *Options) (numeric.Numeric, error)
}

type inverter interface {
	inverse(o *Options) (Matrix, error)
}

type transposer interface {
	transpose() Matrix
}

type tracer interface {
	trace() numeric.Numeric
}

type scaler interface {
	scale(s numeric.Numeric, o *Options) (Matrix, error)
}

// adder is implemented by representations with a cheaper sum; b has already
// been validated to have the receiver's shape.
type adder interface {
	add(b Matrix, o *Options) (Matrix, error)
}

// multiplier is implemented by compact representations used as the left
// operand; b has already been validated as compatible.
type multiplier interface {
	mulRight(b Matrix, o *Options) (Matrix, error)
}

type triangular interface {
	upper() bool
	lower() bool
}

type rowSource interface {
	Row(i int) (*vector.Vector, error)
}

type colSource interface {
	Col(j int) (*vector.Vector, error)
}

type rowAppender interface {
	AppendRow(v *vector.Vector) error
}

type colAppender interface {
	AppendColumn(v *vector.Vector) error
}
