// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

const opNewZero = "NewZero"

// Zero is the rows×cols additive identity. It stores only its shape, kind and context.
type Zero struct {
	rows, cols int
	kind       numeric.Kind
	ctx        numeric.Context
}

// NewZero returns the rows×cols zero matrix.
func NewZero(rows, cols int, opts ...Option) (*Zero, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewZero, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	return &Zero{rows: rows, cols: cols, kind: o.kind, ctx: o.ctx}, nil
}

func (m *Zero) Rows() int { return m.rows }
func (m *Zero) Cols() int { return m.cols }
func (m *Zero) Kind() numeric.Kind { return m.kind }
func (m *Zero) Context() numeric.Context { return m.ctx }
func (m *Zero) String() string { return Format(m) }

func (m *Zero) At(r, c int) (numeric.Numeric, error) {
	if err := ValidateIndex(m, r, c); err != nil {
		return nil, matrixErrorf("Zero.At", err)
	}

	return numeric.Zero(m.kind, m.ctx), nil
}

func (m *Zero) determinant(*Options) (numeric.Numeric, error) {
	if m.rows == 0 {
		return numeric.One(m.kind, m.ctx), nil
	}

	return numeric.Zero(m.kind, m.ctx), nil
}

func (m *Zero) trace() numeric.Numeric { return numeric.Zero(m.kind, m.ctx) }

func (m *Zero) transpose() Matrix {
	return &Zero{rows: m.cols, cols: m.rows, kind: m.kind, ctx: m.ctx}
}

func (m *Zero) upper() bool { return m.rows == m.cols }
func (m *Zero) lower() bool { return m.rows == m.cols }

func (m *Zero) inverse(*Options) (Matrix, error) {
	if m.rows == 0 {
		return nil, ErrInvalidDimensions
	}

	return nil, ErrSingular
}

func (m *Zero) scale(s numeric.Numeric, _ *Options) (Matrix, error) {
	return &Zero{rows: m.rows, cols: m.cols, kind: numeric.MaxKind(m.kind, s.Kind()), ctx: numeric.MinContext(m.ctx, s.Context())}, nil
}

// add returns b itself: 0 + b = b.
func (m *Zero) add(b Matrix, _ *Options) (Matrix, error) { return b, nil }

func (m *Zero) mulRight(b Matrix, _ *Options) (Matrix, error) {
	return &Zero{rows: m.rows, cols: b.Cols(), kind: numeric.MaxKind(m.kind, b.Kind()), ctx: numeric.MinContext(m.ctx, b.Context())}, nil
}
