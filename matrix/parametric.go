// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

const (
	opNewParametric = "NewParametric"
	opPad           = "Pad"
	opParametricAt  = "Parametric.At"
)

// Generator computes the element at (r, c). It is called on every read and
// may be called from several goroutines at once, so it must be pure.
type Generator func(r, c int) (numeric.Numeric, error)

// Parametric is a matrix defined by a generator instead of storage.
// Transpose, Scale and Add stay lazy: they wrap the generator.
type Parametric struct {
	rows, cols int
	gen        Generator
	kind       numeric.Kind
	ctx        numeric.Context
}

// NewParametric returns a rows×cols matrix whose elements come from gen.
// The declared kind and context come from WithKind/WithContext, else from
// the element at (0, 0).
//
// Errors:
//   - ErrInvalidDimensions for negative dimensions.
//   - ErrNilGenerator when gen is nil.
//   - The generator's own error when probing (0, 0) fails.
func NewParametric(rows, cols int, gen Generator, opts ...Option) (*Parametric, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewParametric, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	if gen == nil {
		return nil, matrixErrorf(opNewParametric, ErrNilGenerator)
	}
	o := gatherOptions(opts...)
	p := &Parametric{rows: rows, cols: cols, gen: gen, kind: o.kind, ctx: o.ctx}
	if rows > 0 && cols > 0 && (!o.kindSet || !o.ctxSet) {
		probe, err := p.At(0, 0)
		if err != nil {
			return nil, matrixErrorf(opNewParametric, err)
		}
		if !o.kindSet {
			p.kind = probe.Kind()
		}
		if !o.ctxSet {
			p.ctx = probe.Context()
		}
	}

	return p, nil
}

func (p *Parametric) Rows() int { return p.rows }
func (p *Parametric) Cols() int { return p.cols }
func (p *Parametric) Kind() numeric.Kind { return p.kind }
func (p *Parametric) Context() numeric.Context { return p.ctx }
func (p *Parametric) String() string { return Format(p) }

// At invokes the generator. Nothing is cached.
func (p *Parametric) At(r, c int) (numeric.Numeric, error) {
	if err := ValidateIndex(p, r, c); err != nil {
		return nil, matrixErrorf(opParametricAt, err)
	}
	v, err := p.gen(r, c)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", opParametricAt, r, c), err)
	}
	if v == nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", opParametricAt, r, c), ErrNilValue)
	}

	return v, nil
}

func (p *Parametric) transpose() Matrix { return lazyTranspose(p) }

func (p *Parametric) scale(s numeric.Numeric, _ *Options) (Matrix, error) {
	return &Parametric{
		rows: p.rows,
		cols: p.cols,
		kind: numeric.MaxKind(p.kind, s.Kind()),
		ctx:  numeric.MinContext(p.ctx, s.Context()),
		gen: func(r, c int) (numeric.Numeric, error) {
			v, err := p.At(r, c)
			if err != nil {
				return nil, err
			}

			return numeric.Mul(v, s), nil
		},
	}, nil
}

func (p *Parametric) add(b Matrix, _ *Options) (Matrix, error) {
	return &Parametric{
		rows: p.rows,
		cols: p.cols,
		kind: numeric.MaxKind(p.kind, b.Kind()),
		ctx:  numeric.MinContext(p.ctx, b.Context()),
		gen: func(r, c int) (numeric.Numeric, error) {
			x, err := p.At(r, c)
			if err != nil {
				return nil, err
			}
			y, err := b.At(r, c)
			if err != nil {
				return nil, err
			}

			return numeric.Add(x, y), nil
		},
	}, nil
}

// lazyTranspose wraps any matrix in a generator reading m.At(c, r).
func lazyTranspose(m Matrix) *Parametric {
	return &Parametric{
		rows: m.Cols(),
		cols: m.Rows(),
		kind: m.Kind(),
		ctx:  m.Context(),
		gen:  func(r, c int) (numeric.Numeric, error) { return m.At(c, r) },
	}
}

// Pad returns m extended to rows×cols; cells outside m read as value.
// Nothing is copied: reads inside m's bounds go to m.
func Pad(m Matrix, rows, cols int, value numeric.Numeric) (*Parametric, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if value == nil {
		return nil, matrixErrorf(opPad, ErrNilValue)
	}
	if rows < m.Rows() || cols < m.Cols() {
		return nil, matrixErrorf(opPad, fmt.Errorf("%dx%d into %dx%d: %w", m.Rows(), m.Cols(), rows, cols, ErrDimensionMismatch))
	}
	r0, c0 := m.Rows(), m.Cols()

	return &Parametric{
		rows: rows,
		cols: cols,
		kind: numeric.MaxKind(m.Kind(), value.Kind()),
		ctx:  numeric.MinContext(m.Context(), value.Context()),
		gen: func(r, c int) (numeric.Numeric, error) {
			if r < r0 && c < c0 {
				return m.At(r, c)
			}

			return value, nil
		},
	}, nil
}
