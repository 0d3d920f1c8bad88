// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

const opNewDiagonal = "NewDiagonal"

// Diagonal stores only the n main-diagonal values of an n×n matrix.
//
// Behavior highlights:
//   - Determinant = product of the diagonal, Trace = sum, Transpose = self.
//   - Diagonal × Diagonal is elementwise; Diagonal × M scales the rows of M;
//     M × Diagonal scales the columns of M.
//   - Inverse is the elementwise reciprocal, ErrSingular on any zero entry.
type Diagonal struct {
	d    []numeric.Numeric
	kind numeric.Kind
	ctx  numeric.Context
}

// NewDiagonal builds a Diagonal from its diagonal values (copied and converted
// to the declared kind).
func NewDiagonal(values []numeric.Numeric, opts ...Option) (*Diagonal, error) {
	o := gatherOptions(opts...)
	for i, x := range values {
		if x == nil {
			return nil, matrixErrorf(opNewDiagonal, fmt.Errorf("entry %d: %w", i, ErrNilValue))
		}
	}
	k, ctx := o.declared(values)
	d := make([]numeric.Numeric, len(values))
	for i, x := range values {
		y, err := numeric.Convert(x, k, ctx)
		if err != nil {
			return nil, matrixErrorf(opNewDiagonal, err)
		}
		d[i] = y
	}

	return &Diagonal{d: d, kind: k, ctx: ctx}, nil
}

func (m *Diagonal) Rows() int { return len(m.d) }
func (m *Diagonal) Cols() int { return len(m.d) }
func (m *Diagonal) Kind() numeric.Kind { return m.kind }
func (m *Diagonal) Context() numeric.Context { return m.ctx }
func (m *Diagonal) String() string { return Format(m) }

func (m *Diagonal) At(r, c int) (numeric.Numeric, error) {
	if err := ValidateIndex(m, r, c); err != nil {
		return nil, matrixErrorf("Diagonal.At", err)
	}
	if r != c {
		return numeric.Zero(m.kind, m.ctx), nil
	}

	return m.d[r], nil
}

// Diag returns a copy of the diagonal values.
func (m *Diagonal) Diag() []numeric.Numeric { return append([]numeric.Numeric(nil), m.d...) }

func (m *Diagonal) determinant(*Options) (numeric.Numeric, error) {
	acc := numeric.One(m.kind, m.ctx)
	for _, x := range m.d {
		if x.IsZero() {
			return numeric.Zero(m.kind, m.ctx), nil
		}
		acc = numeric.Mul(acc, x)
	}

	return acc, nil
}

func (m *Diagonal) trace() numeric.Numeric {
	acc := numeric.Zero(m.kind, m.ctx)
	for _, x := range m.d {
		acc = numeric.Add(acc, x)
	}

	return acc
}

func (m *Diagonal) transpose() Matrix { return m }

func (m *Diagonal) upper() bool { return true }
func (m *Diagonal) lower() bool { return true }

func (m *Diagonal) inverse(*Options) (Matrix, error) {
	if len(m.d) == 0 {
		return nil, ErrInvalidDimensions
	}
	out := make([]numeric.Numeric, len(m.d))
	for i, x := range m.d {
		inv, err := x.Inverse()
		if err != nil {
			return nil, fmt.Errorf("diagonal entry %d is zero: %w", i, ErrSingular)
		}
		out[i] = inv
	}

	return &Diagonal{d: out, kind: numeric.Widest(out...), ctx: m.ctx}, nil
}

func (m *Diagonal) scale(s numeric.Numeric, _ *Options) (Matrix, error) {
	out := make([]numeric.Numeric, len(m.d))
	for i, x := range m.d {
		out[i] = numeric.Mul(x, s)
	}

	return &Diagonal{d: out, kind: numeric.MaxKind(m.kind, s.Kind()), ctx: numeric.MinContext(m.ctx, s.Context())}, nil
}

func (m *Diagonal) add(b Matrix, o *Options) (Matrix, error) {
	bd, ok := b.(*Diagonal)
	if !ok {
		return addGeneric(m, b, o)
	}
	out := make([]numeric.Numeric, len(m.d))
	for i, x := range m.d {
		out[i] = numeric.Add(x, bd.d[i])
	}

	return &Diagonal{d: out, kind: numeric.MaxKind(m.kind, bd.kind), ctx: numeric.MinContext(m.ctx, bd.ctx)}, nil
}

// mulRight computes m × b: elementwise for a Diagonal b, row scaling otherwise.
func (m *Diagonal) mulRight(b Matrix, _ *Options) (Matrix, error) {
	if bd, ok := b.(*Diagonal); ok {
		out := make([]numeric.Numeric, len(m.d))
		for i, x := range m.d {
			out[i] = numeric.Mul(x, bd.d[i])
		}

		return &Diagonal{d: out, kind: numeric.MaxKind(m.kind, bd.kind), ctx: numeric.MinContext(m.ctx, bd.ctx)}, nil
	}

	rows := make([][]numeric.Numeric, len(m.d))
	for i, x := range m.d {
		row, err := RowOf(b, i)
		if err != nil {
			return nil, err
		}
		rows[i] = row.Scale(x).Elements()
	}

	return newDenseShaped(rows, b.Cols())
}

// scaleColumns computes a × m by scaling column j of a with d[j].
func (m *Diagonal) scaleColumns(a Matrix) (Matrix, error) {
	rows := make([][]numeric.Numeric, a.Rows())
	for i := range rows {
		rows[i] = make([]numeric.Numeric, len(m.d))
		for j, x := range m.d {
			v, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = numeric.Mul(v, x)
		}
	}

	return newDenseShaped(rows, len(m.d))
}
