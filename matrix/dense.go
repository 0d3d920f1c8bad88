// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/vector"
)

const (
	opNewDense     = "NewDense"
	opFromInt64s   = "FromInt64s"
	opFromFloat64s = "FromFloat64s"
	opDenseAppend  = "Dense.Append"
)

// Dense is a row-major matrix: an ordered list of row vectors. Columns are
// materialized on demand and cached until the next structural append.
//
// Concurrency: reads (At, Row, Col and every package operation) are safe from
// multiple goroutines. AppendRow/AppendColumn are not and must be serialized
// by the caller.
type Dense struct {
	g *grid
}

// NewDense builds a Dense from row slices. Rows must share one length; entries
// are converted to the declared kind (WithKind, else the widest entry kind).
//
// Errors:
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNilValue for a nil entry.
//   - *numeric.CoercionError when WithKind narrows an entry lossily.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows [][]numeric.Numeric, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	g, err := newGrid(rows, vector.Row, &o)
	if err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return &Dense{g: g}, nil
}

// newDenseShaped is NewDense with an explicit column count; kernels use it so
// that a result with no rows keeps its width.
func newDenseShaped(rows [][]numeric.Numeric, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	g, err := newShapedGrid(rows, cols, vector.Row, &o)
	if err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return &Dense{g: g}, nil
}

// NewDenseFromRows is NewDense over row vectors; the vectors are copied.
func NewDenseFromRows(rows []*vector.Vector, opts ...Option) (*Dense, error) {
	lines, err := vectorLines(rows)
	if err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return NewDense(lines, opts...)
}

// FromInt64s builds an Integer Dense from a literal table.
func FromInt64s(rows [][]int64, opts ...Option) (*Dense, error) {
	lines := make([][]numeric.Numeric, len(rows))
	for i, r := range rows {
		lines[i] = make([]numeric.Numeric, len(r))
		for j, x := range r {
			lines[i][j] = numeric.NewInteger(x)
		}
	}
	d, err := NewDense(lines, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromInt64s, err)
	}

	return d, nil
}

// FromFloat64s builds a Real Dense (53-bit entries) from a literal table.
// NaN and ±Inf are rejected with numeric.ErrNotFinite.
func FromFloat64s(rows [][]float64, opts ...Option) (*Dense, error) {
	lines := make([][]numeric.Numeric, len(rows))
	for i, r := range rows {
		lines[i] = make([]numeric.Numeric, len(r))
		for j, x := range r {
			v, err := numeric.FromFloat64(x)
			if err != nil {
				return nil, matrixErrorf(opFromFloat64s, fmt.Errorf("[%d,%d]: %w", i, j, err))
			}
			lines[i][j] = v
		}
	}
	d, err := NewDense(lines, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromFloat64s, err)
	}

	return d, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return len(d.g.lines) }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.g.width }

// At returns the element at (r, c).
func (d *Dense) At(r, c int) (numeric.Numeric, error) {
	v, err := d.g.at(r, c)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Dense.At(%d,%d)", r, c), err)
	}

	return v, nil
}

func (d *Dense) Kind() numeric.Kind { return d.g.kind }
func (d *Dense) Context() numeric.Context { return d.g.ctx }

// Row returns a read-only alias of row i. O(1).
func (d *Dense) Row(i int) (*vector.Vector, error) {
	v, err := d.g.native(i)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Dense.Row(%d)", i), err)
	}

	return v, nil
}

// Col returns column j as a read-only vector, built on first request and
// cached until the next append.
func (d *Dense) Col(j int) (*vector.Vector, error) {
	v, err := d.g.crossLine(j)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Dense.Col(%d)", j), err)
	}

	return v, nil
}

// AppendRow appends a copy of v as the last row. Not safe for concurrent use.
func (d *Dense) AppendRow(v *vector.Vector) error {
	if err := d.g.appendLine(v); err != nil {
		return matrixErrorf(opDenseAppend, err)
	}

	return nil
}

// AppendColumn appends v as the last column. Stored rows are replaced, never
// modified, so earlier Transpose results are unaffected.
func (d *Dense) AppendColumn(v *vector.Vector) error {
	if err := d.g.appendCross(v); err != nil {
		return matrixErrorf(opDenseAppend, err)
	}

	return nil
}

// Minor returns the view of d without row r and column c.
func (d *Dense) Minor(r, c int) (*SubMatrix, error) { return minorOf(d, r, c) }

// String renders the matrix one row per line.
func (d *Dense) String() string { return Format(d) }

func (d *Dense) transpose() Matrix { return &Columnar{g: d.g.transposed()} }

func (d *Dense) determinant(o *Options) (numeric.Numeric, error) {
	return expand(d, false, o)
}

func (d *Dense) scale(s numeric.Numeric, _ *Options) (Matrix, error) {
	return &Dense{g: d.g.scaled(s)}, nil
}

// add sums row vectors directly when b is also row-major.
func (d *Dense) add(b Matrix, o *Options) (Matrix, error) {
	if bd, ok := b.(*Dense); ok {
		g, err := d.g.sum(bd.g)
		if err != nil {
			return nil, err
		}

		return &Dense{g: g}, nil
	}

	return addGeneric(d, b, o)
}
