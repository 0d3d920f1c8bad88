// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/vector"
)

const (
	opNewColumnar    = "NewColumnar"
	opColumnarAppend = "Columnar.Append"
)

// Columnar is the column-major mirror of Dense: it stores column vectors and
// caches rows. Its determinant expands along the first column.
type Columnar struct {
	g *grid
}

// NewColumnar builds a Columnar from column slices (see NewDense for the rules).
func NewColumnar(cols [][]numeric.Numeric, opts ...Option) (*Columnar, error) {
	o := gatherOptions(opts...)
	g, err := newGrid(cols, vector.Column, &o)
	if err != nil {
		return nil, matrixErrorf(opNewColumnar, err)
	}

	return &Columnar{g: g}, nil
}

// NewColumnarFromColumns is NewColumnar over column vectors; the vectors are copied.
func NewColumnarFromColumns(cols []*vector.Vector, opts ...Option) (*Columnar, error) {
	lines, err := vectorLines(cols)
	if err != nil {
		return nil, matrixErrorf(opNewColumnar, err)
	}

	return NewColumnar(lines, opts...)
}

func (m *Columnar) Rows() int { return m.g.width }
func (m *Columnar) Cols() int { return len(m.g.lines) }
func (m *Columnar) Kind() numeric.Kind { return m.g.kind }
func (m *Columnar) Context() numeric.Context { return m.g.ctx }

func (m *Columnar) At(r, c int) (numeric.Numeric, error) {
	v, err := m.g.at(c, r)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Columnar.At(%d,%d)", r, c), err)
	}

	return v, nil
}

// Row returns row i, built on first request and cached until the next append.
func (m *Columnar) Row(i int) (*vector.Vector, error) {
	v, err := m.g.crossLine(i)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Columnar.Row(%d)", i), err)
	}

	return v, nil
}

// Col returns a read-only alias of column j. O(1).
func (m *Columnar) Col(j int) (*vector.Vector, error) {
	v, err := m.g.native(j)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Columnar.Col(%d)", j), err)
	}

	return v, nil
}

// AppendColumn appends a copy of v as the last column. Not safe for concurrent use.
func (m *Columnar) AppendColumn(v *vector.Vector) error {
	if err := m.g.appendLine(v); err != nil {
		return matrixErrorf(opColumnarAppend, err)
	}

	return nil
}

// AppendRow appends v as the last row, extending every column copy-on-write.
func (m *Columnar) AppendRow(v *vector.Vector) error {
	if err := m.g.appendCross(v); err != nil {
		return matrixErrorf(opColumnarAppend, err)
	}

	return nil
}

// Minor returns the view of m without row r and column c.
func (m *Columnar) Minor(r, c int) (*SubMatrix, error) { return minorOf(m, r, c) }

func (m *Columnar) String() string { return Format(m) }

func (m *Columnar) transpose() Matrix { return &Dense{g: m.g.transposed()} }

func (m *Columnar) determinant(o *Options) (numeric.Numeric, error) {
	return expand(m, true, o)
}

func (m *Columnar) scale(s numeric.Numeric, _ *Options) (Matrix, error) {
	return &Columnar{g: m.g.scaled(s)}, nil
}

func (m *Columnar) add(b Matrix, o *Options) (Matrix, error) {
	if bc, ok := b.(*Columnar); ok {
		g, err := m.g.sum(bc.g)
		if err != nil {
			return nil, err
		}

		return &Columnar{g: g}, nil
	}

	return addGeneric(m, b, o)
}
