// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvnum/numeric"
)

const opNewAggregate = "NewAggregate"

// Aggregate is a block matrix: a rectangular grid of sub-matrices read in
// place. Blocks in one block-row share a row count and blocks in one
// block-column share a column count. Multiplication uses it to reassemble
// quadrant products without copying them.
type Aggregate struct {
	blocks   [][]Matrix
	rowStart []int // rowStart[i] = first row of block-row i; last entry = Rows()
	colStart []int
	kind     numeric.Kind
	ctx      numeric.Context
}

// NewAggregate validates the block layout and returns the assembled matrix.
//
// Errors:
//   - ErrInvalidDimensions for an empty or ragged block grid.
//   - ErrNilMatrix for a nil block.
//   - ErrDimensionMismatch when block heights or widths disagree.
func NewAggregate(blocks [][]Matrix) (*Aggregate, error) {
	if len(blocks) == 0 || len(blocks[0]) == 0 {
		return nil, matrixErrorf(opNewAggregate, ErrInvalidDimensions)
	}
	br, bc := len(blocks), len(blocks[0])
	a := &Aggregate{
		blocks:   make([][]Matrix, br),
		rowStart: make([]int, br+1),
		colStart: make([]int, bc+1),
		kind:     numeric.KindInteger,
		ctx:      numeric.Unlimited,
	}
	for i, row := range blocks {
		if len(row) != bc {
			return nil, matrixErrorf(opNewAggregate, fmt.Errorf("block-row %d has %d blocks, want %d: %w", i, len(row), bc, ErrInvalidDimensions))
		}
		for j, b := range row {
			if err := ValidateNotNil(b); err != nil {
				return nil, matrixErrorf(opNewAggregate, fmt.Errorf("block (%d,%d): %w", i, j, err))
			}
			if b.Rows() != row[0].Rows() || b.Cols() != blocks[0][j].Cols() {
				return nil, matrixErrorf(opNewAggregate, fmt.Errorf("block (%d,%d) is %dx%d: %w", i, j, b.Rows(), b.Cols(), ErrDimensionMismatch))
			}
			a.kind = numeric.MaxKind(a.kind, b.Kind())
			a.ctx = numeric.MinContext(a.ctx, b.Context())
		}
		a.blocks[i] = append([]Matrix(nil), row...)
		a.rowStart[i+1] = a.rowStart[i] + row[0].Rows()
	}
	for j := 0; j < bc; j++ {
		a.colStart[j+1] = a.colStart[j] + blocks[0][j].Cols()
	}

	return a, nil
}

func (a *Aggregate) Rows() int { return a.rowStart[len(a.rowStart)-1] }
func (a *Aggregate) Cols() int { return a.colStart[len(a.colStart)-1] }
func (a *Aggregate) Kind() numeric.Kind { return a.kind }
func (a *Aggregate) Context() numeric.Context { return a.ctx }
func (a *Aggregate) String() string { return Format(a) }

// Block returns block (i, j).
func (a *Aggregate) Block(i, j int) (Matrix, error) {
	if i < 0 || i >= len(a.blocks) || j < 0 || j >= len(a.blocks[0]) {
		return nil, matrixErrorf("Aggregate.Block", ErrOutOfRange)
	}

	return a.blocks[i][j], nil
}

// At locates the block by binary search over the block offsets.
func (a *Aggregate) At(r, c int) (numeric.Numeric, error) {
	if err := ValidateIndex(a, r, c); err != nil {
		return nil, matrixErrorf("Aggregate.At", err)
	}
	i := sort.SearchInts(a.rowStart, r+1) - 1
	j := sort.SearchInts(a.colStart, c+1) - 1

	return a.blocks[i][j].At(r-a.rowStart[i], c-a.colStart[j])
}

// sameLayout reports whether b partitions rows and columns identically.
func (a *Aggregate) sameLayout(b *Aggregate) bool {
	if len(a.rowStart) != len(b.rowStart) || len(a.colStart) != len(b.colStart) {
		return false
	}
	for i, s := range a.rowStart {
		if b.rowStart[i] != s {
			return false
		}
	}
	for j, s := range a.colStart {
		if b.colStart[j] != s {
			return false
		}
	}

	return true
}

// mapBlocks builds an aggregate of the same layout from f applied per block.
func (a *Aggregate) mapBlocks(f func(i, j int, blk Matrix) (Matrix, error)) (Matrix, error) {
	out := make([][]Matrix, len(a.blocks))
	for i, row := range a.blocks {
		out[i] = make([]Matrix, len(row))
		for j, blk := range row {
			m, err := f(i, j, blk)
			if err != nil {
				return nil, err
			}
			out[i][j] = m
		}
	}

	return NewAggregate(out)
}

// add sums blockwise when both sides share a layout.
func (a *Aggregate) add(b Matrix, o *Options) (Matrix, error) {
	ba, ok := b.(*Aggregate)
	if !ok || !a.sameLayout(ba) {
		return addGeneric(a, b, o)
	}

	return a.mapBlocks(func(i, j int, blk Matrix) (Matrix, error) {
		return addOf(blk, ba.blocks[i][j], o)
	})
}

func (a *Aggregate) scale(s numeric.Numeric, o *Options) (Matrix, error) {
	return a.mapBlocks(func(_, _ int, blk Matrix) (Matrix, error) {
		return scaleOf(blk, s, o)
	})
}

// transpose mirrors the block grid and transposes each block.
func (a *Aggregate) transpose() Matrix {
	out := make([][]Matrix, len(a.blocks[0]))
	for j := range out {
		out[j] = make([]Matrix, len(a.blocks))
		for i := range a.blocks {
			out[j][i] = transposeOf(a.blocks[i][j])
		}
	}
	t, err := NewAggregate(out)
	if err != nil {
		// Layout of a valid aggregate always mirrors into a valid one.
		return lazyTranspose(a)
	}

	return t
}
