// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/vector"
)

const (
	opNewSubMatrix = "NewSubMatrix"
	opRemoveRow    = "SubMatrix.RemoveRow"
	opRemoveColumn = "SubMatrix.RemoveColumn"
	opViewAt       = "SubMatrix.At"
)

// materializeRatio: a view smaller than 1/materializeRatio of its backing in
// both dimensions is copied into a Dense before Scale/Add.
const materializeRatio = 3

// SubMatrix is a window onto a backing matrix with removable rows and columns.
//
// It stores the backing reference, inclusive row/column ranges and the sorted
// backing indices removed from inside those ranges. Removing a row or column
// touches only this bookkeeping, never the backing matrix. The backing matrix
// must outlive the view.
//
// Two memoized triangularity flags sit behind independent locks, so
// concurrent readers may ask IsUpperTriangular/IsLowerTriangular safely.
// RemoveRow/RemoveColumn take both locks and reset both flags; they are still
// mutations and must not run concurrently with reads of the same view.
type SubMatrix struct {
	backing Matrix

	startRow, endRow int // inclusive backing range
	startCol, endCol int
	removedRows      []int // backing indices, ascending, strictly inside the range
	removedCols      []int

	upperMemo memo
	lowerMemo memo
}

// NewSubMatrix returns the view of m restricted to rows [startRow, endRow] and
// columns [startCol, endCol], both inclusive. An empty range is expressed with
// end = start-1.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrOutOfRange when a bound lies outside m.
func NewSubMatrix(m Matrix, startRow, startCol, endRow, endCol int) (*SubMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNewSubMatrix, err)
	}
	if startRow < 0 || startCol < 0 || endRow >= m.Rows() || endCol >= m.Cols() ||
		endRow < startRow-1 || endCol < startCol-1 {
		return nil, matrixErrorf(opNewSubMatrix,
			fmt.Errorf("rows [%d,%d] cols [%d,%d] of %dx%d: %w",
				startRow, endRow, startCol, endCol, m.Rows(), m.Cols(), ErrOutOfRange))
	}

	return &SubMatrix{
		backing:  m,
		startRow: startRow, endRow: endRow,
		startCol: startCol, endCol: endCol,
	}, nil
}

// NewView returns a view covering all of m.
func NewView(m Matrix) (*SubMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNewSubMatrix, err)
	}

	return NewSubMatrix(m, 0, 0, m.Rows()-1, m.Cols()-1)
}

// Backing returns the matrix the view reads from.
func (v *SubMatrix) Backing() Matrix { return v.backing }

func (v *SubMatrix) Rows() int { return v.endRow - v.startRow + 1 - len(v.removedRows) }
func (v *SubMatrix) Cols() int { return v.endCol - v.startCol + 1 - len(v.removedCols) }

func (v *SubMatrix) Kind() numeric.Kind { return v.backing.Kind() }
func (v *SubMatrix) Context() numeric.Context { return v.backing.Context() }

// At maps (r, c) through the removal bookkeeping and reads the backing matrix.
func (v *SubMatrix) At(r, c int) (numeric.Numeric, error) {
	br, bc, err := v.backingIndex(r, c)
	if err != nil {
		return nil, matrixErrorf(opViewAt, err)
	}

	return v.backing.At(br, bc)
}

// backingIndex resolves local (r, c). A result beyond the backing bounds
// means the bookkeeping is inconsistent and is reported as ErrOutOfRange.
func (v *SubMatrix) backingIndex(r, c int) (int, int, error) {
	if r < 0 || r >= v.Rows() || c < 0 || c >= v.Cols() {
		return 0, 0, fmt.Errorf("(%d,%d) on %dx%d view: %w", r, c, v.Rows(), v.Cols(), ErrOutOfRange)
	}
	br := remapIndex(v.startRow, r, v.removedRows)
	bc := remapIndex(v.startCol, c, v.removedCols)
	if br > v.endRow || bc > v.endCol || br >= v.backing.Rows() || bc >= v.backing.Cols() {
		return 0, 0, fmt.Errorf("(%d,%d) mapped to (%d,%d): %w", r, c, br, bc, ErrOutOfRange)
	}

	return br, bc, nil
}

// RemoveRow drops local row r. Edge rows shrink the range and absorb any
// removals that become adjacent to the new bound; interior rows are recorded.
// Not safe for concurrent use.
func (v *SubMatrix) RemoveRow(r int) error {
	if r < 0 || r >= v.Rows() {
		return matrixErrorf(opRemoveRow, fmt.Errorf("row %d of %d: %w", r, v.Rows(), ErrOutOfRange))
	}
	b := remapIndex(v.startRow, r, v.removedRows)

	v.lockMemos()
	defer v.unlockMemos()
	v.startRow, v.endRow, v.removedRows = removeIndex(r, v.Rows(), b, v.startRow, v.endRow, v.removedRows)

	return nil
}

// RemoveColumn drops local column c (see RemoveRow).
func (v *SubMatrix) RemoveColumn(c int) error {
	if c < 0 || c >= v.Cols() {
		return matrixErrorf(opRemoveColumn, fmt.Errorf("column %d of %d: %w", c, v.Cols(), ErrOutOfRange))
	}
	b := remapIndex(v.startCol, c, v.removedCols)

	v.lockMemos()
	defer v.unlockMemos()
	v.startCol, v.endCol, v.removedCols = removeIndex(c, v.Cols(), b, v.startCol, v.endCol, v.removedCols)

	return nil
}

// removeIndex updates one axis of the bookkeeping for removing local index
// local (backing index b) from an axis of size n.
func removeIndex(local, n, b, start, end int, removed []int) (int, int, []int) {
	switch {
	case local == 0:
		start = b + 1
		for len(removed) > 0 && removed[0] == start {
			start++
			removed = removed[1:]
		}
	case local == n-1:
		end = b - 1
		for len(removed) > 0 && removed[len(removed)-1] == end {
			end--
			removed = removed[:len(removed)-1]
		}
	default:
		cp := make([]int, len(removed), len(removed)+1)
		copy(cp, removed)
		removed = insertSorted(cp, b)
	}

	return start, end, removed
}

func (v *SubMatrix) lockMemos() {
	v.upperMemo.mu.Lock()
	v.lowerMemo.mu.Lock()
	v.upperMemo.resetLocked()
	v.lowerMemo.resetLocked()
}

func (v *SubMatrix) unlockMemos() {
	v.lowerMemo.mu.Unlock()
	v.upperMemo.mu.Unlock()
}

// Duplicate returns an independent view over the same backing matrix.
// Only the bookkeeping is copied; memoized flags start empty.
func (v *SubMatrix) Duplicate() *SubMatrix {
	return &SubMatrix{
		backing:     v.backing,
		startRow:    v.startRow,
		endRow:      v.endRow,
		startCol:    v.startCol,
		endCol:      v.endCol,
		removedRows: append([]int(nil), v.removedRows...),
		removedCols: append([]int(nil), v.removedCols...),
	}
}

// Minor returns a duplicate with local row r and column c removed.
func (v *SubMatrix) Minor(r, c int) (*SubMatrix, error) { return minorOf(v, r, c) }

// Row returns local row i as a read-only vector.
func (v *SubMatrix) Row(i int) (*vector.Vector, error) {
	elems := make([]numeric.Numeric, v.Cols())
	for j := range elems {
		x, err := v.At(i, j)
		if err != nil {
			return nil, err
		}
		elems[j] = x
	}
	row, err := vector.NewRow(elems...)
	if err != nil {
		return nil, err
	}

	return row.View(vector.Row), nil
}

// Col returns local column j as a read-only vector.
func (v *SubMatrix) Col(j int) (*vector.Vector, error) {
	elems := make([]numeric.Numeric, v.Rows())
	for i := range elems {
		x, err := v.At(i, j)
		if err != nil {
			return nil, err
		}
		elems[i] = x
	}
	col, err := vector.NewColumn(elems...)
	if err != nil {
		return nil, err
	}

	return col.View(vector.Column), nil
}

func (v *SubMatrix) String() string { return Format(v) }

// contiguous reports whether no interior index has been removed.
func (v *SubMatrix) contiguous() bool { return len(v.removedRows) == 0 && len(v.removedCols) == 0 }

// small reports whether the view covers less than 1/materializeRatio of the
// backing in both dimensions.
func (v *SubMatrix) small() bool {
	return v.Rows()*materializeRatio < v.backing.Rows() && v.Cols()*materializeRatio < v.backing.Cols()
}

func (v *SubMatrix) upper() bool { return v.upperMemo.get(func() bool { return scanUpper(v) }) }
func (v *SubMatrix) lower() bool { return v.lowerMemo.get(func() bool { return scanLower(v) }) }

// transpose is a view over the transposed backing with the axes swapped.
func (v *SubMatrix) transpose() Matrix {
	return &SubMatrix{
		backing:     transposeOf(v.backing),
		startRow:    v.startCol,
		endRow:      v.endCol,
		startCol:    v.startRow,
		endCol:      v.endRow,
		removedRows: append([]int(nil), v.removedCols...),
		removedCols: append([]int(nil), v.removedRows...),
	}
}

// scale copies a small view into a Dense first; otherwise it scales the
// backing matrix and re-applies this view's bookkeeping to the result.
func (v *SubMatrix) scale(s numeric.Numeric, o *Options) (Matrix, error) {
	if v.small() {
		o.logger.Debug("matrix: view materialized for scale", "rows", v.Rows(), "cols", v.Cols())
		d, err := Materialize(v)
		if err != nil {
			return nil, err
		}

		return d.scale(s, o)
	}
	scaled, err := scaleOf(v.backing, s, o)
	if err != nil {
		return nil, err
	}
	out := v.Duplicate()
	out.backing = scaled

	return out, nil
}

func (v *SubMatrix) add(b Matrix, o *Options) (Matrix, error) {
	if v.small() {
		o.logger.Debug("matrix: view materialized for add", "rows", v.Rows(), "cols", v.Cols())
		d, err := Materialize(v)
		if err != nil {
			return nil, err
		}

		return d.add(b, o)
	}

	return addGeneric(v, b, o)
}
