// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/vector"
)

const opMul = "Mul"

// Mul returns a × b.
//
// Dispatch order:
//  1. Compact left operand: Identity returns b, Zero returns Zero, Diagonal
//     scales rows (elementwise against another Diagonal), Singleton scales b.
//  2. Compact right operand: Identity returns a, Zero returns Zero, Diagonal
//     scales columns, Singleton scales a.
//  3. Both square with the same power-of-two dimension n ≥ 2: the recursive
//     quadrant scheduler (see scheduler.go), bounded by WithWorkers and
//     WithParallelCutoff.
//  4. Everything else: the row·column dot-product loop. Shapes are never padded.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//   - Any error returned by At on an operand.
func Mul(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)
	m, err := mulOf(a, b, &o)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return m, nil
}

func mulOf(a, b Matrix, o *Options) (Matrix, error) {
	if ml, ok := a.(multiplier); ok {
		return ml.mulRight(b, o)
	}
	switch rb := b.(type) {
	case *Identity:
		return a, nil
	case *Zero:
		return &Zero{rows: a.Rows(), cols: rb.cols, kind: numeric.MaxKind(a.Kind(), rb.kind), ctx: numeric.MinContext(a.Context(), rb.ctx)}, nil
	case *Diagonal:
		return rb.scaleColumns(a)
	case *Singleton:
		return scaleOf(a, rb.v, o)
	}

	if a.Cols() == 0 {
		return &Zero{rows: a.Rows(), cols: b.Cols(), kind: numeric.MaxKind(a.Kind(), b.Kind()), ctx: numeric.MinContext(a.Context(), b.Context())}, nil
	}

	n := a.Rows()
	if n >= 2 && isPowerOfTwo(n) && a.Cols() == n && b.Cols() == n {
		o.logger.Debug("matrix: recursive multiply", "n", n, "workers", o.workers, "cutoff", o.cutoff)

		return newScheduler(o).mul(a, b)
	}

	o.logger.Debug("matrix: naive multiply", "rows", a.Rows(), "inner", a.Cols(), "cols", b.Cols())

	return naiveMul(a, b)
}

// naiveMul computes every cell as the dot product of a row of a and a column of b.
func naiveMul(a, b Matrix) (Matrix, error) {
	cols := make([]*vector.Vector, b.Cols())
	for j := range cols {
		c, err := ColOf(b, j)
		if err != nil {
			return nil, err
		}
		cols[j] = c
	}

	out := make([][]numeric.Numeric, a.Rows())
	for i := range out {
		row, err := RowOf(a, i)
		if err != nil {
			return nil, err
		}
		out[i] = make([]numeric.Numeric, len(cols))
		for j, c := range cols {
			if out[i][j], err = row.Dot(c); err != nil {
				return nil, err
			}
		}
	}

	return newDenseShaped(out, b.Cols())
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }
