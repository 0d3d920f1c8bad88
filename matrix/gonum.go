// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/numeric"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum rounds every element of m to float64 and returns a gonum matrix,
// for handing exact results to float64 numerical code.
//
// Errors:
//   - ErrInvalidDimensions for an empty matrix (gonum has no 0×0 Dense).
//   - *numeric.CoercionError for a Complex element with non-zero imaginary part.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%dx%d: %w", r, c, ErrInvalidDimensions))
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			f, err := numeric.ToFloat64(x)
			if err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			data = append(data, f)
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies g into a Real Dense whose entries hold the float64 values exactly.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = g.At(i, j)
		}
	}
	d, err := FromFloat64s(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return d, nil
}
