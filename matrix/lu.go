// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

const opLU = "LU"

// LU factors a square matrix as m = L·U with Doolittle's scheme: L is unit
// lower-triangular, U is upper-triangular. There is no pivoting, so a zero
// pivot fails with ErrSingular even for some invertible inputs. On Integer and
// Rational input the factors are exact.
//
// Implementation:
//   - For each i: U[i][k] = m[i][k] - Σ_{j<i} L[i][j]·U[j][k]  (k ≥ i)
//     then L[k][i] = (m[k][i] - Σ_{j<i} L[k][j]·U[j][i]) / U[i][i]  (k > i).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	kind, ctx := m.Kind(), m.Context()

	a := make([][]numeric.Numeric, n)
	l := make([][]numeric.Numeric, n)
	u := make([][]numeric.Numeric, n)
	for i := 0; i < n; i++ {
		a[i] = make([]numeric.Numeric, n)
		l[i] = make([]numeric.Numeric, n)
		u[i] = make([]numeric.Numeric, n)
		for j := 0; j < n; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, err)
			}
			a[i][j] = x
			l[i][j] = numeric.Zero(kind, ctx)
			u[i][j] = numeric.Zero(kind, ctx)
		}
		l[i][i] = numeric.One(kind, ctx)
	}

	for i := 0; i < n; i++ {
		for k := i; k < n; k++ {
			sum := a[i][k]
			for j := 0; j < i; j++ {
				sum = numeric.Sub(sum, numeric.Mul(l[i][j], u[j][k]))
			}
			u[i][k] = sum
		}
		if u[i][i].IsZero() {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		for k := i + 1; k < n; k++ {
			sum := a[k][i]
			for j := 0; j < i; j++ {
				sum = numeric.Sub(sum, numeric.Mul(l[k][j], u[j][i]))
			}
			q, err := numeric.Div(sum, u[i][i])
			if err != nil {
				return nil, nil, matrixErrorf(opLU, err)
			}
			l[k][i] = q
		}
	}

	lm, err := NewDense(l)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	um, err := NewDense(u)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return lm, um, nil
}
