// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvnum/numeric"
)

const opInverse = "Inverse"

// Inverse returns m⁻¹.
//
// Implementation:
//   - Compact representations invert structurally (Identity → self,
//     Diagonal → reciprocals, Singleton → 1/x).
//   - n ≤ 2: closed-form adjugate / determinant.
//   - n > 2: adjugate(m) · 1/det(m). Every cofactor is an independent task on
//     a bounded pool (errgroup with SetLimit(workers)); each task writes only
//     its own cell and the first failing cofactor fails the inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0).
//   - ErrSingular when the determinant is zero.
//   - *numeric.CoercionError from the determinant (see Determinant).
//
// Complexity:
//   - n² cofactors of size n-1, each as costly as Determinant.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	inv, err := inverseOf(m, &o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

func inverseOf(m Matrix, o *Options) (Matrix, error) {
	if iv, ok := m.(inverter); ok {
		return iv.inverse(o)
	}

	switch m.Rows() {
	case 0:
		return nil, ErrInvalidDimensions
	case 1:
		x, err := m.At(0, 0)
		if err != nil {
			return nil, err
		}
		inv, err := x.Inverse()
		if err != nil {
			return nil, ErrSingular
		}

		return &Singleton{v: inv}, nil
	case 2:
		return inverse2(m)
	}

	det, err := determinantOf(m, o)
	if err != nil {
		return nil, err
	}
	if det.IsZero() {
		return nil, ErrSingular
	}
	invDet, err := det.Inverse()
	if err != nil {
		return nil, err
	}

	cof, err := cofactors(m, o)
	if err != nil {
		return nil, err
	}

	n := m.Rows()
	adj := make([][]numeric.Numeric, n)
	for i := range adj {
		adj[i] = make([]numeric.Numeric, n)
		for j := range adj[i] {
			adj[i][j] = numeric.Mul(cof[j][i], invDet)
		}
	}

	return NewDense(adj)
}

// cofactors computes C[i][j] = (-1)^(i+j) · det(minor(i, j)) on a bounded pool.
func cofactors(m Matrix, o *Options) ([][]numeric.Numeric, error) {
	n := m.Rows()
	cof := make([][]numeric.Numeric, n)
	for i := range cof {
		cof[i] = make([]numeric.Numeric, n)
	}

	o.logger.Debug("matrix: cofactor pool", "n", n, "tasks", n*n, "workers", o.workers)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			i, j := i, j
			g.Go(func() error {
				minor, err := minorOf(m, i, j)
				if err != nil {
					return err
				}
				d, err := expand(minor, false, o)
				if err != nil {
					return fmt.Errorf("cofactor (%d,%d): %w", i, j, err)
				}
				if (i+j)%2 == 1 {
					d = d.Neg()
				}
				cof[i][j] = d

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cof, nil
}

// inverse2 is [[d, -b], [-c, a]] / (ad - bc).
func inverse2(m Matrix) (Matrix, error) {
	a, b, c, d, err := cells2(m)
	if err != nil {
		return nil, err
	}
	det := numeric.Sub(numeric.Mul(a, d), numeric.Mul(b, c))
	if det.IsZero() {
		return nil, ErrSingular
	}
	inv, err := det.Inverse()
	if err != nil {
		return nil, err
	}

	return NewDense([][]numeric.Numeric{
		{numeric.Mul(d, inv), numeric.Mul(b.Neg(), inv)},
		{numeric.Mul(c.Neg(), inv), numeric.Mul(a, inv)},
	})
}
