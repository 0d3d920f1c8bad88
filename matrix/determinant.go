// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvnum/numeric"
)

const opDeterminant = "Determinant"

// triangularShortcutMin: above this dimension Determinant first checks
// triangularity, which costs O(n²) against the O(n!) expansion.
const triangularShortcutMin = 4

// Determinant returns det(m) in m's declared kind.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: representation fast path (Diagonal, Identity, Zero, Singleton,
//     Cauchy) or the shared expansion: n ≤ 2 closed form; n > 4 and
//     triangular → product of the diagonal, stopping at the first zero;
//     otherwise Laplace expansion along the first row (first column for
//     Columnar) over minors built by removing one row and column from a view.
//   - Stage 3: convert the result back to m.Kind().
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - *numeric.CoercionError (errors.Is ErrCoercion) when the computed value
//     cannot be expressed in the declared kind; the error carries the value.
//   - Any error returned by m.At.
//
// Complexity:
//   - Time O(n!) worst case for the expansion (zero entries are skipped),
//     O(n²) for triangular input. Exact arithmetic: cost grows with digit size.
func Determinant(m Matrix, opts ...Option) (numeric.Numeric, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	det, err := determinantOf(m, &o)
	if err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// determinantOf dispatches a validated square matrix and conforms the result.
func determinantOf(m Matrix, o *Options) (numeric.Numeric, error) {
	var (
		det numeric.Numeric
		err error
	)
	if d, ok := m.(determinanter); ok {
		det, err = d.determinant(o)
	} else {
		det, err = expand(m, false, o)
	}
	if err != nil {
		return nil, err
	}

	return conform(det, m)
}

// conform converts v to m's declared kind; a lossy narrowing surfaces as
// *numeric.CoercionError.
func conform(v numeric.Numeric, m Matrix) (numeric.Numeric, error) {
	if v.Kind() == m.Kind() {
		return v, nil
	}

	return numeric.Convert(v, m.Kind(), m.Context())
}

// expand is the shared determinant algorithm. alongColumn selects the
// expansion axis; minors keep expanding along the same axis.
func expand(m Matrix, alongColumn bool, o *Options) (numeric.Numeric, error) {
	n := m.Rows()
	switch n {
	case 0:
		return numeric.One(m.Kind(), m.Context()), nil
	case 1:
		return m.At(0, 0)
	case 2:
		return det2(m)
	}

	if n > triangularShortcutMin && IsTriangular(m) {
		return diagonalProduct(m)
	}

	var acc numeric.Numeric = numeric.Zero(m.Kind(), m.Context())
	for k := 0; k < n; k++ {
		r, c := 0, k
		if alongColumn {
			r, c = k, 0
		}
		a, err := m.At(r, c)
		if err != nil {
			return nil, err
		}
		if a.IsZero() {
			continue
		}
		minor, err := minorOf(m, r, c)
		if err != nil {
			return nil, err
		}
		sub, err := expand(minor, alongColumn, o)
		if err != nil {
			return nil, err
		}
		term := numeric.Mul(a, sub)
		if k%2 == 1 {
			term = term.Neg()
		}
		acc = numeric.Add(acc, term)
	}

	return acc, nil
}

// det2 is ad - bc.
func det2(m Matrix) (numeric.Numeric, error) {
	a, b, c, d, err := cells2(m)
	if err != nil {
		return nil, err
	}

	return numeric.Sub(numeric.Mul(a, d), numeric.Mul(b, c)), nil
}

// cells2 reads the four entries of a 2×2 matrix.
func cells2(m Matrix) (a, b, c, d numeric.Numeric, err error) {
	if a, err = m.At(0, 0); err != nil {
		return
	}
	if b, err = m.At(0, 1); err != nil {
		return
	}
	if c, err = m.At(1, 0); err != nil {
		return
	}
	d, err = m.At(1, 1)

	return
}

// diagonalProduct multiplies the main diagonal, returning zero at the first zero entry.
func diagonalProduct(m Matrix) (numeric.Numeric, error) {
	var acc numeric.Numeric = numeric.One(m.Kind(), m.Context())
	for i := 0; i < m.Rows(); i++ {
		x, err := m.At(i, i)
		if err != nil {
			return nil, err
		}
		if x.IsZero() {
			return numeric.Zero(m.Kind(), m.Context()), nil
		}
		acc = numeric.Mul(acc, x)
	}

	return acc, nil
}
