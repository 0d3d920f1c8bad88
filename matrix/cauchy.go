// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

const opNewCauchy = "NewCauchy"

// Cauchy is the Parametric matrix c[i][j] = 1 / (x[i] + y[j]).
//
// Its determinant has the closed form
//
//	det = Π_{i<j} (x[j]-x[i])·(y[j]-y[i]) / Π_{i,j} (x[i]+y[j])
//
// which costs O(n²) instead of a cofactor expansion. Cauchy matrices with
// distinct x and distinct y are never singular, which makes them a good
// exact-inverse test family.
type Cauchy struct {
	*Parametric
	x, y []numeric.Numeric
}

// NewCauchy builds the len(x)×len(y) Cauchy matrix. Every sum x[i]+y[j] must
// be non-zero; the first zero sum fails with numeric.ErrDivisionByZero.
func NewCauchy(x, y []numeric.Numeric) (*Cauchy, error) {
	for i, xi := range x {
		if xi == nil {
			return nil, matrixErrorf(opNewCauchy, fmt.Errorf("x[%d]: %w", i, ErrNilValue))
		}
		for j, yj := range y {
			if yj == nil {
				return nil, matrixErrorf(opNewCauchy, fmt.Errorf("y[%d]: %w", j, ErrNilValue))
			}
			if numeric.Add(xi, yj).IsZero() {
				return nil, matrixErrorf(opNewCauchy, fmt.Errorf("x[%d]+y[%d]: %w", i, j, numeric.ErrDivisionByZero))
			}
		}
	}
	xs := append([]numeric.Numeric(nil), x...)
	ys := append([]numeric.Numeric(nil), y...)
	all := append(append([]numeric.Numeric(nil), xs...), ys...)

	// Reciprocals of exact values are at least Rational.
	kind := numeric.MaxKind(numeric.Widest(all...), numeric.KindRational)
	p := &Parametric{
		rows: len(xs),
		cols: len(ys),
		kind: kind,
		ctx:  numeric.ContextOf(all...),
		gen: func(r, c int) (numeric.Numeric, error) {
			return numeric.Add(xs[r], ys[c]).Inverse()
		},
	}

	return &Cauchy{Parametric: p, x: xs, y: ys}, nil
}

func (m *Cauchy) String() string { return Format(m) }

func (m *Cauchy) determinant(*Options) (numeric.Numeric, error) {
	n := len(m.x)
	num := numeric.One(m.kind, m.ctx)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			num = numeric.Mul(num, numeric.Mul(numeric.Sub(m.x[j], m.x[i]), numeric.Sub(m.y[j], m.y[i])))
		}
	}
	if num.IsZero() {
		return num, nil
	}
	den := numeric.One(m.kind, m.ctx)
	for _, xi := range m.x {
		for _, yj := range m.y {
			den = numeric.Mul(den, numeric.Add(xi, yj))
		}
	}

	return numeric.Div(num, den)
}
