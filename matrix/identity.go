// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

const opNewIdentity = "NewIdentity"

// Identity is the n×n multiplicative identity. It stores only n, a kind and a
// precision context (Integer and Unlimited unless WithKind/WithContext say otherwise).
//
// Behavior highlights:
//   - Mul returns the other operand unchanged.
//   - Scale(0) → Zero, Scale(1) → the receiver, any other scalar → Diagonal
//     when n < CloneLimit, else a Parametric generator (no n-sized allocation).
//   - Determinant = 1, Inverse = self, Transpose = self.
type Identity struct {
	n    int
	kind numeric.Kind
	ctx  numeric.Context
}

// NewIdentity returns I_n. n must be ≥ 0.
func NewIdentity(n int, opts ...Option) (*Identity, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewIdentity, fmt.Errorf("n=%d: %w", n, ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	return &Identity{n: n, kind: o.kind, ctx: o.ctx}, nil
}

func (m *Identity) Rows() int { return m.n }
func (m *Identity) Cols() int { return m.n }
func (m *Identity) Kind() numeric.Kind { return m.kind }
func (m *Identity) Context() numeric.Context { return m.ctx }
func (m *Identity) String() string { return Format(m) }

func (m *Identity) At(r, c int) (numeric.Numeric, error) {
	if err := ValidateIndex(m, r, c); err != nil {
		return nil, matrixErrorf("Identity.At", err)
	}
	if r == c {
		return numeric.One(m.kind, m.ctx), nil
	}

	return numeric.Zero(m.kind, m.ctx), nil
}

func (m *Identity) determinant(*Options) (numeric.Numeric, error) {
	return numeric.One(m.kind, m.ctx), nil
}

func (m *Identity) trace() numeric.Numeric {
	t, _ := numeric.Convert(numeric.NewInteger(int64(m.n)), m.kind, m.ctx)

	return t
}

func (m *Identity) transpose() Matrix { return m }

func (m *Identity) upper() bool { return true }
func (m *Identity) lower() bool { return true }

func (m *Identity) inverse(*Options) (Matrix, error) {
	if m.n == 0 {
		return nil, ErrInvalidDimensions
	}

	return m, nil
}

func (m *Identity) scale(s numeric.Numeric, o *Options) (Matrix, error) {
	kind, ctx := numeric.MaxKind(m.kind, s.Kind()), numeric.MinContext(m.ctx, s.Context())
	switch {
	case s.IsZero():
		return &Zero{rows: m.n, cols: m.n, kind: kind, ctx: ctx}, nil
	case s.IsOne():
		return m, nil
	case m.n < o.cloneLimit:
		d := make([]numeric.Numeric, m.n)
		for i := range d {
			d[i] = s
		}

		return &Diagonal{d: d, kind: kind, ctx: ctx}, nil
	}

	o.logger.Debug("matrix: identity scaled lazily", "n", m.n, "cloneLimit", o.cloneLimit)
	zero := numeric.Zero(kind, ctx)

	return &Parametric{
		rows: m.n,
		cols: m.n,
		kind: kind,
		ctx:  ctx,
		gen: func(r, c int) (numeric.Numeric, error) {
			if r == c {
				return s, nil
			}

			return zero, nil
		},
	}, nil
}

func (m *Identity) mulRight(b Matrix, _ *Options) (Matrix, error) { return b, nil }
