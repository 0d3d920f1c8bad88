// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvnum/numeric"
)

const opNewSingleton = "NewSingleton"

// Singleton is the 1×1 matrix; every operation reduces to the scalar one.
type Singleton struct {
	v numeric.Numeric
}

// NewSingleton wraps v as a 1×1 matrix.
func NewSingleton(v numeric.Numeric) (*Singleton, error) {
	if v == nil {
		return nil, matrixErrorf(opNewSingleton, ErrNilValue)
	}

	return &Singleton{v: v}, nil
}

// Value returns the single element.
func (m *Singleton) Value() numeric.Numeric { return m.v }

func (m *Singleton) Rows() int { return 1 }
func (m *Singleton) Cols() int { return 1 }
func (m *Singleton) Kind() numeric.Kind { return m.v.Kind() }
func (m *Singleton) Context() numeric.Context { return m.v.Context() }
func (m *Singleton) String() string { return Format(m) }

func (m *Singleton) At(r, c int) (numeric.Numeric, error) {
	if err := ValidateIndex(m, r, c); err != nil {
		return nil, matrixErrorf("Singleton.At", err)
	}

	return m.v, nil
}

func (m *Singleton) determinant(*Options) (numeric.Numeric, error) { return m.v, nil }
func (m *Singleton) trace() numeric.Numeric { return m.v }
func (m *Singleton) transpose() Matrix { return m }
func (m *Singleton) upper() bool { return true }
func (m *Singleton) lower() bool { return true }

func (m *Singleton) inverse(*Options) (Matrix, error) {
	inv, err := m.v.Inverse()
	if err != nil {
		return nil, ErrSingular
	}

	return &Singleton{v: inv}, nil
}

func (m *Singleton) scale(s numeric.Numeric, _ *Options) (Matrix, error) {
	return &Singleton{v: numeric.Mul(m.v, s)}, nil
}

func (m *Singleton) add(b Matrix, _ *Options) (Matrix, error) {
	x, err := b.At(0, 0)
	if err != nil {
		return nil, err
	}

	return &Singleton{v: numeric.Add(m.v, x)}, nil
}

// mulRight scales the single row of b.
func (m *Singleton) mulRight(b Matrix, o *Options) (Matrix, error) {
	if b.Cols() == 1 {
		x, err := b.At(0, 0)
		if err != nil {
			return nil, err
		}

		return &Singleton{v: numeric.Mul(m.v, x)}, nil
	}

	return scaleOf(b, m.v, o)
}
