// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// Real is a binary floating-point value with a finite precision. The exact
// flag stays true while no operation that produced the value has rounded.
type Real struct {
	v     *big.Float
	exact bool
}

// NewReal copies f into a new Real. The copy keeps f's precision and rounding
// mode (a zero precision is replaced by DefaultPrecision) and is marked exact.
func NewReal(f *big.Float) *Real {
	prec := f.Prec()
	if prec == 0 {
		prec = DefaultPrecision
	}
	v := newFloat(prec, f.Mode()).Set(f)

	return &Real{v: v, exact: v.Acc() == big.Exact}
}

// FromFloat64 returns f as a 53-bit Real. NaN and ±Inf are rejected with ErrNotFinite.
func FromFloat64(f float64) (*Real, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("FromFloat64(%v): %w", f, ErrNotFinite)
	}

	return &Real{v: newFloat(53, big.ToNearestEven).SetFloat64(f), exact: true}, nil
}

// ToFloat64 returns the nearest float64 to x. Complex values with a non-zero
// imaginary part fail with a *CoercionError.
func ToFloat64(x Numeric) (float64, error) {
	r, err := Convert(x, KindReal, MinContext(x.Context(), DefaultContext))
	if err != nil {
		return 0, err
	}
	f, _ := r.(*Real).v.Float64()

	return f, nil
}

// Big returns a copy of the underlying float.
func (x *Real) Big() *big.Float { return new(big.Float).Copy(x.v) }

func (x *Real) Kind() Kind { return KindReal }
func (x *Real) Add(o Numeric) Numeric { return Add(x, o) }
func (x *Real) Sub(o Numeric) Numeric { return Sub(x, o) }
func (x *Real) Mul(o Numeric) Numeric { return Mul(x, o) }
func (x *Real) Div(o Numeric) (Numeric, error) { return Div(x, o) }
func (x *Real) Inverse() (Numeric, error) { return Div(NewInteger(1), x) }
func (x *Real) IsZero() bool { return x.v.Sign() == 0 }
func (x *Real) IsOne() bool { return x.v.Cmp(big.NewFloat(1)) == 0 }
func (x *Real) IsExact() bool { return x.exact }
func (x *Real) Equal(o Numeric) bool { return Equal(x, o) }
func (x *Real) String() string { return x.v.Text('g', -1) }

func (x *Real) Neg() Numeric {
	z := new(big.Float).Copy(x.v)

	return &Real{v: z.Neg(z), exact: x.exact}
}

func (x *Real) Context() Context {
	return Context{Precision: x.v.Prec(), Rounding: x.v.Mode()}
}

func (x *Real) Coerce(k Kind) (Numeric, error) { return Convert(x, k, x.Context()) }

func (x *Real) up(Context) Numeric {
	return &Complex{re: new(big.Float).Copy(x.v), im: newFloat(x.v.Prec(), x.v.Mode()), exact: x.exact}
}

// down yields the exact Rational only for values that never rounded.
func (x *Real) down() (Numeric, bool) {
	if !x.exact || x.v.IsInf() {
		return nil, false
	}
	r, _ := x.v.Rat(nil)

	return &Rational{v: r}, true
}

func (x *Real) add(o Numeric) Numeric {
	a := x.arith(o)

	return a.real(a.add(x.v, o.(*Real).v))
}

func (x *Real) sub(o Numeric) Numeric {
	a := x.arith(o)

	return a.real(a.sub(x.v, o.(*Real).v))
}

func (x *Real) mul(o Numeric) Numeric {
	a := x.arith(o)

	return a.real(a.mul(x.v, o.(*Real).v))
}

func (x *Real) quo(o Numeric) Numeric {
	a := x.arith(o)

	return a.real(a.quo(x.v, o.(*Real).v))
}

func (x *Real) eq(o Numeric) bool { return x.v.Cmp(o.(*Real).v) == 0 }

// arith prepares a rounding tracker for x op o at the weaker precision.
func (x *Real) arith(o Numeric) *floatArith {
	ctx := MinContext(x.Context(), o.Context())

	return &floatArith{prec: ctx.bits(), mode: ctx.Rounding, exact: x.exact && o.IsExact()}
}

// floatArith runs big.Float operations at a fixed precision and records
// whether any of them rounded.
type floatArith struct {
	prec  uint
	mode  big.RoundingMode
	exact bool
}

func (f *floatArith) note(z *big.Float) *big.Float {
	if z.Acc() != big.Exact {
		f.exact = false
	}

	return z
}

func (f *floatArith) add(a, b *big.Float) *big.Float {
	return f.note(newFloat(f.prec, f.mode).Add(a, b))
}

func (f *floatArith) sub(a, b *big.Float) *big.Float {
	return f.note(newFloat(f.prec, f.mode).Sub(a, b))
}

func (f *floatArith) mul(a, b *big.Float) *big.Float {
	return f.note(newFloat(f.prec, f.mode).Mul(a, b))
}

func (f *floatArith) quo(a, b *big.Float) *big.Float {
	return f.note(newFloat(f.prec, f.mode).Quo(a, b))
}

func (f *floatArith) real(z *big.Float) *Real { return &Real{v: z, exact: f.exact} }
