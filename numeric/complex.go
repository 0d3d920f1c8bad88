// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// Complex is re + im·i with both parts at the same finite precision.
type Complex struct {
	re, im *big.Float
	exact  bool
}

// NewComplex returns re + im·i at 53 bits. Non-finite parts fail with ErrNotFinite.
func NewComplex(re, im float64) (*Complex, error) {
	for _, f := range [2]float64{re, im} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("NewComplex(%v, %v): %w", re, im, ErrNotFinite)
		}
	}

	return &Complex{
		re:    newFloat(53, big.ToNearestEven).SetFloat64(re),
		im:    newFloat(53, big.ToNearestEven).SetFloat64(im),
		exact: true,
	}, nil
}

// NewComplexFromBig builds re + im·i at the smaller of the two precisions.
func NewComplexFromBig(re, im *big.Float) *Complex {
	ctx := MinContext(NewReal(re).Context(), NewReal(im).Context())
	a := &floatArith{prec: ctx.bits(), mode: ctx.Rounding, exact: true}
	r := a.note(newFloat(a.prec, a.mode).Set(re))
	i := a.note(newFloat(a.prec, a.mode).Set(im))

	return &Complex{re: r, im: i, exact: a.exact}
}

// Real returns a copy of the real part.
func (x *Complex) Real() *big.Float { return new(big.Float).Copy(x.re) }

// Imag returns a copy of the imaginary part.
func (x *Complex) Imag() *big.Float { return new(big.Float).Copy(x.im) }

func (x *Complex) Kind() Kind { return KindComplex }
func (x *Complex) Add(o Numeric) Numeric { return Add(x, o) }
func (x *Complex) Sub(o Numeric) Numeric { return Sub(x, o) }
func (x *Complex) Mul(o Numeric) Numeric { return Mul(x, o) }
func (x *Complex) Div(o Numeric) (Numeric, error) { return Div(x, o) }
func (x *Complex) Inverse() (Numeric, error) { return Div(NewInteger(1), x) }
func (x *Complex) IsZero() bool { return x.re.Sign() == 0 && x.im.Sign() == 0 }
func (x *Complex) IsOne() bool { return x.im.Sign() == 0 && x.re.Cmp(big.NewFloat(1)) == 0 }
func (x *Complex) IsExact() bool { return x.exact }
func (x *Complex) Equal(o Numeric) bool { return Equal(x, o) }

func (x *Complex) Neg() Numeric {
	re, im := new(big.Float).Copy(x.re), new(big.Float).Copy(x.im)

	return &Complex{re: re.Neg(re), im: im.Neg(im), exact: x.exact}
}

func (x *Complex) Context() Context {
	return Context{Precision: x.re.Prec(), Rounding: x.re.Mode()}
}

func (x *Complex) Coerce(k Kind) (Numeric, error) { return Convert(x, k, x.Context()) }

// String renders "a+bi" or "a-bi".
func (x *Complex) String() string {
	sign := "+"
	im := new(big.Float).Copy(x.im)
	if im.Signbit() {
		sign = "-"
		im.Abs(im)
	}

	return x.re.Text('g', -1) + sign + im.Text('g', -1) + "i"
}

// up is never reached: Complex is the top of the tower.
func (x *Complex) up(Context) Numeric { return x }

func (x *Complex) down() (Numeric, bool) {
	if x.im.Sign() != 0 {
		return nil, false
	}

	return &Real{v: new(big.Float).Copy(x.re), exact: x.exact}, true
}

func (x *Complex) add(o Numeric) Numeric {
	y := o.(*Complex)
	a := x.arith(y)

	return a.complex(a.add(x.re, y.re), a.add(x.im, y.im))
}

func (x *Complex) sub(o Numeric) Numeric {
	y := o.(*Complex)
	a := x.arith(y)

	return a.complex(a.sub(x.re, y.re), a.sub(x.im, y.im))
}

// mul: (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (x *Complex) mul(o Numeric) Numeric {
	y := o.(*Complex)
	a := x.arith(y)
	re := a.sub(a.mul(x.re, y.re), a.mul(x.im, y.im))
	im := a.add(a.mul(x.re, y.im), a.mul(x.im, y.re))

	return a.complex(re, im)
}

// quo: (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²).
func (x *Complex) quo(o Numeric) Numeric {
	y := o.(*Complex)
	a := x.arith(y)
	den := a.add(a.mul(y.re, y.re), a.mul(y.im, y.im))
	re := a.add(a.mul(x.re, y.re), a.mul(x.im, y.im))
	im := a.sub(a.mul(x.im, y.re), a.mul(x.re, y.im))

	return a.complex(a.quo(re, den), a.quo(im, den))
}

func (x *Complex) eq(o Numeric) bool {
	y := o.(*Complex)

	return x.re.Cmp(y.re) == 0 && x.im.Cmp(y.im) == 0
}

func (x *Complex) arith(y *Complex) *floatArith {
	ctx := MinContext(x.Context(), y.Context())

	return &floatArith{prec: ctx.bits(), mode: ctx.Rounding, exact: x.exact && y.exact}
}

func (f *floatArith) complex(re, im *big.Float) *Complex {
	return &Complex{re: re, im: im, exact: f.exact}
}
