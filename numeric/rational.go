// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
)

// Rational is an exact fraction kept in lowest terms.
type Rational struct {
	v *big.Rat
}

// NewRational returns num/den, or ErrDivisionByZero when den is zero.
func NewRational(num, den int64) (*Rational, error) {
	if den == 0 {
		return nil, fmt.Errorf("NewRational(%d, %d): %w", num, den, ErrDivisionByZero)
	}

	return &Rational{v: big.NewRat(num, den)}, nil
}

// MustRational is NewRational for literals known to be valid; it panics on a zero denominator.
func MustRational(num, den int64) *Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// NewRationalFromBig copies r into a new Rational.
func NewRationalFromBig(r *big.Rat) *Rational { return &Rational{v: new(big.Rat).Set(r)} }

// Big returns a copy of the underlying fraction.
func (x *Rational) Big() *big.Rat { return new(big.Rat).Set(x.v) }

func (x *Rational) Kind() Kind { return KindRational }
func (x *Rational) Add(o Numeric) Numeric { return Add(x, o) }
func (x *Rational) Sub(o Numeric) Numeric { return Sub(x, o) }
func (x *Rational) Mul(o Numeric) Numeric { return Mul(x, o) }
func (x *Rational) Div(o Numeric) (Numeric, error) { return Div(x, o) }
func (x *Rational) Neg() Numeric { return &Rational{v: new(big.Rat).Neg(x.v)} }
func (x *Rational) Inverse() (Numeric, error) { return Div(NewInteger(1), x) }
func (x *Rational) IsZero() bool { return x.v.Sign() == 0 }
func (x *Rational) IsOne() bool { return x.v.IsInt() && x.v.Num().IsInt64() && x.v.Num().Int64() == 1 }
func (x *Rational) IsExact() bool { return true }
func (x *Rational) Context() Context { return Unlimited }
func (x *Rational) Equal(o Numeric) bool { return Equal(x, o) }
func (x *Rational) Coerce(k Kind) (Numeric, error) { return Convert(x, k, Unlimited) }

// String renders integers without a denominator and fractions as "n/d".
func (x *Rational) String() string { return x.v.RatString() }

func (x *Rational) up(ctx Context) Numeric {
	f := newFloat(ctx.bits(), ctx.Rounding).SetRat(x.v)

	return &Real{v: f, exact: f.Acc() == big.Exact}
}

func (x *Rational) down() (Numeric, bool) {
	if !x.v.IsInt() {
		return nil, false
	}

	return &Integer{v: new(big.Int).Set(x.v.Num())}, true
}

func (x *Rational) add(o Numeric) Numeric { return &Rational{v: new(big.Rat).Add(x.v, o.(*Rational).v)} }
func (x *Rational) sub(o Numeric) Numeric { return &Rational{v: new(big.Rat).Sub(x.v, o.(*Rational).v)} }
func (x *Rational) mul(o Numeric) Numeric { return &Rational{v: new(big.Rat).Mul(x.v, o.(*Rational).v)} }
func (x *Rational) quo(o Numeric) Numeric { return &Rational{v: new(big.Rat).Quo(x.v, o.(*Rational).v)} }
func (x *Rational) eq(o Numeric) bool { return x.v.Cmp(o.(*Rational).v) == 0 }
