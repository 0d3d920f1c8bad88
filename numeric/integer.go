// SPDX-License-Identifier: MIT

package numeric

import "math/big"

// Integer is an arbitrary-precision whole number. Always exact.
type Integer struct {
	v *big.Int
}

// NewInteger returns the Integer n.
func NewInteger(n int64) *Integer { return &Integer{v: big.NewInt(n)} }

// NewIntegerFromBig copies n into a new Integer.
func NewIntegerFromBig(n *big.Int) *Integer { return &Integer{v: new(big.Int).Set(n)} }

// Big returns a copy of the underlying value.
func (x *Integer) Big() *big.Int { return new(big.Int).Set(x.v) }

// Int64 returns the value and whether it fits into an int64.
func (x *Integer) Int64() (int64, bool) { return x.v.Int64(), x.v.IsInt64() }

func (x *Integer) Kind() Kind { return KindInteger }
func (x *Integer) Add(o Numeric) Numeric { return Add(x, o) }
func (x *Integer) Sub(o Numeric) Numeric { return Sub(x, o) }
func (x *Integer) Mul(o Numeric) Numeric { return Mul(x, o) }
func (x *Integer) Div(o Numeric) (Numeric, error) { return Div(x, o) }
func (x *Integer) Neg() Numeric { return &Integer{v: new(big.Int).Neg(x.v)} }
func (x *Integer) Inverse() (Numeric, error) { return Div(NewInteger(1), x) }
func (x *Integer) IsZero() bool { return x.v.Sign() == 0 }
func (x *Integer) IsOne() bool { return x.v.IsInt64() && x.v.Int64() == 1 }
func (x *Integer) IsExact() bool { return true }
func (x *Integer) Context() Context { return Unlimited }
func (x *Integer) Equal(o Numeric) bool { return Equal(x, o) }
func (x *Integer) String() string { return x.v.String() }

func (x *Integer) Coerce(k Kind) (Numeric, error) { return Convert(x, k, Unlimited) }

func (x *Integer) up(Context) Numeric { return &Rational{v: new(big.Rat).SetInt(x.v)} }
func (x *Integer) down() (Numeric, bool) { return nil, false }
func (x *Integer) add(o Numeric) Numeric { return &Integer{v: new(big.Int).Add(x.v, o.(*Integer).v)} }
func (x *Integer) sub(o Numeric) Numeric { return &Integer{v: new(big.Int).Sub(x.v, o.(*Integer).v)} }
func (x *Integer) mul(o Numeric) Numeric { return &Integer{v: new(big.Int).Mul(x.v, o.(*Integer).v)} }
func (x *Integer) eq(o Numeric) bool { return x.v.Cmp(o.(*Integer).v) == 0 }

// quo divides exactly; the quotient of two integers is always a Rational.
func (x *Integer) quo(o Numeric) Numeric {
	return &Rational{v: new(big.Rat).SetFrac(x.v, o.(*Integer).v)}
}
