// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
)

// Numeric is the arithmetic capability every scalar offers to the matrix
// engine. The set of implementations is closed (*Integer, *Rational, *Real,
// *Complex); the unexported methods keep it sealed.
type Numeric interface {
	// Kind reports the tower level of the value.
	Kind() Kind

	Add(o Numeric) Numeric
	Sub(o Numeric) Numeric
	Mul(o Numeric) Numeric

	// Div returns ErrDivisionByZero when o is the additive identity.
	Div(o Numeric) (Numeric, error)

	Neg() Numeric

	// Inverse returns 1/x or ErrDivisionByZero.
	Inverse() (Numeric, error)

	// IsZero and IsOne test for the additive and multiplicative identities.
	IsZero() bool
	IsOne() bool

	// IsExact reports whether the value is known without rounding error.
	IsExact() bool

	// Context is the precision context of the value (Unlimited when exact kind).
	Context() Context

	// Coerce converts the value to kind k under its own context.
	// Narrowing that loses information yields a *CoercionError.
	Coerce(k Kind) (Numeric, error)

	// Equal compares numerically after widening both sides.
	Equal(o Numeric) bool

	fmt.Stringer

	up(ctx Context) Numeric // widen one level
	down() (Numeric, bool)  // narrow one level when lossless
	add(o Numeric) Numeric  // same-kind operand
	sub(o Numeric) Numeric  // same-kind operand
	mul(o Numeric) Numeric  // same-kind operand
	quo(o Numeric) Numeric  // same-kind, non-zero operand
	eq(o Numeric) bool      // same-kind operand
}

// promote widens a and b to their common kind under the weaker of their contexts.
func promote(a, b Numeric) (Numeric, Numeric) {
	k := MaxKind(a.Kind(), b.Kind())
	ctx := MinContext(a.Context(), b.Context())

	return widen(a, k, ctx), widen(b, k, ctx)
}

// widen lifts x to kind k one level at a time; it never fails.
func widen(x Numeric, k Kind, ctx Context) Numeric {
	for x.Kind() < k {
		x = x.up(ctx)
	}

	return x
}

// Add returns a + b in the wider kind of the two operands.
func Add(a, b Numeric) Numeric {
	x, y := promote(a, b)

	return x.add(y)
}

// Sub returns a - b in the wider kind of the two operands.
func Sub(a, b Numeric) Numeric {
	x, y := promote(a, b)

	return x.sub(y)
}

// Mul returns a * b in the wider kind of the two operands.
func Mul(a, b Numeric) Numeric {
	x, y := promote(a, b)

	return x.mul(y)
}

// Div returns a / b. Integer operands produce a Rational.
func Div(a, b Numeric) (Numeric, error) {
	if b.IsZero() {
		return nil, fmt.Errorf("Div(%s, %s): %w", a, b, ErrDivisionByZero)
	}
	x, y := promote(a, b)

	return x.quo(y), nil
}

// Equal reports whether a and b denote the same number, regardless of kind.
func Equal(a, b Numeric) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	x, y := promote(a, b)

	return x.eq(y)
}

// Convert returns x expressed as kind k. Widening uses ctx for the precision of
// Real/Complex results; narrowing must be lossless.
//
// Errors:
//   - ErrUnknownKind for k outside the tower.
//   - *CoercionError (matches ErrCoercion) when narrowing would lose information.
func Convert(x Numeric, k Kind, ctx Context) (Numeric, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("Convert(%s, %s): %w", x, k, ErrUnknownKind)
	}
	cur := widen(x, k, ctx)
	for cur.Kind() > k {
		next, ok := cur.down()
		if !ok {
			return nil, &CoercionError{Value: x, Target: k}
		}
		cur = next
	}

	return cur, nil
}

// Zero returns the additive identity of kind k. ctx sets the precision of
// Real and Complex results and is ignored for exact kinds.
func Zero(k Kind, ctx Context) Numeric {
	switch k {
	case KindRational:
		return &Rational{v: new(big.Rat)}
	case KindReal:
		return &Real{v: newFloat(ctx.bits(), ctx.Rounding), exact: true}
	case KindComplex:
		return &Complex{re: newFloat(ctx.bits(), ctx.Rounding), im: newFloat(ctx.bits(), ctx.Rounding), exact: true}
	default:
		return &Integer{v: new(big.Int)}
	}
}

// One returns the multiplicative identity of kind k (see Zero for ctx).
func One(k Kind, ctx Context) Numeric {
	switch k {
	case KindRational:
		return &Rational{v: big.NewRat(1, 1)}
	case KindReal:
		return &Real{v: newFloat(ctx.bits(), ctx.Rounding).SetInt64(1), exact: true}
	case KindComplex:
		return &Complex{re: newFloat(ctx.bits(), ctx.Rounding).SetInt64(1), im: newFloat(ctx.bits(), ctx.Rounding), exact: true}
	default:
		return &Integer{v: big.NewInt(1)}
	}
}

// Widest returns the widest kind among values (KindInteger when empty).
func Widest(values ...Numeric) Kind {
	k := KindInteger
	for _, v := range values {
		k = MaxKind(k, v.Kind())
	}

	return k
}

// ContextOf folds MinContext over the contexts of values (Unlimited when empty).
func ContextOf(values ...Numeric) Context {
	ctx := Unlimited
	for _, v := range values {
		ctx = MinContext(ctx, v.Context())
	}

	return ctx
}

// newFloat allocates a zero big.Float with the given precision and rounding.
func newFloat(prec uint, mode big.RoundingMode) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(mode)
}
