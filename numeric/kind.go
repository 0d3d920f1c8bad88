// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
	"strconv"
)

// Kind is one level of the numeric tower. The order of the constants is the
// widening order: a value of kind k can always be represented by any kind > k.
type Kind uint8

const (
	KindInteger Kind = iota
	KindRational
	KindReal
	KindComplex
)

var kindNames = [...]string{"Integer", "Rational", "Real", "Complex"}

// String returns the kind name, or Kind(n) for values outside the tower.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the four tower kinds.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// MaxKind returns the wider of a and b.
func MaxKind(a, b Kind) Kind {
	if a > b {
		return a
	}

	return b
}

// DefaultPrecision is the mantissa size (bits) used when an exact value must be
// widened into a Real or Complex and no finite precision is in scope.
const DefaultPrecision uint = 256

// Context is the precision context governing inexact arithmetic.
// Precision == 0 means unlimited: the value is exact and never rounds.
type Context struct {
	Precision uint             // mantissa bits; 0 = unlimited
	Rounding  big.RoundingMode // rounding applied by inexact operations
}

var (
	// Unlimited is the context of exact kinds (Integer, Rational).
	Unlimited = Context{Rounding: big.ToNearestEven}

	// DefaultContext is used for Real values built without an explicit context.
	DefaultContext = Context{Precision: DefaultPrecision, Rounding: big.ToNearestEven}
)

// IsUnlimited reports whether c carries no precision bound.
func (c Context) IsUnlimited() bool { return c.Precision == 0 }

// bits returns the precision to use when materializing a big.Float under c.
func (c Context) bits() uint {
	if c.Precision == 0 {
		return DefaultPrecision
	}

	return c.Precision
}

// String renders the context for diagnostics.
func (c Context) String() string {
	if c.IsUnlimited() {
		return "unlimited"
	}

	return fmt.Sprintf("%d bits, %s", c.Precision, c.Rounding)
}

// MinContext returns the weaker of two contexts: the smaller finite precision
// wins and Unlimited acts as the identity. Results derived from several
// operands carry the fold of MinContext over all of them.
func MinContext(a, b Context) Context {
	switch {
	case a.IsUnlimited():
		return b
	case b.IsUnlimited():
		return a
	case b.Precision < a.Precision:
		return b
	default:
		return a
	}
}
