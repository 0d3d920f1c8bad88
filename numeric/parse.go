// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse reads a literal as the narrowest kind that represents it:
//
//	"42", "-7"        → Integer
//	"3/4"             → Rational (lowest terms; "4/2" stays Rational 2)
//	"0.5", "1e-3"     → Real at DefaultPrecision, exact when the decimal is a dyadic fraction
//
// Anything else fails with ErrParse.
func Parse(s string) (Numeric, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrParse)
	}

	if n, ok := new(big.Int).SetString(lit, 10); ok {
		return &Integer{v: n}, nil
	}

	if strings.Contains(lit, "/") {
		r, ok := new(big.Rat).SetString(lit)
		if !ok {
			return nil, fmt.Errorf("Parse(%q): %w", s, ErrParse)
		}

		return &Rational{v: r}, nil
	}

	f, _, err := big.ParseFloat(lit, 10, DefaultPrecision, big.ToNearestEven)
	if err != nil || f.IsInf() {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrParse)
	}
	exact := false
	if want, ok := new(big.Rat).SetString(lit); ok {
		got, _ := f.Rat(nil)
		exact = got.Cmp(want) == 0
	}

	return &Real{v: f, exact: exact}, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Numeric {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}
