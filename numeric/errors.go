// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; call sites wrap with context.
var (
	// ErrDivisionByZero is returned by Div and Inverse for a zero divisor.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrCoercion marks a narrowing conversion that would lose information.
	ErrCoercion = errors.New("numeric: lossy coercion")

	// ErrParse is returned when a literal cannot be read as any kind.
	ErrParse = errors.New("numeric: cannot parse value")

	// ErrNotFinite rejects NaN and ±Inf float64 inputs.
	ErrNotFinite = errors.New("numeric: value is not finite")

	// ErrUnknownKind is returned for a Kind outside the tower.
	ErrUnknownKind = errors.New("numeric: unknown kind")
)

// CoercionError reports a failed narrowing together with the value that could
// not be represented, so that callers can log the intermediate result.
type CoercionError struct {
	Value  Numeric // value that failed to convert
	Target Kind    // requested kind
}

// Error implements error.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("numeric: cannot coerce %s %s to %s without loss", e.Value.Kind(), e.Value, e.Target)
}

// Unwrap lets errors.Is(err, ErrCoercion) match.
func (e *CoercionError) Unwrap() error { return ErrCoercion }
