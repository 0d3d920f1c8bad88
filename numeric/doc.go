// SPDX-License-Identifier: MIT

// Package numeric is the scalar layer underneath the matrix engine.
//
// Purpose:
//   - Provide one arithmetic contract (Numeric) over a closed tower of kinds:
//     Integer < Rational < Real < Complex.
//   - Track exactness and the precision Context of every value so that derived
//     results (sums, products, determinants) report the weakest precision that
//     contributed to them.
//   - Dispatch on an explicit Kind enumeration, with one conversion step per
//     adjacent kind pair (Convert).
//
// Policy:
//   - Binary operations first widen both operands to the wider kind; widening
//     never fails. Integer ÷ Integer produces a Rational.
//   - Narrowing (Coerce/Convert to a lower kind) succeeds only when lossless and
//     otherwise returns a *CoercionError carrying the offending value.
//   - Values are immutable: every operation allocates a fresh result.
//
// Complexity quicksheet:
//   - Integer/Rational ops: arbitrary precision, cost grows with digit count.
//   - Real/Complex ops: bounded by Context.Precision bits.
//
// AI-Hints:
//   - Build values with NewInteger/NewRational/NewReal or Parse.
//   - Use Zero/One to synthesize identities of a given kind (e.g. off-diagonal
//     entries of structured matrices).
package numeric
