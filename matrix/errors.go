// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. No algorithm panics on user-triggered
// error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvnum/numeric"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with matrixErrorf(op, err); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> numeric failures
// (singular, coercion) -> structural limitations (ErrUnsupported).

var (
	// ErrInvalidDimensions is returned when a requested shape is negative, or
	// when an operation needs a non-empty matrix (inverse, gonum export).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside [0, dim).
	// Views also return it when index mapping resolves beyond the backing matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, Mul where a.Cols != b.Rows, or ragged constructor input.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the determinant (or an LU pivot) is the
	// additive identity.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUnsupported marks a structural operation the representation cannot
	// perform, e.g. appending a row to a Diagonal or a view.
	ErrUnsupported = errors.New("matrix: operation not supported by representation")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilGenerator rejects a Parametric matrix without a generator.
	ErrNilGenerator = errors.New("matrix: nil generator")

	// ErrNilValue is returned when a constructor input or a generator yields a nil scalar.
	ErrNilValue = errors.New("matrix: nil value")
)

// ErrCoercion is numeric.ErrCoercion re-exported for convenience: a determinant
// that cannot be expressed in the matrix's declared kind fails with a
// *numeric.CoercionError matching it.
var ErrCoercion = numeric.ErrCoercion
