// SPDX-License-Identifier: MIT
// Package matrix provides the representation-independent operations. Each one
// validates its operands, tries the representation's fast path through a
// capability interface and otherwise runs the generic algorithm written once
// against Matrix.
//
// Purpose:
//   - Define operation tags and the shared error wrapper.
//   - Keep every generic kernel in one place so fast paths can be tested
//     against it (wrap an operand in a type that hides its capabilities).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/vector"
)

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opNeg          = "Neg"
	opScale        = "Scale"
	opTranspose    = "Transpose"
	opTrace        = "Trace"
	opRowOf        = "RowOf"
	opColOf        = "ColOf"
	opAppendRow    = "AppendRow"
	opAppendColumn = "AppendColumn"
	opMaterialize  = "Materialize"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a + b.
//
// Fast paths: Dense+Dense and Columnar+Columnar add stored vectors,
// Diagonal+Diagonal stays Diagonal, Zero+b returns b, Parametric stays lazy,
// Aggregates with one layout add blockwise. Otherwise a Dense is built cell by cell.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	o := gatherOptions(opts...)
	m, err := addOf(a, b, &o)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return m, nil
}

// addOf dispatches a validated sum.
func addOf(a, b Matrix, o *Options) (Matrix, error) {
	if _, ok := b.(*Zero); ok {
		return a, nil
	}
	if ad, ok := a.(adder); ok {
		return ad.add(b, o)
	}

	return addGeneric(a, b, o)
}

// addGeneric builds a Dense of the cellwise sum.
func addGeneric(a, b Matrix, _ *Options) (Matrix, error) {
	rows := make([][]numeric.Numeric, a.Rows())
	for i := range rows {
		rows[i] = make([]numeric.Numeric, a.Cols())
		for j := range rows[i] {
			x, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			y, err := b.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = numeric.Add(x, y)
		}
	}

	return newDenseShaped(rows, a.Cols())
}

// Sub returns a - b, computed as a + (-1)·b so representation fast paths apply.
func Sub(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	o := gatherOptions(opts...)
	nb, err := scaleOf(b, numeric.NewInteger(-1), &o)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	m, err := addOf(a, nb, &o)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return m, nil
}

// Neg returns -m.
func Neg(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	o := gatherOptions(opts...)
	out, err := scaleOf(m, numeric.NewInteger(-1), &o)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return out, nil
}

// Scale returns s·m. Identity, Zero, Diagonal, Singleton and Parametric keep
// their representation (Identity may become Zero/Diagonal/Parametric); views
// either scale their backing or materialize when small.
func Scale(m Matrix, s numeric.Numeric, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if s == nil {
		return nil, matrixErrorf(opScale, ErrNilValue)
	}
	o := gatherOptions(opts...)
	out, err := scaleOf(m, s, &o)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return out, nil
}

func scaleOf(m Matrix, s numeric.Numeric, o *Options) (Matrix, error) {
	if sc, ok := m.(scaler); ok {
		return sc.scale(s, o)
	}
	rows := make([][]numeric.Numeric, m.Rows())
	for i := range rows {
		rows[i] = make([]numeric.Numeric, m.Cols())
		for j := range rows[i] {
			x, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = numeric.Mul(x, s)
		}
	}

	return newDenseShaped(rows, m.Cols())
}

// Transpose returns mᵀ. Dense and Columnar swap into each other sharing their
// vectors (O(n)); compact types return themselves or a mirrored shape; other
// matrices get a lazy Parametric reading m.At(c, r).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeOf(m), nil
}

func transposeOf(m Matrix) Matrix {
	if t, ok := m.(transposer); ok {
		return t.transpose()
	}

	return lazyTranspose(m)
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace(m Matrix) (numeric.Numeric, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opTrace, err)
	}
	if t, ok := m.(tracer); ok {
		return t.trace(), nil
	}
	var acc numeric.Numeric = numeric.Zero(m.Kind(), m.Context())
	for i := 0; i < m.Rows(); i++ {
		x, err := m.At(i, i)
		if err != nil {
			return nil, matrixErrorf(opTrace, err)
		}
		acc = numeric.Add(acc, x)
	}

	return acc, nil
}

// Equal reports whether a and b have equal shapes and numerically equal
// elements. The representations do not matter: a Diagonal equals the Dense
// holding the same values. Nil matrices equal only each other.
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, err := a.At(i, j)
			if err != nil {
				return false
			}
			y, err := b.At(i, j)
			if err != nil {
				return false
			}
			if !numeric.Equal(x, y) {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports whether m is square with zeros below the diagonal.
// Views memoize the answer until their next removal.
func IsUpperTriangular(m Matrix) bool {
	if isNil(m) {
		return false
	}
	if t, ok := m.(triangular); ok {
		return t.upper()
	}

	return scanUpper(m)
}

// IsLowerTriangular reports whether m is square with zeros above the diagonal.
func IsLowerTriangular(m Matrix) bool {
	if isNil(m) {
		return false
	}
	if t, ok := m.(triangular); ok {
		return t.lower()
	}

	return scanLower(m)
}

// IsTriangular is IsUpperTriangular || IsLowerTriangular.
func IsTriangular(m Matrix) bool { return IsUpperTriangular(m) || IsLowerTriangular(m) }

func scanUpper(m Matrix) bool {
	return scanTriangle(m, func(i, j int) bool { return i > j })
}

func scanLower(m Matrix) bool {
	return scanTriangle(m, func(i, j int) bool { return i < j })
}

// scanTriangle checks that every cell selected by outside is zero. Read
// errors count as "not triangular".
func scanTriangle(m Matrix, outside func(i, j int) bool) bool {
	if m.Rows() != m.Cols() {
		return false
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !outside(i, j) {
				continue
			}
			x, err := m.At(i, j)
			if err != nil || !x.IsZero() {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports whether m is square and equal to its transpose.
func IsSymmetric(m Matrix) bool {
	if isNil(m) || m.Rows() != m.Cols() {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		for j := i + 1; j < m.Cols(); j++ {
			x, err := m.At(i, j)
			if err != nil {
				return false
			}
			y, err := m.At(j, i)
			if err != nil || !numeric.Equal(x, y) {
				return false
			}
		}
	}

	return true
}

// RowOf returns row i as a vector. Representations that store rows return a
// read-only alias; others build a fresh vector.
func RowOf(m Matrix, i int) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowOf, err)
	}
	if rs, ok := m.(rowSource); ok {
		v, err := rs.Row(i)
		if err != nil {
			return nil, matrixErrorf(opRowOf, err)
		}

		return v, nil
	}
	if i < 0 || i >= m.Rows() {
		return nil, matrixErrorf(opRowOf, fmt.Errorf("row %d of %d: %w", i, m.Rows(), ErrOutOfRange))
	}
	elems := make([]numeric.Numeric, m.Cols())
	for j := range elems {
		x, err := m.At(i, j)
		if err != nil {
			return nil, matrixErrorf(opRowOf, err)
		}
		elems[j] = x
	}

	return vector.NewRow(elems...)
}

// ColOf returns column j as a vector (see RowOf).
func ColOf(m Matrix, j int) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColOf, err)
	}
	if cs, ok := m.(colSource); ok {
		v, err := cs.Col(j)
		if err != nil {
			return nil, matrixErrorf(opColOf, err)
		}

		return v, nil
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opColOf, fmt.Errorf("column %d of %d: %w", j, m.Cols(), ErrOutOfRange))
	}
	elems := make([]numeric.Numeric, m.Rows())
	for i := range elems {
		x, err := m.At(i, j)
		if err != nil {
			return nil, matrixErrorf(opColOf, err)
		}
		elems[i] = x
	}

	return vector.NewColumn(elems...)
}

// AppendRow appends v to m in place. Only Dense and Columnar grow;
// structurally fixed representations return ErrUnsupported.
func AppendRow(m Matrix, v *vector.Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opAppendRow, err)
	}
	ra, ok := m.(rowAppender)
	if !ok {
		return matrixErrorf(opAppendRow, fmt.Errorf("%T: %w", m, ErrUnsupported))
	}

	return ra.AppendRow(v)
}

// AppendColumn appends v to m in place (see AppendRow).
func AppendColumn(m Matrix, v *vector.Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opAppendColumn, err)
	}
	ca, ok := m.(colAppender)
	if !ok {
		return matrixErrorf(opAppendColumn, fmt.Errorf("%T: %w", m, ErrUnsupported))
	}

	return ca.AppendColumn(v)
}

// Materialize copies m into a new Dense with m's kind and context.
func Materialize(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}
	kind := m.Kind()
	rows := make([][]numeric.Numeric, m.Rows())
	for i := range rows {
		rows[i] = make([]numeric.Numeric, m.Cols())
		for j := range rows[i] {
			x, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMaterialize, err)
			}
			rows[i][j] = x
			kind = numeric.MaxKind(kind, x.Kind())
		}
	}
	d, err := newDenseShaped(rows, m.Cols(), WithKind(kind), WithContext(m.Context()))
	if err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}

	return d, nil
}

// Format renders m one bracketed row per line, e.g. "[1 2]\n[3 4]".
// Unreadable cells print as "?".
func Format(m Matrix) string {
	if isNil(m) {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			x, err := m.At(i, j)
			if err != nil {
				sb.WriteByte('?')

				continue
			}
			sb.WriteString(x.String())
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// minorOf returns m without row r and column c as a view. Views are
// duplicated so the caller's bookkeeping stays untouched.
func minorOf(m Matrix, r, c int) (*SubMatrix, error) {
	var v *SubMatrix
	if sm, ok := m.(*SubMatrix); ok {
		v = sm.Duplicate()
	} else {
		var err error
		if v, err = NewView(m); err != nil {
			return nil, err
		}
	}
	if err := v.RemoveRow(r); err != nil {
		return nil, err
	}
	if err := v.RemoveColumn(c); err != nil {
		return nil, err
	}

	return v, nil
}
