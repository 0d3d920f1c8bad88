// SPDX-License-Identifier: MIT

// Package vector provides the row/column vector used as the storage unit of
// dense matrices and as the result type of row and column extraction.
//
// A Vector is an ordered sequence of numeric.Numeric values with an
// Orientation. Vectors obtained from matrix views are read-only: Set and
// Append on them fail with ErrReadOnly. Elements are immutable values, so a
// read-only alias never observes a torn write.
package vector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/numeric"
)

// Orientation tells whether a vector is laid out as a row or as a column.
type Orientation uint8

const (
	Row Orientation = iota
	Column
)

// String returns "row" or "column".
func (o Orientation) String() string {
	if o == Column {
		return "column"
	}

	return "row"
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Column {
		return Row
	}

	return Column
}

var (
	// ErrOutOfRange is returned for an index outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrLengthMismatch is returned when two operands differ in length.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrReadOnly is returned when mutating a view-derived vector.
	ErrReadOnly = errors.New("vector: read-only vector")

	// ErrNilElement rejects nil entries at construction and on Set/Append.
	ErrNilElement = errors.New("vector: nil element")
)

// Vector is an oriented sequence of numeric values.
type Vector struct {
	elems    []numeric.Numeric
	orient   Orientation
	readOnly bool
}

// New copies elems into a vector with the given orientation.
func New(o Orientation, elems ...numeric.Numeric) (*Vector, error) {
	for i, e := range elems {
		if e == nil {
			return nil, fmt.Errorf("New: element %d: %w", i, ErrNilElement)
		}
	}
	cp := make([]numeric.Numeric, len(elems))
	copy(cp, elems)

	return &Vector{elems: cp, orient: o}, nil
}

// NewRow is New(Row, elems...).
func NewRow(elems ...numeric.Numeric) (*Vector, error) { return New(Row, elems...) }

// NewColumn is New(Column, elems...).
func NewColumn(elems ...numeric.Numeric) (*Vector, error) { return New(Column, elems...) }

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.elems) }

// Orientation returns the layout of v.
func (v *Vector) Orientation() Orientation { return v.orient }

// IsReadOnly reports whether v rejects mutation.
func (v *Vector) IsReadOnly() bool { return v.readOnly }

// At returns element i.
func (v *Vector) At(i int) (numeric.Numeric, error) {
	if i < 0 || i >= len(v.elems) {
		return nil, fmt.Errorf("At(%d) on length %d: %w", i, len(v.elems), ErrOutOfRange)
	}

	return v.elems[i], nil
}

// Set replaces element i in place.
func (v *Vector) Set(i int, x numeric.Numeric) error {
	switch {
	case v.readOnly:
		return fmt.Errorf("Set(%d): %w", i, ErrReadOnly)
	case x == nil:
		return fmt.Errorf("Set(%d): %w", i, ErrNilElement)
	case i < 0 || i >= len(v.elems):
		return fmt.Errorf("Set(%d) on length %d: %w", i, len(v.elems), ErrOutOfRange)
	}
	v.elems[i] = x

	return nil
}

// Append extends v in place.
func (v *Vector) Append(x numeric.Numeric) error {
	if v.readOnly {
		return fmt.Errorf("Append: %w", ErrReadOnly)
	}
	if x == nil {
		return fmt.Errorf("Append: %w", ErrNilElement)
	}
	v.elems = append(v.elems, x)

	return nil
}

// Appended returns a new writable vector equal to v followed by x; v is untouched.
func (v *Vector) Appended(x numeric.Numeric) (*Vector, error) {
	if x == nil {
		return nil, fmt.Errorf("Appended: %w", ErrNilElement)
	}
	cp := make([]numeric.Numeric, len(v.elems), len(v.elems)+1)
	copy(cp, v.elems)

	return &Vector{elems: append(cp, x), orient: v.orient}, nil
}

// Dot returns Σ v[i]·w[i]. Orientation is ignored; the empty product is Integer 0.
func (v *Vector) Dot(w *Vector) (numeric.Numeric, error) {
	if len(v.elems) != len(w.elems) {
		return nil, fmt.Errorf("Dot: %d vs %d: %w", len(v.elems), len(w.elems), ErrLengthMismatch)
	}
	var acc numeric.Numeric = numeric.NewInteger(0)
	for i, x := range v.elems {
		acc = numeric.Add(acc, numeric.Mul(x, w.elems[i]))
	}

	return acc, nil
}

// Scale returns s·v as a new vector with v's orientation.
func (v *Vector) Scale(s numeric.Numeric) *Vector {
	out := make([]numeric.Numeric, len(v.elems))
	for i, x := range v.elems {
		out[i] = numeric.Mul(x, s)
	}

	return &Vector{elems: out, orient: v.orient}
}

// Add returns v + w elementwise with v's orientation.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if len(v.elems) != len(w.elems) {
		return nil, fmt.Errorf("Add: %d vs %d: %w", len(v.elems), len(w.elems), ErrLengthMismatch)
	}
	out := make([]numeric.Numeric, len(v.elems))
	for i, x := range v.elems {
		out[i] = numeric.Add(x, w.elems[i])
	}

	return &Vector{elems: out, orient: v.orient}, nil
}

// Transpose returns a writable copy with the opposite orientation.
func (v *Vector) Transpose() *Vector {
	cp := make([]numeric.Numeric, len(v.elems))
	copy(cp, v.elems)

	return &Vector{elems: cp, orient: v.orient.Flip()}
}

// View returns a read-only alias of v with orientation o. O(1); later
// in-place Set calls on v are visible through the view.
func (v *Vector) View(o Orientation) *Vector {
	return &Vector{elems: v.elems[:len(v.elems):len(v.elems)], orient: o, readOnly: true}
}

// Without returns a writable copy of v with element i removed.
func (v *Vector) Without(i int) (*Vector, error) {
	if i < 0 || i >= len(v.elems) {
		return nil, fmt.Errorf("Without(%d) on length %d: %w", i, len(v.elems), ErrOutOfRange)
	}
	out := make([]numeric.Numeric, 0, len(v.elems)-1)
	out = append(out, v.elems[:i]...)
	out = append(out, v.elems[i+1:]...)

	return &Vector{elems: out, orient: v.orient}, nil
}

// Kind returns the widest kind among the elements.
func (v *Vector) Kind() numeric.Kind { return numeric.Widest(v.elems...) }

// Context returns the weakest precision context among the elements.
func (v *Vector) Context() numeric.Context { return numeric.ContextOf(v.elems...) }

// Elements returns a copy of the element slice.
func (v *Vector) Elements() []numeric.Numeric {
	cp := make([]numeric.Numeric, len(v.elems))
	copy(cp, v.elems)

	return cp
}

// Equal reports element-wise numeric equality and matching orientation.
func (v *Vector) Equal(w *Vector) bool {
	if v.orient != w.orient || len(v.elems) != len(w.elems) {
		return false
	}
	for i, x := range v.elems {
		if !numeric.Equal(x, w.elems[i]) {
			return false
		}
	}

	return true
}

// String renders "[a b c]" for rows and "[a b c]ᵀ" for columns.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')
	if v.orient == Column {
		sb.WriteString("ᵀ")
	}

	return sb.String()
}
