// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
)

// hilbertGen yields 1/(r+c+1).
func hilbertGen(r, c int) (numeric.Numeric, error) {
	return numeric.NewRational(1, int64(r+c+1))
}

func TestNewParametric_ProbesKind(t *testing.T) {
	p, err := matrix.NewParametric(3, 3, hilbertGen)
	require.NoError(t, err)
	require.Equal(t, numeric.KindRational, p.Kind())
	require.Equal(t, "1/5", mustAt(t, p, 2, 2).String())
	require.True(t, matrix.IsSymmetric(p))

	var calls atomic.Int32
	counting := func(r, c int) (numeric.Numeric, error) {
		calls.Add(1)
		return numeric.NewInteger(int64(r*10 + c)), nil
	}
	q, err := matrix.NewParametric(2, 2, counting,
		matrix.WithKind(numeric.KindInteger), matrix.WithContext(numeric.Unlimited))
	require.NoError(t, err)
	require.Zero(t, calls.Load(), "declared kind and context skip the probe")
	require.Equal(t, "11", mustAt(t, q, 1, 1).String())
	require.Equal(t, "11", mustAt(t, q, 1, 1).String())
	require.EqualValues(t, 2, calls.Load(), "nothing is cached")
}

func TestNewParametric_Errors(t *testing.T) {
	_, err := matrix.NewParametric(2, 2, nil)
	require.ErrorIs(t, err, matrix.ErrNilGenerator)

	_, err = matrix.NewParametric(-1, 2, hilbertGen)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	boom := errors.New("boom")
	failing := func(r, c int) (numeric.Numeric, error) {
		if r == 1 {
			return nil, boom
		}
		return numeric.NewInteger(1), nil
	}
	p, err := matrix.NewParametric(2, 2, failing)
	require.NoError(t, err)
	_, err = p.At(1, 0)
	require.ErrorIs(t, err, boom)
	_, err = matrix.Determinant(p)
	require.ErrorIs(t, err, boom)

	_, err = matrix.NewParametric(1, 1, func(int, int) (numeric.Numeric, error) { return nil, nil })
	require.ErrorIs(t, err, matrix.ErrNilValue)

	_, err = p.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestParametric_LazyOperations(t *testing.T) {
	p, err := matrix.NewParametric(2, 3, func(r, c int) (numeric.Numeric, error) {
		return numeric.NewInteger(int64(r*3 + c)), nil
	})
	require.NoError(t, err)

	scaled, err := matrix.Scale(p, intN(2))
	require.NoError(t, err)
	require.IsType(t, &matrix.Parametric{}, scaled)
	requireEqualMatrix(t, mustInts(t, [][]int64{{0, 2, 4}, {6, 8, 10}}), scaled)

	sum, err := matrix.Add(p, p)
	require.NoError(t, err)
	require.IsType(t, &matrix.Parametric{}, sum)
	requireEqualMatrix(t, scaled, sum)

	tr, err := matrix.Transpose(p)
	require.NoError(t, err)
	require.IsType(t, &matrix.Parametric{}, tr)
	requireEqualMatrix(t, mustInts(t, [][]int64{{0, 3}, {1, 4}, {2, 5}}), tr)

	neg, err := matrix.Neg(p)
	require.NoError(t, err)
	diff, err := matrix.Sub(neg, scaled)
	require.NoError(t, err)
	requireEqualMatrix(t, mustInts(t, [][]int64{{0, -3, -6}, {-9, -12, -15}}), diff)

	d, err := matrix.Materialize(p)
	require.NoError(t, err)
	requireEqualMatrix(t, p, d)
	require.Equal(t, numeric.KindInteger, d.Kind())
}

func TestPad(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 2}, {3, 4}})
	p, err := matrix.Pad(a, 3, 4, intN(0))
	require.NoError(t, err)
	requireEqualMatrix(t, mustInts(t, [][]int64{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 0, 0},
	}), p)

	_, err = matrix.Pad(a, 1, 4, intN(0))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Pad(a, 3, 3, nil)
	require.ErrorIs(t, err, matrix.ErrNilValue)
	_, err = matrix.Pad(nil, 3, 3, intN(0))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func ints(values ...int64) []numeric.Numeric {
	out := make([]numeric.Numeric, len(values))
	for i, v := range values {
		out[i] = intN(v)
	}

	return out
}

func TestCauchy_ClosedFormDeterminant(t *testing.T) {
	// x = 0,1,2 and y = 1,2,3 give the 3×3 Hilbert matrix.
	c, err := matrix.NewCauchy(ints(0, 1, 2), ints(1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, numeric.KindRational, c.Kind())

	h, err := matrix.NewParametric(3, 3, hilbertGen)
	require.NoError(t, err)
	requireEqualMatrix(t, h, c)

	det, err := matrix.Determinant(c)
	require.NoError(t, err)
	require.Equal(t, "1/2160", det.String())

	generic, err := matrix.Determinant(hide{c})
	require.NoError(t, err)
	require.True(t, det.Equal(generic))

	for n := 1; n <= 5; n++ {
		x := make([]numeric.Numeric, n)
		y := make([]numeric.Numeric, n)
		for i := 0; i < n; i++ {
			x[i] = intN(int64(2*i + 1))
			y[i] = intN(int64(i*i + 1))
		}
		cn, err := matrix.NewCauchy(x, y)
		require.NoError(t, err)
		fast, err := matrix.Determinant(cn)
		require.NoError(t, err)
		slow, err := matrix.ExpandDeterminant(hide{cn}, false)
		require.NoError(t, err)
		require.Truef(t, fast.Equal(slow), "n=%d: %s vs %s", n, fast, slow)
	}
}

func TestCauchy_ExactInverse(t *testing.T) {
	c, err := matrix.NewCauchy(ints(1, 2, 3, 4), ints(0, 1, 2, 3))
	require.NoError(t, err)
	inv, err := matrix.Inverse(c)
	require.NoError(t, err)
	prod, err := matrix.Mul(c, inv)
	require.NoError(t, err)
	requireEqualMatrix(t, mustIdentity(t, 4), prod)
}

func TestCauchy_Errors(t *testing.T) {
	_, err := matrix.NewCauchy(ints(1, 2), ints(3, -2))
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)

	_, err = matrix.NewCauchy([]numeric.Numeric{nil}, ints(1))
	require.ErrorIs(t, err, matrix.ErrNilValue)

	// repeated x values make the matrix singular
	c, err := matrix.NewCauchy(ints(1, 1), ints(1, 2))
	require.NoError(t, err)
	det, err := matrix.Determinant(c)
	require.NoError(t, err)
	require.True(t, det.IsZero())
	_, err = matrix.Inverse(c)
	require.ErrorIs(t, err, matrix.ErrSingular)
}
