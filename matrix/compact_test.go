// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/vector"
)

func mustIdentity(t testing.TB, n int, opts ...matrix.Option) *matrix.Identity {
	t.Helper()
	id, err := matrix.NewIdentity(n, opts...)
	require.NoError(t, err)

	return id
}

func mustDiagonal(t testing.TB, values ...int64) *matrix.Diagonal {
	t.Helper()
	d := make([]numeric.Numeric, len(values))
	for i, v := range values {
		d[i] = intN(v)
	}
	m, err := matrix.NewDiagonal(d)
	require.NoError(t, err)

	return m
}

func TestIdentity_Structure(t *testing.T) {
	id := mustIdentity(t, 4)
	require.Equal(t, "1", mustAt(t, id, 2, 2).String())
	require.Equal(t, "0", mustAt(t, id, 2, 3).String())
	_, err := id.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	det, err := matrix.Determinant(id)
	require.NoError(t, err)
	require.True(t, det.IsOne())

	tr, err := matrix.Trace(id)
	require.NoError(t, err)
	require.Equal(t, "4", tr.String())

	inv, err := matrix.Inverse(id)
	require.NoError(t, err)
	require.Same(t, id, inv)

	tp, err := matrix.Transpose(id)
	require.NoError(t, err)
	require.Same(t, id, tp)
	require.True(t, matrix.IsUpperTriangular(id))
	require.True(t, matrix.IsSymmetric(id))

	_, err = matrix.NewIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Inverse(mustIdentity(t, 0))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestIdentity_ScaleRepresentations(t *testing.T) {
	id := mustIdentity(t, 5)

	zero, err := matrix.Scale(id, intN(0))
	require.NoError(t, err)
	require.IsType(t, &matrix.Zero{}, zero)
	z, err := matrix.NewZero(5, 5)
	require.NoError(t, err)
	requireEqualMatrix(t, z, zero)

	same, err := matrix.Scale(id, intN(1))
	require.NoError(t, err)
	require.Same(t, id, same)

	three, err := matrix.Scale(id, intN(3))
	require.NoError(t, err)
	require.IsType(t, &matrix.Diagonal{}, three)
	requireEqualMatrix(t, mustDiagonal(t, 3, 3, 3, 3, 3), three)

	lazy, err := matrix.Scale(id, ratN(1, 2), matrix.WithCloneLimit(5))
	require.NoError(t, err)
	require.IsType(t, &matrix.Parametric{}, lazy)
	require.Equal(t, numeric.KindRational, lazy.Kind())
	require.Equal(t, "1/2", mustAt(t, lazy, 4, 4).String())
	require.True(t, mustAt(t, lazy, 0, 4).IsZero())
}

func TestIdentity_MulReturnsOperand(t *testing.T) {
	a := mustRandom(t, 3, 4, 4)
	id := mustIdentity(t, 4)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	require.Same(t, a, left)

	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.Same(t, a, right)

	_, err = matrix.Mul(mustIdentity(t, 3), a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestZero_Behavior(t *testing.T) {
	z, err := matrix.NewZero(3, 2)
	require.NoError(t, err)
	a := mustRandom(t, 5, 2, 3)

	prod, err := matrix.Mul(a, z)
	require.NoError(t, err)
	require.IsType(t, &matrix.Zero{}, prod)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 2, prod.Cols())

	prod, err = matrix.Mul(z, a)
	require.NoError(t, err)
	require.IsType(t, &matrix.Zero{}, prod)
	require.Equal(t, 3, prod.Rows())
	require.Equal(t, 3, prod.Cols())

	zt, err := matrix.Transpose(z)
	require.NoError(t, err)
	sum, err := matrix.Add(zt, a)
	require.NoError(t, err)
	require.Same(t, a, sum)

	sum, err = matrix.Add(a, zt)
	require.NoError(t, err)
	require.Same(t, a, sum)

	sq, err := matrix.NewZero(3, 3)
	require.NoError(t, err)
	det, err := matrix.Determinant(sq)
	require.NoError(t, err)
	require.True(t, det.IsZero())
	_, err = matrix.Inverse(sq)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.True(t, matrix.IsTriangular(sq))
	require.False(t, matrix.IsTriangular(z))

	empty, err := matrix.NewZero(0, 0)
	require.NoError(t, err)
	det, err = matrix.Determinant(empty)
	require.NoError(t, err)
	require.True(t, det.IsOne())

	_, err = matrix.NewZero(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDiagonal_DeterminantAndInverse(t *testing.T) {
	d := mustDiagonal(t, 2, -3, 5)
	det, err := matrix.Determinant(d)
	require.NoError(t, err)
	require.Equal(t, "-30", det.String())

	tr, err := matrix.Trace(d)
	require.NoError(t, err)
	require.Equal(t, "4", tr.String())

	inv, err := matrix.Inverse(d)
	require.NoError(t, err)
	require.IsType(t, &matrix.Diagonal{}, inv)
	require.Equal(t, "1/2", mustAt(t, inv, 0, 0).String())
	require.Equal(t, "-1/3", mustAt(t, inv, 1, 1).String())

	prod, err := matrix.Mul(d, inv)
	require.NoError(t, err)
	requireEqualMatrix(t, mustIdentity(t, 3), prod)

	singular := mustDiagonal(t, 1, 0, 4)
	det, err = matrix.Determinant(singular)
	require.NoError(t, err)
	require.True(t, det.IsZero())
	_, err = matrix.Inverse(singular)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestDiagonal_MulScalesRowsAndColumns(t *testing.T) {
	d := mustDiagonal(t, 2, 3)
	a := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	rows, err := matrix.Mul(d, a)
	require.NoError(t, err)
	requireEqualMatrix(t, mustInts(t, [][]int64{{2, 4, 6}, {12, 15, 18}}), rows)

	naive, err := matrix.NaiveMul(d, a)
	require.NoError(t, err)
	requireEqualMatrix(t, naive, rows)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	cols, err := matrix.Mul(at, d)
	require.NoError(t, err)
	requireEqualMatrix(t, mustInts(t, [][]int64{{2, 12}, {4, 15}, {6, 18}}), cols)

	dd, err := matrix.Mul(d, mustDiagonal(t, 5, 7))
	require.NoError(t, err)
	require.IsType(t, &matrix.Diagonal{}, dd)
	requireEqualMatrix(t, mustDiagonal(t, 10, 21), dd)

	sum, err := matrix.Add(d, mustDiagonal(t, 1, 1))
	require.NoError(t, err)
	require.IsType(t, &matrix.Diagonal{}, sum)
	requireEqualMatrix(t, mustDiagonal(t, 3, 4), sum)
}

func TestSingleton_Behavior(t *testing.T) {
	s, err := matrix.NewSingleton(intN(4))
	require.NoError(t, err)
	require.Equal(t, "4", s.Value().String())

	inv, err := matrix.Inverse(s)
	require.NoError(t, err)
	require.Equal(t, "1/4", mustAt(t, inv, 0, 0).String())

	row := mustInts(t, [][]int64{{1, 2, 3}})
	prod, err := matrix.Mul(s, row)
	require.NoError(t, err)
	requireEqualMatrix(t, mustInts(t, [][]int64{{4, 8, 12}}), prod)

	col := mustInts(t, [][]int64{{1}, {2}})
	prod, err = matrix.Mul(col, s)
	require.NoError(t, err)
	requireEqualMatrix(t, mustInts(t, [][]int64{{4}, {8}}), prod)

	zero, err := matrix.NewSingleton(intN(0))
	require.NoError(t, err)
	_, err = matrix.Inverse(zero)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.NewSingleton(nil)
	require.ErrorIs(t, err, matrix.ErrNilValue)
}

func TestCompact_AppendUnsupported(t *testing.T) {
	row, err := vector.NewRow(intN(1), intN(2))
	require.NoError(t, err)
	for name, m := range map[string]matrix.Matrix{
		"identity": mustIdentity(t, 2),
		"diagonal": mustDiagonal(t, 1, 2),
	} {
		require.ErrorIs(t, matrix.AppendRow(m, row), matrix.ErrUnsupported, name)
		require.ErrorIs(t, matrix.AppendColumn(m, row), matrix.ErrUnsupported, name)
	}
	require.ErrorIs(t, matrix.AppendRow(nil, row), matrix.ErrNilMatrix)
}

func TestEqual_RepresentationIndependent(t *testing.T) {
	require.True(t, matrix.Equal(mustDiagonal(t, 1, 1, 1), mustIdentity(t, 3)))
	require.True(t, matrix.Equal(mustInts(t, [][]int64{{1, 0}, {0, 1}}), mustIdentity(t, 2)))
	require.False(t, matrix.Equal(mustIdentity(t, 2), mustIdentity(t, 3)))
	require.False(t, matrix.Equal(mustIdentity(t, 2), nil))
	require.True(t, matrix.Equal(nil, nil))

	var typedNil *matrix.Dense
	require.True(t, matrix.Equal(typedNil, nil))
}
