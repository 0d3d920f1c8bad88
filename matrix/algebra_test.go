// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
)

func TestAddSub_FastPathMatchesGeneric(t *testing.T) {
	a := mustRandom(t, 1, 3, 4)
	b := mustRandom(t, 2, 3, 4)

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.IsType(t, &matrix.Dense{}, fast)
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	requireEqualMatrix(t, slow, fast)

	diff, err := matrix.Sub(fast, b)
	require.NoError(t, err)
	requireEqualMatrix(t, a, diff)

	neg, err := matrix.Neg(a)
	require.NoError(t, err)
	zero, err := matrix.Add(a, neg)
	require.NoError(t, err)
	requireEqualMatrix(t, mustZero(t, 3, 4), zero)

	_, err = matrix.Add(a, mustRandom(t, 3, 4, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_ColumnarFastPath(t *testing.T) {
	rows := randomInts(9, 3, 3, 4)
	c := mustColumnar(t, rows)
	sum, err := matrix.Add(c, c)
	require.NoError(t, err)
	require.IsType(t, &matrix.Columnar{}, sum)
	twice, err := matrix.Scale(mustInts(t, rows), intN(2))
	require.NoError(t, err)
	requireEqualMatrix(t, twice, sum)
}

func TestScale_PromotesKind(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 2}, {3, 4}})
	s, err := matrix.Scale(a, ratN(1, 3))
	require.NoError(t, err)
	require.Equal(t, numeric.KindRational, s.Kind())
	require.Equal(t, "[1/3 2/3]\n[1 4/3]", matrix.Format(s))

	_, err = matrix.Scale(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilValue)

	generic, err := matrix.Scale(hide{a}, ratN(1, 3))
	require.NoError(t, err)
	requireEqualMatrix(t, s, generic)
}

func TestTrace(t *testing.T) {
	tr, err := matrix.Trace(mustInts(t, [][]int64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, "5", tr.String())

	s, err := matrix.NewSingleton(ratN(2, 7))
	require.NoError(t, err)
	tr, err = matrix.Trace(s)
	require.NoError(t, err)
	require.Equal(t, "2/7", tr.String())

	_, err = matrix.Trace(mustInts(t, [][]int64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestPredicates(t *testing.T) {
	up := mustInts(t, [][]int64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}})
	require.True(t, matrix.IsUpperTriangular(up))
	require.False(t, matrix.IsLowerTriangular(up))
	require.True(t, matrix.IsTriangular(up))

	low, err := matrix.Transpose(up)
	require.NoError(t, err)
	require.True(t, matrix.IsLowerTriangular(low))
	require.False(t, matrix.IsUpperTriangular(low))

	require.False(t, matrix.IsTriangular(mustInts(t, [][]int64{{1, 2}, {3, 4}})))
	require.False(t, matrix.IsUpperTriangular(mustInts(t, [][]int64{{1, 2}})))
	require.False(t, matrix.IsUpperTriangular(nil))

	sym := mustInts(t, [][]int64{{1, 7}, {7, 2}})
	require.True(t, matrix.IsSymmetric(sym))
	require.False(t, matrix.IsSymmetric(up))
	require.False(t, matrix.IsSymmetric(mustInts(t, [][]int64{{1, 2}})))
}

func TestRowOfColOf(t *testing.T) {
	p, err := matrix.NewParametric(2, 3, func(r, c int) (numeric.Numeric, error) {
		return numeric.NewInteger(int64(10*r + c)), nil
	})
	require.NoError(t, err)

	row, err := matrix.RowOf(p, 1)
	require.NoError(t, err)
	require.Equal(t, "[10 11 12]", row.String())
	col, err := matrix.ColOf(p, 2)
	require.NoError(t, err)
	require.Equal(t, "[2 12]ᵀ", col.String())

	_, err = matrix.RowOf(p, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ColOf(p, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.RowOf(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowOfColOf_TagStoredVectorErrors(t *testing.T) {
	d := mustInts(t, [][]int64{{1, 2}, {3, 4}})

	_, err := matrix.RowOf(d, 9)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "RowOf")

	c := mustColumnar(t, [][]int64{{1, 2}, {3, 4}})
	_, err = matrix.ColOf(c, 9)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "ColOf")
}

func TestEmptyRows_KeepColumnCount(t *testing.T) {
	v, err := matrix.NewSubMatrix(tagged(t, 4), 0, 0, -1, 2)
	require.NoError(t, err)
	require.Equal(t, 0, v.Rows())
	require.Equal(t, 3, v.Cols())

	d, err := matrix.Materialize(v)
	require.NoError(t, err)
	require.Equal(t, 0, d.Rows())
	require.Equal(t, 3, d.Cols())
	require.True(t, matrix.Equal(v, d))

	tr, err := matrix.Transpose(d)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 0, tr.Cols())

	b := mustInts(t, [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})
	cases := map[string]func() (matrix.Matrix, error){
		"mul":          func() (matrix.Matrix, error) { return matrix.Mul(v, b) },
		"add":          func() (matrix.Matrix, error) { return matrix.Add(v, v) },
		"add hidden":   func() (matrix.Matrix, error) { return matrix.Add(hide{v}, hide{v}) },
		"scale":        func() (matrix.Matrix, error) { return matrix.Scale(v, intN(2)) },
		"scale hidden": func() (matrix.Matrix, error) { return matrix.Scale(hide{v}, intN(2)) },
		"mul diagonal": func() (matrix.Matrix, error) { return matrix.Mul(v, mustDiagonal(t, 1, 2, 3)) },
	}
	want := map[string][2]int{
		"mul":          {0, 4},
		"add":          {0, 3},
		"add hidden":   {0, 3},
		"scale":        {0, 3},
		"scale hidden": {0, 3},
		"mul diagonal": {0, 3},
	}
	for name, run := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := run()
			require.NoError(t, err)
			require.Equal(t, want[name][0], m.Rows())
			require.Equal(t, want[name][1], m.Cols())
		})
	}

	empty := mustDiagonal(t)
	m, err := matrix.Mul(empty, mustZero(t, 0, 4))
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 4, m.Cols())
}

func TestMaterialize_WidensToElementKinds(t *testing.T) {
	// declared Integer, but one generated element is Rational
	p, err := matrix.NewParametric(2, 2, func(r, c int) (numeric.Numeric, error) {
		if r == 1 && c == 1 {
			return numeric.MustRational(1, 2), nil
		}
		return numeric.NewInteger(1), nil
	})
	require.NoError(t, err)
	require.Equal(t, numeric.KindInteger, p.Kind())

	d, err := matrix.Materialize(p)
	require.NoError(t, err)
	require.Equal(t, numeric.KindRational, d.Kind())
	requireEqualMatrix(t, p, d)

	_, err = matrix.Materialize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFormat(t *testing.T) {
	require.Equal(t, "<nil>", matrix.Format(nil))
	require.Equal(t, "", matrix.Format(mustZero(t, 0, 0)))
	require.Equal(t, "[1 0]\n[0 1]", matrix.Format(mustIdentity(t, 2)))
}

func TestValidators(t *testing.T) {
	a := mustRandom(t, 1, 2, 3)
	require.NoError(t, matrix.ValidateNotNil(a))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var typedNil *matrix.Diagonal
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateIndex(a, 2, 0), matrix.ErrOutOfRange)
	require.NoError(t, matrix.ValidateIndex(a, 1, 2))
	require.ErrorIs(t, matrix.ValidateSameShape(a, mustRandom(t, 2, 3, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(a, mustRandom(t, 2, 3, 2)))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNotNil(nil), matrix.ErrNilMatrix)
}
