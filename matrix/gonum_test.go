// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
)

func TestToGonum(t *testing.T) {
	q, err := matrix.NewDense([][]numeric.Numeric{{ratN(1, 4), intN(2)}, {intN(-3), ratN(5, 2)}})
	require.NoError(t, err)
	g, err := matrix.ToGonum(q)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 0.25, g.At(0, 0))
	require.Equal(t, 2.5, g.At(1, 1))

	_, err = matrix.ToGonum(mustZero(t, 0, 3))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := numeric.NewComplex(1, 1)
	require.NoError(t, err)
	s, err := matrix.NewSingleton(z)
	require.NoError(t, err)
	_, err = matrix.ToGonum(s)
	require.ErrorIs(t, err, matrix.ErrCoercion)
}

func TestFromGonum_RoundTrip(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{0.5, 1, -2, 3.25, 0, 7})
	d, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, numeric.KindReal, d.Kind())
	require.True(t, mustAt(t, d, 0, 0).IsExact())
	require.True(t, numeric.MustRational(13, 4).Equal(mustAt(t, d, 1, 0)))

	back, err := matrix.ToGonum(d)
	require.NoError(t, err)
	require.True(t, mat.Equal(g, back))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
