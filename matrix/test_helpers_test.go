// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures.
//
// Purpose:
//   - Build small exact matrices from literal tables.
//   - Provide wrappers that hide capabilities so generic kernels run.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
)

// hide wraps any Matrix to mask its concrete type, so code under test takes
// the generic path instead of a representation fast path.
type hide struct{ matrix.Matrix }

// liar declares Integer whatever its entries hold, for coercion failures.
type liar struct{ matrix.Matrix }

func (liar) Kind() numeric.Kind { return numeric.KindInteger }

func intN(n int64) numeric.Numeric { return numeric.NewInteger(n) }

func ratN(n, d int64) numeric.Numeric { return numeric.MustRational(n, d) }

// mustInts builds an Integer Dense or fails the test.
func mustInts(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInt64s(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads one element or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, r, c int) numeric.Numeric {
	t.Helper()
	x, err := m.At(r, c)
	require.NoError(t, err)

	return x
}

// requireEqualMatrix compares representation-independently and prints both on failure.
func requireEqualMatrix(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.Equal(want, got), "want:\n%s\ngot:\n%s", matrix.Format(want), matrix.Format(got))
}

// randomInts returns an r×c table of integers in [-span, span], seeded for determinism.
func randomInts(seed int64, r, c int, span int64) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int64, r)
	for i := range out {
		out[i] = make([]int64, c)
		for j := range out[i] {
			out[i][j] = rng.Int63n(2*span+1) - span
		}
	}

	return out
}

// mustRandom builds a seeded random Integer Dense.
func mustRandom(t testing.TB, seed int64, r, c int) *matrix.Dense {
	t.Helper()

	return mustInts(t, randomInts(seed, r, c, 9))
}
