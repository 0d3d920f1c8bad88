// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the exact kernels, using
// deterministic random Integer matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
)

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkN numeric.Numeric
)

func BenchmarkMul(b *testing.B) {
	for _, n := range []int{16, 32, 64} {
		x := mustRandom(b, 1, n, n)
		y := mustRandom(b, 2, n, n)
		b.Run(fmt.Sprintf("recursive/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		b.Run(fmt.Sprintf("naive/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := matrix.NaiveMul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	for _, n := range []int{5, 7} {
		m := mustRandom(b, 3, n, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkN = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	m := mustInts(b, [][]int64{{2, 1, 0, 0, 1}, {1, 3, 1, 0, 0}, {0, 1, 4, 1, 0}, {0, 0, 1, 5, 1}, {1, 0, 0, 1, 6}})
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				inv, err := matrix.Inverse(m, matrix.WithWorkers(w))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}

func BenchmarkViewAt(b *testing.B) {
	v, err := matrix.NewView(mustRandom(b, 4, 64, 64))
	if err != nil {
		b.Fatal(err)
	}
	for k := 0; k < 16; k++ {
		if err := v.RemoveRow(2 * k); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, err := v.At(i%v.Rows(), i%v.Cols())
		if err != nil {
			b.Fatal(err)
		}
		sinkN = x
	}
}
