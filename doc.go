// Package lvnum is an exact, arbitrary-precision matrix engine: integers stay
// integers, fractions stay fractions, and floating point only appears when a
// caller asks for it.
//
// What is inside?
//
//	numeric/: the scalar tower Integer < Rational < Real < Complex, with
//	           promotion on every binary operation and lossless-only narrowing
//	vector/:  oriented (row/column) sequences of numeric values with
//	           read-only views
//	matrix/:  the Matrix contract and its representations:
//	           Dense (row-major), Columnar (column-major), Diagonal, Identity,
//	           Zero, Singleton, Parametric (generator-backed), Cauchy,
//	           SubMatrix (removable rows/columns over a backing matrix) and
//	           Aggregate (block matrix); plus Determinant, Inverse, Mul, LU and
//	           the gonum bridge
//
// Why exact?
//
//   - det and inverse of integer input are exact rationals, never rounded
//   - ill-conditioned families (Hilbert, Cauchy) can be inverted without loss
//   - results can be handed to gonum as float64 once the exact work is done
//
// Concurrency:
//
//	Matrix reads are safe from many goroutines. Mul splits power-of-two square
//	products into quadrant tasks on a bounded scheduler; Inverse computes its
//	cofactors on a bounded pool. Both are tuned with matrix.WithWorkers.
//
// Quick example:
//
//	a, _ := matrix.FromInt64s([][]int64{{4, 7}, {2, 6}})
//	inv, _ := matrix.Inverse(a)
//	fmt.Println(matrix.Format(inv))
//	// [3/5 -7/10]
//	// [-1/5 2/5]
//
//	go get github.com/katalvlaran/lvnum
package lvnum
