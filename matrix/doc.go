// SPDX-License-Identifier: MIT

// Package matrix is an exact, arbitrary-precision matrix engine over the
// numeric tower of package numeric.
//
// Representations (all satisfy Matrix):
//   - Dense (row-major) and Columnar (column-major): stored vectors, lazily
//     cached opposite axis, O(n) Transpose into each other, structural append.
//   - Diagonal, Identity, Zero, Singleton: compact types storing only what
//     defines them, with structural fast paths.
//   - Parametric: elements from a generator, no storage; Pad and Cauchy build on it.
//   - SubMatrix: a view with removable rows/columns over any backing matrix.
//   - Aggregate: a block matrix read in place.
//
// Operations are package functions (Determinant, Inverse, Mul, Add, Scale,
// Transpose, Trace, Equal, LU, ...). Each validates, tries the
// representation's fast path and otherwise runs one generic algorithm
// written against Matrix, so any representation (or a caller's own type)
// works with every operation.
//
// Exactness:
//   - Integer and Rational matrices never round. Determinant keeps the
//     declared kind and reports a *numeric.CoercionError when it cannot.
//   - Real and Complex results carry the weakest precision of their inputs.
//
// Concurrency:
//   - Reads are safe from many goroutines once a matrix is built.
//   - AppendRow/AppendColumn and SubMatrix.RemoveRow/RemoveColumn mutate and
//     must be serialized by the caller.
//   - Mul on power-of-two squares forks quadrant products on goroutines
//     gated by a semaphore (WithWorkers, WithParallelCutoff); Inverse computes
//     cofactors on a bounded pool. Neither can be cancelled once started.
//
// Logging: debug records via log/slog, discarded unless SetLogger or
// WithLogger supplies a logger.
//
// AI-Hints:
//   - Use Equal to compare results across representations.
//   - Wrap a matrix in a type exposing only the Matrix methods to exercise
//     the generic algorithms.
//   - Prefer Cauchy or Diagonal inputs when you need guaranteed-invertible
//     exact test data.
package matrix
