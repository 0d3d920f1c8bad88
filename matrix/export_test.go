// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvnum/numeric"

// Test-only bridges to unexported kernels.
var (
	RemapIndex   = remapIndex
	InsertSorted = insertSorted
	IsPowerOfTwo = isPowerOfTwo
)

// NaiveMul runs the dot-product multiplication loop regardless of shape.
func NaiveMul(a, b Matrix) (Matrix, error) { return naiveMul(a, b) }

// ExpandDeterminant runs the shared Laplace expansion on m, bypassing any
// representation fast path.
func ExpandDeterminant(m Matrix, alongColumn bool) (numeric.Numeric, error) {
	o := gatherOptions()

	return expand(m, alongColumn, &o)
}
