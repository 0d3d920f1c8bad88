// SPDX-License-Identifier: MIT

package matrix

import "sort"

// remapIndex maps a view-local index to a backing index.
//
// start is the first backing index of the view range and removed holds the
// backing indices excluded from it, ascending and strictly inside the range.
// The candidate start+local is shifted by the number of removed indices at or
// below it; a shift can expose further removed indices, so the step repeats
// until the count stops changing.
//
// The iteration never overshoots: every candidate is ≤ the answer, and the
// count grows at most len(removed) times.
//
// Complexity:
//   - Time O(k · log k) for k = len(removed) in the worst case, O(log k) typical.
func remapIndex(start, local int, removed []int) int {
	base := start + local
	cand, shift := base, 0
	for {
		n := sort.SearchInts(removed, cand+1) // removed indices ≤ cand
		if n == shift {
			return cand
		}
		shift = n
		cand = base + shift
	}
}

// insertSorted adds x into the ascending slice s, returning the new slice.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}
