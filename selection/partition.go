// SPDX-License-Identifier: MIT

package selection

import (
	"cmp"
	"fmt"
)

// Partition rearranges xs[start:end] around the value at index pivot and
// returns the final index p of that value, such that
//
//	xs[start:p] <  pivot value
//	xs[p:end]   >= pivot value, with xs[p] == pivot value.
//
// Algorithm Outline:
//  1. Swap the pivot into the last slot of the range.
//  2. Scan j over [start, end-1) keeping boundary i of the "less than" zone;
//     an element < pivot is swapped into i and i advances, anything else is
//     skipped.
//  3. Swap the pivot from the last slot into i.
//
// Ties with the pivot stay on the right, so a run of equal values costs no
// swaps at all.
//
// Complexity: O(end-start) time, O(1) extra space.
//
// Panics (error matching ErrEmptySequence or ErrPivotOutOfRange) if the range
// is empty, exceeds xs, or does not contain pivot.
func Partition[T cmp.Ordered](xs []T, pivot, start, end int) int {
	if start < 0 || end > len(xs) || start >= end {
		panic(fmt.Errorf("%w: range [%d, %d) of %d elements", ErrEmptySequence, start, end, len(xs)))
	}
	if pivot < start || pivot >= end {
		panic(fmt.Errorf("%w: %d not in [%d, %d)", ErrPivotOutOfRange, pivot, start, end))
	}

	return partition(xs, pivot, start, end)
}

// partition is Partition without the bounds checks, for the selectors' hot loops.
func partition[T cmp.Ordered](xs []T, pivot, start, end int) int {
	last := end - 1
	xs[pivot], xs[last] = xs[last], xs[pivot]
	pv := xs[last]

	i := start
	for j := start; j < last; j++ {
		if xs[j] < pv {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[last] = xs[last], xs[i]

	return i
}

// degenerate reports whether a partition of [left, right) at p split the range
// so unevenly that its children should be sorted rather than partitioned.
// The right half counts the pivot, so it is never empty.
func degenerate(left, p, right int, threshold float64) bool {
	lo, hi := p-left, right-p
	if lo > hi {
		lo, hi = hi, lo
	}

	return float64(lo) <= threshold*float64(hi)
}
