// SPDX-License-Identifier: MIT

package selection

import (
	"cmp"
	"fmt"
	"slices"
)

// SelectOne returns the element of rank k (0-based, in ascending order) and
// leaves it at xs[k].
//
// Algorithm Outline:
//  1. [left, right) = [0, n).
//  2. Partition around a random pivot; the pivot lands at its sorted position p.
//  3. p == k: done. Otherwise keep the half holding k and repeat.
//  4. If a partition was degenerate (see WithSortThreshold), sort the
//     remaining window and read xs[k] directly.
//
// Only WithSeed and WithSortThreshold affect SelectOne.
//
// Complexity: O(n) expected, O(n·log n) worst case; O(1) extra space.
//
// Panics (error matching ErrEmptySequence / ErrRankOutOfRange) when xs is
// empty or k is not in [0, len(xs)).
func SelectOne[T cmp.Ordered](xs []T, k int, opts ...Option) T {
	n := len(xs)
	if n == 0 {
		panic(fmt.Errorf("%w: rank %d requested", ErrEmptySequence, k))
	}
	if k < 0 || k >= n {
		rankPanic(k, n)
	}

	o := gatherOptions(opts...)
	src := newPivotSource(o.seed)

	left, right := 0, n
	for {
		p := partition(xs, src.index(left, right), left, right)
		if p == k {
			return xs[p]
		}
		bail := degenerate(left, p, right, o.sortThreshold)
		if k < p {
			right = p
		} else {
			left = p + 1
		}
		if bail {
			slices.Sort(xs[left:right])
			if o.onSortFallback != nil {
				o.onSortFallback(left, right)
			}

			return xs[k]
		}
	}
}
