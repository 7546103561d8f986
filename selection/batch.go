// SPDX-License-Identifier: MIT

package selection

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"
)

// SelectMany returns a map from every requested rank to the element of that
// rank in ascending order. It is equivalent to sorting xs and indexing it with
// each rank, without sorting more than needed.
//
// Algorithm Outline (on a window [left, right) and the pending ranks in it):
//  1. Base case: empty window or no pending ranks.
//  2. If the parent partition was degenerate, sort the window and read every
//     pending rank directly. The flag is passed down explicitly and, once set,
//     applies to the whole subtree.
//  3. Otherwise partition around a random pivot (final position p), binary
//     search p among the pending ranks, record it on an exact hit, then
//     continue into [left, p) with the smaller ranks and (p, right) with the
//     larger ones; only sides with pending ranks are visited.
//
// Ranks are copied, sorted and deduplicated first; the caller's slice is not
// modified. An empty rank set returns an empty map without touching xs.
//
// Complexity: O(n + m·log m) expected for m distinct ranks, O(n·log n) worst
// case. Extra space O(m) plus recursion depth.
//
// Panics (error matching ErrRankOutOfRange) if any rank is outside
// [0, len(xs)); xs is untouched in that case.
func SelectMany[T cmp.Ordered](xs []T, ranks []int, opts ...Option) map[int]T {
	if len(ranks) == 0 {
		return map[int]T{}
	}
	pending := normalizeRanks(ranks, len(xs))

	o := gatherOptions(opts...)
	b := &batch[T]{
		xs:        xs,
		ranks:     pending,
		found:     make([]T, len(pending)),
		threshold: o.sortThreshold,
		cutoff:    o.parallelCutoff,
		onSort:    o.onSortFallback,
	}
	if o.parallelism > 1 {
		b.group = new(errgroup.Group)
		b.group.SetLimit(o.parallelism - 1) // the calling goroutine is the extra one
	}

	b.run(newPivotSource(o.seed), 0, len(xs), 0, len(pending), false)
	if b.group != nil {
		_ = b.group.Wait() // branches never fail
	}

	out := make(map[int]T, len(pending))
	for i, k := range pending {
		out[k] = b.found[i]
	}

	return out
}

// normalizeRanks returns a sorted, deduplicated copy of ranks, panicking on
// any rank outside [0, n).
func normalizeRanks(ranks []int, n int) []int {
	out := slices.Clone(ranks)
	slices.Sort(out)
	out = slices.Compact(out)
	if out[0] < 0 {
		rankPanic(out[0], n)
	}
	if last := out[len(out)-1]; last >= n {
		rankPanic(last, n)
	}

	return out
}

// batch is the shared state of one SelectMany call. Every run owns a window
// [left, right) of xs and the matching window [lo, hi) of ranks/found, and
// windows of concurrent runs never overlap, so no locking is needed.
type batch[T cmp.Ordered] struct {
	xs        []T
	ranks     []int // sorted, unique
	found     []T   // found[i] is the element of rank ranks[i]
	threshold float64
	cutoff    int
	onSort    func(left, right int)
	group     *errgroup.Group // nil when sequential
}

// run resolves ranks[lo:hi], all of which lie in [left, right).
// One-sided steps loop in place; only a two-sided split recurses.
func (b *batch[T]) run(src *pivotSource, left, right, lo, hi int, sortFallback bool) {
	for left < right && lo < hi {
		if sortFallback {
			b.sortWindow(left, right, lo, hi)

			return
		}

		p := partition(b.xs, src.index(left, right), left, right)
		sortFallback = degenerate(left, p, right, b.threshold)

		// ranks[lo:mid] < p, ranks[next:hi] > p.
		mid, hit := slices.BinarySearch(b.ranks[lo:hi], p)
		mid += lo
		next := mid
		if hit {
			b.found[mid] = b.xs[p]
			next++
		}

		switch {
		case lo < mid && next < hi:
			b.fork(src, left, p, lo, mid, sortFallback)
			left, lo = p+1, next
		case lo < mid:
			right, hi = p, mid
		default:
			left, lo = p+1, next
		}
	}
}

// fork resolves the left side of a two-sided split, on another goroutine when
// parallelism is enabled, the window is large enough and a slot is free.
func (b *batch[T]) fork(src *pivotSource, left, right, lo, hi int, sortFallback bool) {
	if b.group != nil && right-left >= b.cutoff {
		child := src.derive(uint64(left)<<32 ^ uint64(right))
		if b.group.TryGo(func() error {
			b.run(child, left, right, lo, hi, sortFallback)

			return nil
		}) {
			return
		}
	}
	b.run(src, left, right, lo, hi, sortFallback)
}

// sortWindow sorts xs[left:right] and reads off ranks[lo:hi].
func (b *batch[T]) sortWindow(left, right, lo, hi int) {
	slices.Sort(b.xs[left:right])
	if b.onSort != nil {
		b.onSort(left, right)
	}
	for i := lo; i < hi; i++ {
		b.found[i] = b.xs[b.ranks[i]]
	}
}
