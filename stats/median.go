// SPDX-License-Identifier: MIT

package stats

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/faststat/numeric"
	"github.com/katalvlaran/faststat/selection"
)

// Median returns the middle value of xs, or the mean of the two middle values
// when len(xs) is even. xs is reordered in place.
// Options are passed through to the selector.
//
// Errors: ErrEmpty, ErrNaN.
func Median[F numeric.Float](xs []F, opts ...selection.Option) (F, error) {
	lo, hi, err := middles(xs, opts)
	if err != nil {
		return 0, err
	}

	return (lo + hi) / 2, nil
}

// MedianLow returns the lower of the two middle values for even len(xs),
// the middle value otherwise. It always returns an element of xs.
//
// Errors: ErrEmpty, ErrNaN.
func MedianLow[T cmp.Ordered](xs []T, opts ...selection.Option) (T, error) {
	lo, _, err := middles(xs, opts)

	return lo, err
}

// MedianHigh returns the higher of the two middle values for even len(xs),
// the middle value otherwise.
//
// Errors: ErrEmpty, ErrNaN.
func MedianHigh[T cmp.Ordered](xs []T, opts ...selection.Option) (T, error) {
	_, hi, err := middles(xs, opts)

	return hi, err
}

// middles returns the elements of ranks n/2-1 and n/2 (both n/2 when n is odd).
func middles[T cmp.Ordered](xs []T, opts []selection.Option) (lo, hi T, err error) {
	n := len(xs)
	if n == 0 {
		return lo, hi, ErrEmpty
	}
	if err = checkNaN(xs); err != nil {
		return lo, hi, err
	}

	mid := n / 2
	if n%2 == 1 {
		v := selection.SelectOne(xs, mid, opts...)

		return v, v, nil
	}
	found := selection.SelectMany(xs, []int{mid - 1, mid}, opts...)

	return found[mid-1], found[mid], nil
}

// KthElement returns the element of rank k (0-based). Unlike
// selection.SelectOne it reports a bad rank as an error instead of panicking.
// xs is reordered in place.
//
// Errors: ErrEmpty, ErrNaN, or an error matching selection.ErrRankOutOfRange.
func KthElement[T cmp.Ordered](xs []T, k int, opts ...selection.Option) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrEmpty
	}
	if k < 0 || k >= len(xs) {
		return zero, fmt.Errorf("stats: %w: rank %d not in [0, %d)", selection.ErrRankOutOfRange, k, len(xs))
	}
	if err := checkNaN(xs); err != nil {
		return zero, err
	}

	return selection.SelectOne(xs, k, opts...), nil
}

// checkNaN rejects NaN, which would break the total order the selectors need.
func checkNaN[T comparable](xs []T) error {
	for i, x := range xs {
		if numeric.IsNaN(x) {
			return fmt.Errorf("%w at index %d", ErrNaN, i)
		}
	}

	return nil
}
