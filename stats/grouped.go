// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"slices"
	"sort"

	"github.com/katalvlaran/faststat/numeric"
)

// MedianGrouped returns the median of continuous data grouped into classes
// of width interval, each data point being the midpoint of its class:
//
//	median = L + interval·(n/2 − cf)/f
//
//	L  = lower limit of the median class (x − interval/2, x = xs[n/2] sorted)
//	cf = number of points below the median class
//	f  = number of points in the median class
//
// xs is sorted in place. A single point is returned as is.
//
// Errors: ErrEmpty, ErrNaN, ErrBadInterval.
func MedianGrouped[F numeric.Float](xs []F, interval F) (F, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrEmpty
	}
	if !(interval > 0) || math.IsInf(float64(interval), 1) {
		return 0, ErrBadInterval
	}
	if err := checkNaN(xs); err != nil {
		return 0, err
	}
	if n == 1 {
		return xs[0], nil
	}

	slices.Sort(xs)
	x := xs[n/2]
	lower := x - interval/2

	first, _ := slices.BinarySearch(xs, x)
	end := sort.Search(n, func(i int) bool { return xs[i] > x })

	cf := numeric.FromInt[F](first)
	f := numeric.FromInt[F](end - first)
	half := numeric.FromInt[F](n) / 2

	return lower + interval*(half-cf)/f, nil
}
