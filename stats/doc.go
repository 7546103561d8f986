// SPDX-License-Identifier: MIT

// Package stats layers the common descriptive statistics on top of the
// selection and running engines:
//
//	Median, MedianLow, MedianHigh - one or two ranks via selection.SelectMany
//	MedianGrouped                 - interpolated median of binned data
//	KthElement                    - checked single-rank selection
//	Mode                          - most common value, unique or an error
//	HarmonicMean                  - n / Σ(1/x) over non-negative values
//	Average                       - Σx / n in the element type (integer-safe)
//
// Median functions and MedianGrouped reorder xs in place, like the selectors
// they are built on. Pass a copy to keep the original order.
//
// Errors are package sentinels (errors.Is) plus *NoUniqueModeError, which
// carries the number of tied values. NaN input is rejected with ErrNaN rather
// than producing an arbitrary order statistic.
package stats
