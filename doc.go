// SPDX-License-Identifier: MIT

// Package faststat is a small kernel of fast order statistics and
// numerically stable aggregates over in-memory slices.
//
// 🚀 What is in the box?
//
//	A pure-Go library, generic over element types:
//		• Selection: quickselect for one rank or a whole rank set in one pass,
//		  with an adaptive bailout to sorting on adversarial input
//		• Running statistics: Welford mean / variance / stdev, mergeable
//		• NaN-free float types for a strict total order
//		• Descriptive statistics: median family, grouped median, mode,
//		  harmonic mean, average
//
// ✨ Why faststat?
//
//   - Expected linear time for medians and percentiles; no full sort.
//   - Stable variance on ill-conditioned data (large mean, small spread).
//   - One implementation per algorithm, for every float and integer type.
//   - Silent library: no logging, typed errors, panics only on caller bugs.
//
// Under the hood, everything is organized under these subpackages:
//
//	numeric/   - element type constraints (Float, Integer, Number)
//	selection/ - Partition, SelectOne, SelectMany + functional options
//	running/   - Accumulator (Welford), Mean, Variance, Stdev, Summarize
//	notnan/    - Float64 / Float32 that can never hold NaN
//	stats/     - Median, MedianLow/High, MedianGrouped, Mode, HarmonicMean, Average
//
//	go get github.com/katalvlaran/faststat
package faststat
