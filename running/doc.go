// SPDX-License-Identifier: MIT

// Package running computes mean, variance and standard deviation in a single
// pass with Welford's method.
//
// 🚀 Why not Σx² − (Σx)²/n?
//
//	The textbook formula subtracts two huge, nearly equal numbers when the
//	mean is large compared with the spread, and the difference drowns in
//	rounding error (it can even come out negative). Welford's update keeps
//	a running mean and a running sum of squared deviations m2 instead:
//
//	  delta = x − mean
//	  mean  = mean + delta/n
//	  m2    = m2 + delta·(x − mean)
//
//	m2 is never negative and equals Σ(xᵢ − mean)² up to rounding.
//
// ✨ Key features:
//   - Accumulator[F]: constant memory, one Push per element, any float type.
//   - Sample and population variance/stdev from the same accumulator.
//   - Merge combines two accumulators (Chan et al.), so partial results over
//     chunks can be reduced in any grouping; Summarize does this concurrently.
//   - Distinct insufficient-data errors per statistic, all matching
//     ErrInsufficientData.
//
// ⚙️ Usage:
//
//	v, err := running.Variance([]float64{2.75, 1.75, 1.25, 0.25, 0.5, 1.25, 3.5})
//	// v ≈ 1.3720
//
//	var acc running.Accumulator[float64]
//	for _, x := range stream {
//	  acc.Push(x)
//	}
//	sd, err := acc.Stdev()
package running
