// SPDX-License-Identifier: MIT

package running

import (
	"github.com/katalvlaran/faststat/numeric"
	"golang.org/x/sync/errgroup"
)

// fold runs one Accumulator over xs.
func fold[F numeric.Float](xs []F) Accumulator[F] {
	var acc Accumulator[F]
	acc.PushAll(xs)

	return acc
}

// Mean returns the arithmetic mean of xs.
// Errors: ErrMeanNoData if xs is empty.
func Mean[F numeric.Float](xs []F) (F, error) {
	acc := fold(xs)

	return acc.Mean()
}

// Variance returns the sample variance of xs (divisor n−1).
// Errors: ErrVarianceNoData if len(xs) < 2.
func Variance[F numeric.Float](xs []F) (F, error) {
	if len(xs) < 2 {
		return 0, ErrVarianceNoData
	}
	acc := fold(xs)

	return acc.Variance()
}

// PopulationVariance returns the population variance of xs (divisor n).
// Errors: ErrPopulationVarianceNoData if xs is empty.
func PopulationVariance[F numeric.Float](xs []F) (F, error) {
	if len(xs) == 0 {
		return 0, ErrPopulationVarianceNoData
	}
	acc := fold(xs)

	return acc.PopulationVariance()
}

// Stdev returns the sample standard deviation of xs.
func Stdev[F numeric.Float](xs []F) (F, error) {
	if len(xs) < 2 {
		return 0, ErrVarianceNoData
	}
	acc := fold(xs)

	return acc.Stdev()
}

// PopulationStdev returns the population standard deviation of xs.
func PopulationStdev[F numeric.Float](xs []F) (F, error) {
	if len(xs) == 0 {
		return 0, ErrPopulationVarianceNoData
	}
	acc := fold(xs)

	return acc.PopulationStdev()
}

// Summarize folds xs into one Accumulator, splitting it into up to workers
// contiguous chunks that are folded concurrently and merged in chunk order.
// workers <= 1 folds on the calling goroutine.
//
// Implementation:
//   - Stage 1: Validate (empty input is ErrMeanNoData, like Mean).
//   - Stage 2: Fold each chunk into its own accumulator slot (no sharing).
//   - Stage 3: Merge the slots left to right.
//
// Complexity: O(n) work, O(workers) extra space.
func Summarize[F numeric.Float](xs []F, workers int) (Accumulator[F], error) {
	// Stage 1 (Validate).
	n := len(xs)
	if n == 0 {
		return Accumulator[F]{}, ErrMeanNoData
	}
	if workers <= 1 || n < 2*workers {
		return fold(xs), nil
	}

	// Stage 2 (Fold chunks).
	chunk := (n + workers - 1) / workers
	parts := make([]Accumulator[F], (n+chunk-1)/chunk)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range parts {
		i := i // per-iteration copy (go 1.21 loop semantics)
		lo := i * chunk
		hi := min(lo+chunk, n)
		g.Go(func() error {
			parts[i] = fold(xs[lo:hi])

			return nil
		})
	}
	_ = g.Wait() // chunk folds never fail

	// Stage 3 (Merge in order).
	var acc Accumulator[F]
	for _, p := range parts {
		acc.Merge(p)
	}

	return acc, nil
}
