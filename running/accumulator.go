// SPDX-License-Identifier: MIT

package running

import (
	"math"

	"github.com/katalvlaran/faststat/numeric"
)

// Accumulator holds the running state (count, mean, m2) of Welford's method.
// The zero value is an empty accumulator ready for use.
//
// An Accumulator is not safe for concurrent use; give each goroutine its own
// and Merge them afterwards.
type Accumulator[F numeric.Float] struct {
	count int
	mean  F
	m2    F // sum of squared deviations from mean
}

// Push folds x into the accumulator.
//
// Complexity: O(1).
func (a *Accumulator[F]) Push(x F) {
	a.count++
	if a.count == 1 {
		a.mean, a.m2 = x, 0

		return
	}

	delta := x - a.mean
	a.mean += delta / numeric.FromInt[F](a.count)
	a.m2 += delta * (x - a.mean)
}

// PushAll folds every element of xs, in order.
func (a *Accumulator[F]) PushAll(xs []F) {
	for _, x := range xs {
		a.Push(x)
	}
}

// Merge folds the state of b into a, as if every element pushed into b had
// been pushed into a. Merging an empty accumulator is a no-op.
//
//	n  = nA + nB
//	δ  = meanB − meanA
//	mean = meanA + δ·nB/n
//	m2   = m2A + m2B + δ²·nA·nB/n
//
// Complexity: O(1).
func (a *Accumulator[F]) Merge(b Accumulator[F]) {
	if b.count == 0 {
		return
	}
	if a.count == 0 {
		*a = b

		return
	}

	nA, nB := numeric.FromInt[F](a.count), numeric.FromInt[F](b.count)
	n := nA + nB
	delta := b.mean - a.mean

	a.mean += delta * nB / n
	a.m2 += b.m2 + delta*delta*nA*nB/n
	a.count += b.count
}

// Count returns the number of pushed elements.
func (a *Accumulator[F]) Count() int {
	return a.count
}

// Mean returns the arithmetic mean. Requires at least one point.
func (a *Accumulator[F]) Mean() (F, error) {
	if a.count < 1 {
		return 0, ErrMeanNoData
	}

	return a.mean, nil
}

// Variance returns the sample variance m2/(n−1). Requires at least two points.
func (a *Accumulator[F]) Variance() (F, error) {
	if a.count < 2 {
		return 0, ErrVarianceNoData
	}

	return a.m2 / numeric.FromInt[F](a.count-1), nil
}

// PopulationVariance returns m2/n. Requires at least one point.
func (a *Accumulator[F]) PopulationVariance() (F, error) {
	if a.count < 1 {
		return 0, ErrPopulationVarianceNoData
	}

	return a.m2 / numeric.FromInt[F](a.count), nil
}

// Stdev returns the square root of Variance.
func (a *Accumulator[F]) Stdev() (F, error) {
	v, err := a.Variance()
	if err != nil {
		return 0, err
	}

	return sqrt(v), nil
}

// PopulationStdev returns the square root of PopulationVariance.
func (a *Accumulator[F]) PopulationStdev() (F, error) {
	v, err := a.PopulationVariance()
	if err != nil {
		return 0, err
	}

	return sqrt(v), nil
}

// sqrt never sees a negative argument: m2 is a sum of products delta·(x−mean)
// that are each non-negative.
func sqrt[F numeric.Float](v F) F {
	return F(math.Sqrt(float64(v)))
}
