// SPDX-License-Identifier: MIT

package stats

import "github.com/katalvlaran/faststat/numeric"

// HarmonicMean returns n / Σ(1/xᵢ). A zero anywhere in xs yields 0.
//
// Errors: ErrNoHarmonicData, ErrNegativeHarmonic, ErrNaN.
func HarmonicMean[F numeric.Float](xs []F) (F, error) {
	if len(xs) == 0 {
		return 0, ErrNoHarmonicData
	}

	var recip F
	for _, x := range xs {
		switch {
		case numeric.IsNaN(x):
			return 0, ErrNaN
		case x < 0:
			return 0, ErrNegativeHarmonic
		}
		recip += 1 / x
	}

	return numeric.FromInt[F](len(xs)) / recip, nil
}

// Average returns Σx / n computed in the element type, so integer inputs
// use integer division. For floats prefer running.Mean, which does not
// accumulate a raw sum.
//
// Errors: ErrZeroDivision on empty input.
func Average[T numeric.Number](xs []T) (T, error) {
	if len(xs) == 0 {
		return 0, ErrZeroDivision
	}

	var sum T
	for _, x := range xs {
		sum += x
	}

	return sum / numeric.FromInt[T](len(xs)), nil
}
