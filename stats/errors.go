// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by the median family and Mode on empty input.
	ErrEmpty = errors.New("stats: no data points")

	// ErrNaN is returned when the input contains NaN.
	ErrNaN = errors.New("stats: NaN in input")

	// ErrNoHarmonicData is returned by HarmonicMean on empty input.
	ErrNoHarmonicData = errors.New("stats: harmonic mean requires at least one data point")

	// ErrNegativeHarmonic is returned by HarmonicMean on a negative value.
	ErrNegativeHarmonic = errors.New("stats: harmonic mean does not support negative values")

	// ErrZeroDivision is returned by Average on empty input.
	ErrZeroDivision = errors.New("stats: integer division or modulo by zero")

	// ErrBadInterval is returned by MedianGrouped for a non-positive or non-finite interval.
	ErrBadInterval = errors.New("stats: class interval must be finite and > 0")

	// ErrNoUniqueMode is matched by every *NoUniqueModeError.
	ErrNoUniqueMode = errors.New("stats: no unique mode")
)

// NoUniqueModeError is returned by Mode when several values share the
// highest frequency.
type NoUniqueModeError struct {
	Modes int // number of equally common values
}

func (e *NoUniqueModeError) Error() string {
	return fmt.Sprintf("stats: no unique mode; found %d equally common values", e.Modes)
}

// Is makes errors.Is(err, ErrNoUniqueMode) true.
func (e *NoUniqueModeError) Is(target error) bool {
	return target == ErrNoUniqueMode
}
