// SPDX-License-Identifier: MIT
// Package selection: sentinel error set.
//
// The selectors never return errors: every failure they can hit is a contract
// violation by the caller (an out-of-range rank, an empty sequence), so they
// panic. The panic value is an error wrapping one of the sentinels below, which
// lets a recovering caller classify it with errors.Is.

package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence signals selection over an empty sequence or range.
	ErrEmptySequence = errors.New("selection: empty sequence")

	// ErrRankOutOfRange signals a rank outside [0, len(xs)).
	ErrRankOutOfRange = errors.New("selection: rank out of range")

	// ErrPivotOutOfRange signals a Partition pivot index outside [start, end).
	ErrPivotOutOfRange = errors.New("selection: pivot index out of range")
)

// rankPanic aborts on a rank outside [0, n).
func rankPanic(k, n int) {
	panic(fmt.Errorf("%w: rank %d not in [0, %d)", ErrRankOutOfRange, k, n))
}
