// SPDX-License-Identifier: MIT

package selection

// Test bridge: exposes unexported helpers to selection_test only.

// PivotIndex draws one pivot index in [from, to) from a source seeded with seed.
func PivotIndex(seed uint64, from, to int) int {
	return newPivotSource(seed).index(from, to)
}

// DerivedIndices draws n indices in [0, bound) from the stream derived from
// seed with the given stream id.
func DerivedIndices(seed, stream uint64, n, bound int) []int {
	src := newPivotSource(seed).derive(stream)
	out := make([]int, n)
	for i := range out {
		out[i] = src.index(0, bound)
	}

	return out
}

// Degenerate exposes the bailout predicate.
var Degenerate = degenerate

// DeriveSeed exposes the SplitMix64 mixer.
var DeriveSeed = deriveSeed
