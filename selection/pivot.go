// SPDX-License-Identifier: MIT
// Package selection - pivot source shared by both selectors.
//
// Concurrency:
//   - pgregory.net/rand.Rand is NOT goroutine-safe. A pivotSource belongs to
//     one goroutine; use derive to hand an independent stream to another one.
//   - One source is created per SelectOne/SelectMany call and reused across
//     all recursive steps of that call, so pivots are not correlated between
//     levels.

package selection

import "pgregory.net/rand"

// pivotSource draws uniformly distributed pivot indices.
type pivotSource struct {
	rng *rand.Rand
}

// newPivotSource returns a source seeded with seed, or from the runtime when
// seed==0.
func newPivotSource(seed uint64) *pivotSource {
	if seed == 0 {
		return &pivotSource{rng: rand.New()}
	}

	return &pivotSource{rng: rand.New(seed)}
}

// index returns a uniform index in [from, to). A range holding at most one
// index yields from.
//
// Complexity: O(1).
func (s *pivotSource) index(from, to int) int {
	if to-from <= 1 {
		return from
	}

	return from + s.rng.Intn(to-from)
}

// derive creates an independent source for another goroutine. It advances
// the parent stream once, so two derivations never share a seed even when
// the stream ids repeat. Call it on the goroutine that owns s.
func (s *pivotSource) derive(stream uint64) *pivotSource {
	return &pivotSource{rng: rand.New(deriveSeed(s.rng.Uint64(), stream))}
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
