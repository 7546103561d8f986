// SPDX-License-Identifier: MIT

// Package selection_test shares small helpers across the selection tests.
package selection_test

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rand"
)

const (
	// seedDet fixes every randomized test input.
	seedDet uint64 = 20240611

	// trials is the number of random inputs per property test.
	trials = 300
)

// randomInts returns n values in [0, spread). A small spread gives
// duplicate-heavy input.
func randomInts(r *rand.Rand, n, spread int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = r.Intn(spread)
	}

	return xs
}

// randomRanks returns m ranks in [0, n), possibly repeated and unsorted.
func randomRanks(r *rand.Rand, m, n int) []int {
	ks := make([]int, m)
	for i := range ks {
		ks[i] = r.Intn(n)
	}

	return ks
}

// sortedCopy returns a sorted clone of xs.
func sortedCopy[T int | float64 | string](xs []T) []T {
	ys := slices.Clone(xs)
	slices.Sort(ys)

	return ys
}

// requirePanicIs fails unless fn panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic matching %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not match %v", err, target)
		}
	}()
	fn()
}
