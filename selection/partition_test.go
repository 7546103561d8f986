// SPDX-License-Identifier: MIT

package selection_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rand"

	"github.com/katalvlaran/faststat/selection"
)

// isPartitioned checks the partition invariant on xs[start:end] around p.
func isPartitioned(xs []int, pv, start, p, end int) bool {
	if xs[p] != pv {
		return false
	}
	for i := start; i < p; i++ {
		if xs[i] >= pv {
			return false
		}
	}
	for i := p; i < end; i++ {
		if xs[i] < pv {
			return false
		}
	}

	return true
}

func TestPartition_DocExample(t *testing.T) {
	xs := []int{1, 5, 6, 2, 3, 7, 10, 9, 4, 8}
	p := selection.Partition(xs, 1, 0, len(xs))

	require.Equal(t, 4, p, "value 5 has four smaller elements")
	require.True(t, isPartitioned(xs, 5, 0, p, len(xs)), "xs=%v", xs)
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, xs)
}

func TestPartition_RandomInvariant(t *testing.T) {
	r := rand.New(seedDet)
	for trial := 0; trial < trials; trial++ {
		n := 1 + r.Intn(64)
		xs := randomInts(r, n, 1+r.Intn(10))
		start := r.Intn(n)
		end := start + 1 + r.Intn(n-start)
		pivot := start + r.Intn(end-start)
		pv := xs[pivot]
		before := append([]int(nil), xs...)

		p := selection.Partition(xs, pivot, start, end)

		require.True(t, isPartitioned(xs, pv, start, p, end), "trial %d: xs=%v p=%d", trial, xs, p)
		require.Equal(t, before[:start], xs[:start], "prefix outside the range must not move")
		require.Equal(t, before[end:], xs[end:], "suffix outside the range must not move")
		require.ElementsMatch(t, before[start:end], xs[start:end])
	}
}

func TestPartition_AllEqualKeepsPivotFirst(t *testing.T) {
	xs := []int{7, 7, 7, 7, 7}
	require.Equal(t, 0, selection.Partition(xs, 3, 0, len(xs)))
}

func TestPartition_ContractViolations(t *testing.T) {
	xs := []int{3, 1, 2}

	requirePanicIs(t, selection.ErrEmptySequence, func() { selection.Partition(xs, 0, 1, 1) })
	requirePanicIs(t, selection.ErrEmptySequence, func() { selection.Partition(xs, 0, 0, 4) })
	requirePanicIs(t, selection.ErrPivotOutOfRange, func() { selection.Partition(xs, 2, 0, 2) })
}

func FuzzPartition(f *testing.F) {
	f.Add([]byte{5, 3, 9, 1, 1, 7}, uint8(2))
	f.Add([]byte{0}, uint8(0))
	f.Fuzz(func(t *testing.T, data []byte, at uint8) {
		if len(data) == 0 {
			t.Skip()
		}
		xs := make([]int, len(data))
		for i, b := range data {
			xs[i] = int(b)
		}
		pivot := int(at) % len(xs)
		pv := xs[pivot]

		p := selection.Partition(xs, pivot, 0, len(xs))
		if !isPartitioned(xs, pv, 0, p, len(xs)) {
			t.Fatalf("not partitioned around %d at %d: %v", pv, p, xs)
		}
	})
}
