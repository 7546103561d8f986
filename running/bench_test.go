// SPDX-License-Identifier: MIT

package running_test

import (
	"fmt"
	"testing"

	"pgregory.net/rand"

	"github.com/katalvlaran/faststat/running"
)

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkA running.Accumulator[float64]
)

func benchFloats(n int) []float64 {
	r := rand.New(seedDet)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.Float64()
	}

	return xs
}

func BenchmarkVariance(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{1 << 10, 1 << 16, 1 << 20} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			xs := benchFloats(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := running.Variance(xs)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkSummarize(b *testing.B) {
	xs := benchFloats(1 << 22)
	for _, w := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				acc, err := running.Summarize(xs, w)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = acc
			}
		})
	}
}
