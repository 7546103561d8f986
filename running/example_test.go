// SPDX-License-Identifier: MIT

package running_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/faststat/running"
)

func ExampleVariance() {
	v, err := running.Variance([]float64{2.75, 1.75, 1.25, 0.25, 0.5, 1.25, 3.5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", v)
	// Output: 1.3720
}

func ExampleAccumulator() {
	var acc running.Accumulator[float64]
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		acc.Push(x)
	}
	mean, _ := acc.Mean()
	sd, _ := acc.PopulationStdev()
	fmt.Printf("%.2f %.2f\n", mean, sd)
	// Output: 5.00 2.00
}

func ExampleMean_empty() {
	_, err := running.Mean([]float64{})
	fmt.Println(err)
	fmt.Println(errors.Is(err, running.ErrInsufficientData))
	// Output:
	// running: insufficient data: mean requires at least one data point
	// true
}
