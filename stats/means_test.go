// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/faststat/stats"
)

func TestHarmonicMean(t *testing.T) {
	h, err := stats.HarmonicMean([]float64{40, 60})
	require.NoError(t, err)
	assert.InDelta(t, 48.0, h, 1e-12)

	h, err = stats.HarmonicMean([]float64{2.5, 3, 10})
	require.NoError(t, err)
	assert.InDelta(t, 3.6, h, 1e-12)

	h, err = stats.HarmonicMean([]float64{1, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, h, "a zero value makes the harmonic mean zero")
}

func TestHarmonicMean_Errors(t *testing.T) {
	_, err := stats.HarmonicMean([]float64{})
	assert.ErrorIs(t, err, stats.ErrNoHarmonicData)

	_, err = stats.HarmonicMean([]float64{1, -1})
	assert.ErrorIs(t, err, stats.ErrNegativeHarmonic)

	_, err = stats.HarmonicMean([]float32{float32(math.NaN())})
	assert.ErrorIs(t, err, stats.ErrNaN)
}

func TestAverage(t *testing.T) {
	a, err := stats.Average([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, a, "integer division truncates 2.5")

	u, err := stats.Average([]uint64{10, 20})
	require.NoError(t, err)
	assert.Equal(t, uint64(15), u)

	f, err := stats.Average([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = stats.Average([]int64{})
	assert.ErrorIs(t, err, stats.ErrZeroDivision)
}
