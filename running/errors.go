// SPDX-License-Identifier: MIT

package running

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is matched (errors.Is) by every "not enough points" error.
var ErrInsufficientData = errors.New("running: insufficient data")

var (
	// ErrMeanNoData is returned by mean on empty input.
	ErrMeanNoData = fmt.Errorf("%w: mean requires at least one data point", ErrInsufficientData)

	// ErrVarianceNoData is returned by sample variance/stdev on fewer than two points.
	ErrVarianceNoData = fmt.Errorf("%w: variance requires at least two data points", ErrInsufficientData)

	// ErrPopulationVarianceNoData is returned by population variance/stdev on empty input.
	ErrPopulationVarianceNoData = fmt.Errorf("%w: population variance requires at least one data point", ErrInsufficientData)
)
