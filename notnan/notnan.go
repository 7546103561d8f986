// SPDX-License-Identifier: MIT

// Package notnan provides float types that can never hold NaN, giving them a
// strict total order usable by the selection engine.
//
// A plain float64 is only partially ordered: NaN compares false with
// everything, which silently breaks partitioning. Values of Float64/Float32
// are built only through the checked constructors here, so ordinary <, ==
// and cmp.Compare are a total order on them (−Inf and +Inf are allowed).
//
// Conversion is explicit and linear at the boundary:
//
//	ys, err := notnan.Float64s(xs)      // O(n), one allocation, fails on NaN
//	m := selection.SelectOne(ys, k)
//	fmt.Println(float64(m))
package notnan

import (
	"errors"
	"fmt"
	"math"
)

// ErrNaN is returned when a NaN is offered to a constructor.
var ErrNaN = errors.New("notnan: value is NaN")

// Float64 is a float64 that is never NaN.
type Float64 float64

// Float32 is a float32 that is never NaN.
type Float32 float32

// NewFloat64 wraps x, failing with ErrNaN if x is NaN.
func NewFloat64(x float64) (Float64, error) {
	if math.IsNaN(x) {
		return 0, ErrNaN
	}

	return Float64(x), nil
}

// NewFloat32 wraps x, failing with ErrNaN if x is NaN.
func NewFloat32(x float32) (Float32, error) {
	if x != x {
		return 0, ErrNaN
	}

	return Float32(x), nil
}

// Float64s converts xs into a new slice, failing on the first NaN with an
// error that matches ErrNaN and names its index.
func Float64s(xs []float64) ([]Float64, error) {
	out := make([]Float64, len(xs))
	for i, x := range xs {
		v, err := NewFloat64(x)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Float32s converts xs into a new slice, failing on the first NaN with an
// error that matches ErrNaN and names its index.
func Float32s(xs []float32) ([]Float32, error) {
	out := make([]Float32, len(xs))
	for i, x := range xs {
		v, err := NewFloat32(x)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Unwrap64 converts back to plain floats.
func Unwrap64(xs []Float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

// Unwrap32 converts back to plain floats.
func Unwrap32(xs []Float32) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = float32(x)
	}

	return out
}

// Compare returns -1, 0 or +1. Unlike cmp.Compare on raw floats it needs no
// NaN case.
func (f Float64) Compare(g Float64) int {
	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	default:
		return 0
	}
}

// Compare returns -1, 0 or +1.
func (f Float32) Compare(g Float32) int {
	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	default:
		return 0
	}
}
