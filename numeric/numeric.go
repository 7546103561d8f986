// SPDX-License-Identifier: MIT

// Package numeric defines the numeric capability constraints shared by the
// selection, running and stats packages.
//
// Instead of one algorithm copy per element type, every routine is written once
// against a small type set:
//
//	Float   - ~float32 | ~float64            (mean, variance, medians)
//	Integer - signed and unsigned integers   (averages, ranks)
//	Number  - Float | Integer
//
// Named types (e.g. notnan.Float64) satisfy the constraints through the ~ form.
package numeric

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Signed is the set of signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer element types.
type Integer interface {
	Signed | Unsigned
}

// Number is every type the aggregation routines can fold.
type Number interface {
	Integer | Float
}

// FromInt converts a count into T. Used for divisors (n, n-1, 2) so that the
// arithmetic stays in the element type.
func FromInt[T Number](n int) T {
	return T(n)
}

// IsNaN reports whether x is not-a-number. For non-float types it is always false.
func IsNaN[T comparable](x T) bool {
	return x != x
}
