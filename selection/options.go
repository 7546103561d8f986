// SPDX-License-Identifier: MIT

// Package selection: functional configuration for the selectors.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Notes:
//   - The sort threshold is an empirically tuned ratio, not a constant with
//     inherent meaning. Benchmark before changing it.
//   - seed==0 means "seed from the runtime"; any other value gives a
//     reproducible pivot stream (and, for the sequential path, a reproducible
//     final order of xs).
package selection

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSortThreshold is the smaller/larger half ratio at or below which
	// a partition is considered degenerate and the children are sorted instead
	// of partitioned further.
	DefaultSortThreshold = 0.1 / 100

	// DefaultSeed seeds the pivot source from the runtime.
	DefaultSeed uint64 = 0

	// DefaultParallelism keeps SelectMany on the calling goroutine.
	DefaultParallelism = 1

	// DefaultParallelCutoff is the smallest sub-range handed to another
	// goroutine when parallelism is enabled.
	DefaultParallelCutoff = 1 << 14
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid   = "selection: WithSortThreshold: ratio must be in [0, 1)"
	panicParallelismInvalid = "selection: WithParallelism: n must be >= 0"
	panicCutoffInvalid      = "selection: WithParallelCutoff: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	sortThreshold  float64
	seed           uint64
	parallelism    int
	parallelCutoff int
	onSortFallback func(left, right int)
}

// WithSortThreshold sets the degeneracy ratio. After a partition at
// position p of [left, right), the sub-ranges are sorted instead of
// partitioned when min(p-left, right-p)/max(p-left, right-p) <= ratio.
//
// Panics if ratio is NaN or outside [0, 1).
func WithSortThreshold(ratio float64) Option {
	if !(ratio >= 0 && ratio < 1) {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) {
		o.sortThreshold = ratio
	}
}

// WithSeed fixes the pivot stream. Zero restores runtime seeding.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
	}
}

// WithParallelism allows SelectMany to use up to n goroutines (the caller's
// included). Values 0 and 1 mean sequential. Panics if n < 0.
func WithParallelism(n int) Option {
	if n < 0 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) {
		o.parallelism = n
	}
}

// WithParallelCutoff sets the minimum sub-range length worth forking.
// Panics if n < 1.
func WithParallelCutoff(n int) Option {
	if n < 1 {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) {
		o.parallelCutoff = n
	}
}

// WithOnSortFallback registers a hook called with the bounds of every
// sub-range [left, right) that is resolved by sorting. With parallelism
// enabled the hook may run on several goroutines at once.
func WithOnSortFallback(fn func(left, right int)) Option {
	return func(o *Options) {
		o.onSortFallback = fn
	}
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		sortThreshold:  DefaultSortThreshold,
		seed:           DefaultSeed,
		parallelism:    DefaultParallelism,
		parallelCutoff: DefaultParallelCutoff,
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
