// SPDX-License-Identifier: MIT

package hac

import "go.uber.org/zap"

// Options configures a clustering run. Use DefaultOptions and the With*
// helpers rather than building it by hand.
//
// Fields:
//   - Linkage: Single (default) or Complete.
//   - Workers: number of goroutines scanning candidate pairs per step.
//     1 (default) scans sequentially; results are identical for any value.
//   - Logger: receives run/step diagnostics; defaults to a no-op logger.
type Options struct {
	Linkage Linkage
	Workers int
	Logger  *zap.Logger

	linkageErr error // deferred ParseLinkage failure from WithLinkageName
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns single linkage, one worker and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Linkage: Single,
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// WithLinkage selects the linkage rule.
func WithLinkage(l Linkage) Option {
	return func(o *Options) {
		o.Linkage = l
		o.linkageErr = nil
	}
}

// WithLinkageName selects the linkage rule by name ("single" | "complete").
// An unknown name makes the run fail with ErrUnsupportedLinkage before any
// computation starts.
func WithLinkageName(name string) Option {
	return func(o *Options) {
		o.Linkage, o.linkageErr = ParseLinkage(name)
	}
}

// WithWorkers sets the number of goroutines used for the pair scan.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// WithLogger sets the diagnostics logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.linkageErr != nil {
		return o, o.linkageErr
	}
	if !o.Linkage.valid() {
		return o, ErrUnsupportedLinkage
	}
	if o.Workers < 1 {
		return o, ErrInvalidOptions
	}

	return o, nil
}
