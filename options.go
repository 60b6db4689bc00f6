package bitnn

import (
	"github.com/hupe1980/bitnn/activation"
	"github.com/hupe1980/bitnn/kernel"
)

type options struct {
	threshold   int8
	params      activation.Params[int32]
	parallelism int
	logger      *Logger
	source      kernel.Source
}

// Option configures Layer constructor behavior.
type Option func(*options)

// WithThreshold sets the binarization threshold applied to input vectors
// during Forward. Values strictly above the threshold become 1 bits.
// Default: 0.
func WithThreshold(threshold int8) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithActivation sets the layer's RPReLU parameters.
// Default: beta 0, gamma 0, zeta 0 (plain ReLU shape).
func WithActivation(params activation.Params[int32]) Option {
	return func(o *options) {
		o.params = params
	}
}

// WithParallelism sets the number of workers used to fan per-column work
// out during Forward, Backward and Update. Columns are disjoint memory
// regions, so they parallelize without coordination; Backward reduces
// per-worker error accumulators at the end.
//
// Values below 2 keep the passes single-threaded. Default: 1.
func WithParallelism(workers int) Option {
	return func(o *options) {
		o.parallelism = workers
	}
}

// WithLogger configures structured logging for layer operations.
// If nil is passed, logging is disabled. Default: disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithRandomSource sets the random-integer source consumed by Perturb.
// Seeding and lifecycle stay with the caller. If no source is configured,
// New installs a time-seeded Mersenne Twister.
func WithRandomSource(src kernel.Source) Option {
	return func(o *options) {
		o.source = src
	}
}
