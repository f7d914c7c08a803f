package pareto

import (
	"github.com/YuminosukeSato/moselect/pkg/log"
)

// Option is a function that configures a Filter
type Option func(*Filter)

// WithParallelThreshold sets the population size above which the outer
// dominance loop is split across CPU cores. Zero or negative makes every
// non-empty population take the parallel path.
func WithParallelThreshold(n int) Option {
	return func(f *Filter) {
		f.parallelThreshold = n
	}
}

// WithLogger sets the structured logger used by the filter
func WithLogger(logger log.Logger) Option {
	return func(f *Filter) {
		if logger != nil {
			f.logger = logger
		}
	}
}
