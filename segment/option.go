package segment

import (
	"runtime"

	"github.com/antgroup/rawseg/schema"
)

// Options is a struct that contains options for enumeration and segmenters.
type Options struct {
	// MaxPaths bounds the number of paths of one query, 0 means unlimited.
	MaxPaths    int
	SingleTag   string
	Concurrency int
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		SingleTag:   schema.SingleTag,
		Concurrency: runtime.NumCPU(),
	}
}

// Option is a function that can be used to set options.
type Option func(*Options)

// WithMaxPaths makes a query fail with schema.ErrTooManyPaths once it
// produces more than maxPaths paths.
func WithMaxPaths(maxPaths int) Option {
	return func(o *Options) {
		o.MaxPaths = maxPaths
	}
}

// WithSingleTag sets the tag of single-character fallback words.
func WithSingleTag(tag string) Option {
	return func(o *Options) {
		o.SingleTag = tag
	}
}

// WithConcurrency sets the number of workers used by SegBatch.
func WithConcurrency(concurrency int) Option {
	return func(o *Options) {
		o.Concurrency = concurrency
	}
}
