package collector

import (
	"runtime"

	"github.com/go-logr/logr"
)

// Options configure parallel collection.
type Options struct {
	workers       int
	partitionSize int
	logger        logr.Logger
}

// Default sets the default configuration: as many workers as GOMAXPROCS and one partition per worker.
func (o *Options) Default() *Options {
	o.workers = runtime.GOMAXPROCS(0)
	o.partitionSize = 0
	o.logger = logr.Discard()
	return o
}

// Option configures parallel collection.
type Option func(*Options) *Options

// Workers limits the number of partitions folded concurrently. Values lower than 1 are ignored.
func Workers(workers int) Option {
	return func(o *Options) *Options {
		if workers > 0 {
			o.workers = workers
		}
		return o
	}
}

// PartitionSize sets the maximum number of elements per partition.
// When unset, the input is split into as many partitions as workers.
func PartitionSize(size int) Option {
	return func(o *Options) *Options {
		if size > 0 {
			o.partitionSize = size
		}
		return o
	}
}

// WithLogger traces partitioning and merging at verbosity 1.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) *Options {
		if logger.GetSink() != nil {
			o.logger = logger
		}
		return o
	}
}

// WithOptions returns the configuration corresponding to the options provided.
func WithOptions(option ...Option) *Options {
	opts := (&Options{}).Default()
	for i := range option {
		if option[i] != nil {
			opts = option[i](opts)
		}
	}
	return opts
}
