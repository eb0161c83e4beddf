package parallelisation

type StoreOptions struct {
	clearOnExecution bool
	stopOnFirstError bool
	sequential       bool
	reverse          bool
	joinErrors       bool
	workers          int
}

func (o *StoreOptions) Default() *StoreOptions {
	o.clearOnExecution = false
	o.stopOnFirstError = false
	o.sequential = false
	o.reverse = false
	o.joinErrors = false
	o.workers = 0
	return o
}

func (o *StoreOptions) Merge(opts *StoreOptions) *StoreOptions {
	if opts == nil {
		return o
	}
	o.clearOnExecution = opts.clearOnExecution || o.clearOnExecution
	o.stopOnFirstError = opts.stopOnFirstError || o.stopOnFirstError
	o.sequential = opts.sequential || o.sequential
	o.reverse = opts.reverse || o.reverse
	o.joinErrors = opts.joinErrors || o.joinErrors
	o.workers = max(opts.workers, o.workers)
	return o
}

// Options converts the configuration back into options so that it can be passed to another group.
func (o *StoreOptions) Options() []StoreOption {
	return []StoreOption{
		func(opts *StoreOptions) *StoreOptions {
			op := o
			if op == nil {
				op = DefaultOptions()
			}
			return op.Merge(opts)
		},
	}
}

// Workers returns the configured worker limit. 0 means one worker per registered element.
func (o *StoreOptions) Workers() int {
	return o.workers
}

type StoreOption func(*StoreOptions) *StoreOptions

// StopOnFirstError stops ExecutionGroup execution on first error.
var StopOnFirstError StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.stopOnFirstError = true
	o.joinErrors = false
	return o
}

// JoinErrors will collate any errors which happened when executing functions in ExecutionGroup.
// This option should not be used in combination to StopOnFirstError.
var JoinErrors StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.stopOnFirstError = false
	o.joinErrors = true
	return o
}

// ExecuteAll executes all functions in the ExecutionGroup even if an error is raised. the first error raised is then returned.
var ExecuteAll StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.stopOnFirstError = false
	return o
}

// ClearAfterExecution clears the ExecutionGroup after execution.
var ClearAfterExecution StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.clearOnExecution = true
	return o
}

// RetainAfterExecution keep the ExecutionGroup intact after execution (no reset).
var RetainAfterExecution StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.clearOnExecution = false
	return o
}

// Parallel ensures every function registered in the ExecutionGroup is executed concurrently.
var Parallel StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.sequential = false
	return o
}

// Workers defines a limit number of workers for executing the function registered in the ExecutionGroup.
func Workers(workers int) StoreOption {
	return func(o *StoreOptions) *StoreOptions {
		if o == nil {
			o = DefaultOptions()
		}
		o.workers = workers
		o.sequential = false
		return o
	}
}

// Sequential ensures every function registered in the ExecutionGroup is executed sequentially in the order they were registered.
var Sequential StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.sequential = true
	return o
}

// SequentialInReverse ensures every function registered in the ExecutionGroup is executed sequentially but in the reverse order they were registered.
var SequentialInReverse StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.sequential = true
	o.reverse = true
	return o
}

// WithOptions defines a store configuration.
func WithOptions(option ...StoreOption) (opts *StoreOptions) {
	for i := range option {
		if option[i] == nil {
			continue
		}
		opts = option[i](opts)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return
}

// DefaultOptions returns the default store configuration
func DefaultOptions() *StoreOptions {
	opts := &StoreOptions{}
	return opts.Default()
}
