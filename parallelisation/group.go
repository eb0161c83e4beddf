package parallelisation

import (
	"context"

	"github.com/sasha-s/go-deadlock"
	"golang.org/x/sync/errgroup"

	"github.com/foldkit/foldkit/commonerrors"
)

type IExecutor interface {
	// Execute executes all the functions in the group.
	Execute(ctx context.Context) error
}

type IExecutionGroup[T any] interface {
	IExecutor
	RegisterFunction(function ...T)
	Len() int
}

type ExecuteFunc[T any] func(ctx context.Context, element T) error

// NewExecutionGroup returns an execution group which executes functions according to store options.
func NewExecutionGroup[T any](executeFunc ExecuteFunc[T], options ...StoreOption) *ExecutionGroup[T] {
	opts := WithOptions(options...)
	return &ExecutionGroup[T]{
		mu:          deadlock.RWMutex{},
		elements:    make([]T, 0),
		executeFunc: executeFunc,
		options:     *opts,
	}
}

// ExecutionGroup runs executeFunc over every registered element, either sequentially or over a bounded set of goroutines.
type ExecutionGroup[T any] struct {
	mu          deadlock.RWMutex
	elements    []T
	executeFunc ExecuteFunc[T]
	options     StoreOptions
}

// RegisterFunction registers elements to the group.
func (s *ExecutionGroup[T]) RegisterFunction(element ...T) {
	defer s.mu.Unlock()
	s.mu.Lock()
	s.elements = append(s.elements, element...)
}

func (s *ExecutionGroup[T]) Len() int {
	defer s.mu.RUnlock()
	s.mu.RLock()
	return len(s.elements)
}

// Execute executes all the function in the group according to store options.
func (s *ExecutionGroup[T]) Execute(ctx context.Context) (err error) {
	defer s.mu.Unlock()
	s.mu.Lock()
	if s.executeFunc == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "the group was not initialised correctly")
	}

	if s.options.sequential {
		err = s.executeSequentially(ctx)
	} else {
		err = s.executeConcurrently(ctx)
	}

	if err == nil && s.options.clearOnExecution {
		s.elements = make([]T, 0, len(s.elements))
	}
	return
}

func (s *ExecutionGroup[T]) executeConcurrently(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	if !s.options.stopOnFirstError {
		gCtx = ctx
	}
	funcNum := len(s.elements)
	workers := s.options.workers
	if workers <= 0 {
		workers = funcNum
	}
	if workers > 0 {
		g.SetLimit(workers)
	}
	collated := make([]error, funcNum)
	for i := range s.elements {
		g.Go(func() error {
			_, subErr := s.executeFunction(gCtx, s.elements[i])
			collated[i] = subErr
			return subErr
		})
	}
	err := g.Wait()
	if s.options.joinErrors {
		err = commonerrors.Join(collated...)
	}
	return err
}

func (s *ExecutionGroup[T]) executeSequentially(ctx context.Context) (err error) {
	err = DetermineContextError(ctx)
	if err != nil {
		return
	}
	funcNum := len(s.elements)
	collated := make([]error, 0, funcNum)
	for j := 0; j < funcNum; j++ {
		i := j
		if s.options.reverse {
			i = funcNum - j - 1
		}
		shouldBreak, subErr := s.executeFunction(ctx, s.elements[i])
		collated = append(collated, subErr)
		if shouldBreak {
			err = subErr
			return
		}
		if subErr != nil && err == nil {
			err = subErr
			if s.options.stopOnFirstError {
				return
			}
		}
	}

	if s.options.joinErrors {
		err = commonerrors.Join(collated...)
	}
	return
}

func (s *ExecutionGroup[T]) executeFunction(ctx context.Context, element T) (mustBreak bool, err error) {
	err = DetermineContextError(ctx)
	if err != nil {
		mustBreak = true
		return
	}
	err = s.executeFunc(ctx, element)
	return
}
