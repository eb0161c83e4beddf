package parallelisation

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"

	"github.com/foldkit/foldkit/commonerrors"
	"github.com/foldkit/foldkit/commonerrors/errortest"
)

func TestExecutionGroup(t *testing.T) {
	defer goleak.VerifyNone(t)
	tests := []struct {
		name    string
		options []StoreOption
	}{
		{name: "parallel", options: []StoreOption{Parallel}},
		{name: "limited workers", options: []StoreOption{Workers(3)}},
		{name: "sequential", options: []StoreOption{Sequential}},
		{name: "sequential in reverse", options: []StoreOption{SequentialInReverse}},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			total := atomic.NewInt64(0)
			g := NewExecutionGroup[int](func(_ context.Context, e int) error {
				total.Add(int64(e))
				return nil
			}, test.options...)
			g.RegisterFunction(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
			assert.Equal(t, 10, g.Len())
			require.NoError(t, g.Execute(context.Background()))
			assert.Equal(t, int64(55), total.Load())
		})
	}
}

func TestExecutionGroupOrder(t *testing.T) {
	var order []int
	g := NewExecutionGroup[int](func(_ context.Context, e int) error {
		order = append(order, e)
		return nil
	}, SequentialInReverse)
	g.RegisterFunction(1, 2, 3)
	require.NoError(t, g.Execute(context.Background()))
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestExecutionGroupClearing(t *testing.T) {
	g := NewExecutionGroup[string](func(context.Context, string) error { return nil }, Parallel, ClearAfterExecution)
	g.RegisterFunction(faker.Word(), faker.Word())
	require.NoError(t, g.Execute(context.Background()))
	assert.Zero(t, g.Len())

	g = NewExecutionGroup[string](func(context.Context, string) error { return nil }, Parallel, RetainAfterExecution)
	g.RegisterFunction(faker.Word(), faker.Word())
	require.NoError(t, g.Execute(context.Background()))
	assert.Equal(t, 2, g.Len())
}

func TestExecutionGroupErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	failure := errors.New(faker.Sentence())
	execute := func(_ context.Context, e int) error {
		if e%2 == 0 {
			return commonerrors.WrapErrorf(commonerrors.ErrInvalid, failure, "element %v", e)
		}
		return nil
	}

	t.Run("join errors", func(t *testing.T) {
		g := NewExecutionGroup[int](execute, JoinErrors, Parallel)
		g.RegisterFunction(1, 2, 3, 4)
		err := g.Execute(context.Background())
		errortest.AssertError(t, err, commonerrors.ErrInvalid)
		assert.True(t, errors.Is(err, failure))
		errortest.AssertErrorDescription(t, err, "element 2")
		errortest.AssertErrorDescription(t, err, "element 4")
	})
	t.Run("stop on first error", func(t *testing.T) {
		count := 0
		g := NewExecutionGroup[int](func(ctx context.Context, e int) error {
			count++
			return execute(ctx, e)
		}, StopOnFirstError, Sequential)
		g.RegisterFunction(1, 2, 3, 4)
		errortest.AssertError(t, g.Execute(context.Background()), commonerrors.ErrInvalid)
		assert.Equal(t, 2, count)
	})
	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		g := NewExecutionGroup[int](execute, Parallel)
		g.RegisterFunction(1, 3)
		errortest.AssertError(t, g.Execute(ctx), commonerrors.ErrCancelled)
	})
	t.Run("undefined function", func(t *testing.T) {
		g := NewExecutionGroup[int](nil)
		errortest.AssertError(t, g.Execute(context.Background()), commonerrors.ErrUndefined)
	})
}

func TestForEach(t *testing.T) {
	defer goleak.VerifyNone(t)
	counter := atomic.NewInt32(0)
	f := func(context.Context) error {
		counter.Inc()
		return nil
	}
	require.NoError(t, ForEach(context.Background(), []StoreOption{Workers(2)}, f, f, f))
	assert.Equal(t, int32(3), counter.Load())

	counter.Store(0)
	err := BreakOnError(context.Background(), []StoreOption{Sequential}, f, func(context.Context) error { return commonerrors.ErrUnexpected }, f)
	errortest.AssertError(t, err, commonerrors.ErrUnexpected)
	assert.Equal(t, int32(1), counter.Load())

	errortest.AssertError(t, ForEach(context.Background(), nil, nil), commonerrors.ErrUndefined)
}

func TestDetermineContextError(t *testing.T) {
	require.NoError(t, DetermineContextError(context.Background()))
	cause := errors.New(faker.Sentence())
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(cause)
	err := DetermineContextError(ctx)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.True(t, errors.Is(err, cause))
}
