package parallelisation

import (
	"context"
	"iter"

	"go.uber.org/atomic"

	"github.com/foldkit/foldkit/commonerrors"
)

// TransformFunc transforms an input into an output. Outputs are only retained when success is true.
type TransformFunc[I any, O any] func(context.Context, I) (output O, success bool, err error)

type indexed[I any] struct {
	position int
	value    I
}

type outcome[O any] struct {
	value   O
	success bool
}

// results stores outputs at the position of their input so that ordering survives concurrent execution.
type results[O any] struct {
	slots []outcome[O]
}

func newResults[O any](numberOfInput int) *results[O] {
	return &results[O]{slots: make([]outcome[O], max(numberOfInput, 0))}
}

func (r *results[O]) set(position int, o O) {
	if position < 0 || position >= len(r.slots) {
		return
	}
	r.slots[position] = outcome[O]{value: o, success: true}
}

func (r *results[O]) ordered() []O {
	slice := make([]O, 0, len(r.slots))
	for i := range r.slots {
		if r.slots[i].success {
			slice = append(slice, r.slots[i].value)
		}
	}
	return slice
}

// TransformGroup transforms inputs concurrently and returns the outputs in the order inputs were registered.
type TransformGroup[I any, O any] struct {
	*ExecutionGroup[indexed[I]]
	results *atomic.Pointer[results[O]]
}

// Inputs registers inputs to transform.
func (g *TransformGroup[I, O]) Inputs(ctx context.Context, i ...I) error {
	offset := g.Len()
	wrapped := make([]indexed[I], 0, len(i))
	for j := range i {
		err := DetermineContextError(ctx)
		if err != nil {
			return err
		}
		wrapped = append(wrapped, indexed[I]{position: offset + j, value: i[j]})
	}
	g.RegisterFunction(wrapped...)
	return nil
}

// Outputs returns the outputs of the last transformation, ordered like their inputs.
func (g *TransformGroup[I, O]) Outputs(ctx context.Context) ([]O, error) {
	err := DetermineContextError(ctx)
	if err != nil {
		return nil, err
	}
	r := g.results.Load()
	if r == nil {
		return nil, commonerrors.UndefinedVariable("results")
	}
	return r.ordered(), nil
}

// Transform actually performs the transformation.
func (g *TransformGroup[I, O]) Transform(ctx context.Context) error {
	g.results.Store(newResults[O](g.Len()))
	return g.Execute(ctx)
}

// NewTransformGroup returns a group transforming inputs into outputs.
// To register inputs, call Inputs.
// To perform the transformation of inputs, then call Transform.
// To retrieve the output, then call Outputs.
func NewTransformGroup[I any, O any](transform TransformFunc[I, O], options ...StoreOption) *TransformGroup[I, O] {
	g := &TransformGroup[I, O]{
		results: atomic.NewPointer[results[O]](newResults[O](0)),
	}
	g.ExecutionGroup = NewExecutionGroup[indexed[I]](func(fCtx context.Context, i indexed[I]) error {
		err := DetermineContextError(fCtx)
		if err != nil {
			return err
		}
		o, success, err := transform(fCtx, i.value)
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "an error occurred whilst handling input #%v", i.position)
		}
		if success {
			g.results.Load().set(i.position, o)
		}
		return nil
	}, options...)
	return g
}

// TransformInOrder transforms every element of the sequence and returns the successful outputs in input order.
func TransformInOrder[I any, O any](ctx context.Context, inputs iter.Seq[I], transform TransformFunc[I, O], options ...StoreOption) (outputs []O, err error) {
	g := NewTransformGroup[I, O](transform, options...)
	for i := range inputs {
		err = g.Inputs(ctx, i)
		if err != nil {
			return
		}
	}
	err = g.Transform(ctx)
	if err != nil {
		return
	}
	outputs, err = g.Outputs(ctx)
	return
}
