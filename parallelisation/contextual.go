package parallelisation

import (
	"context"
	"slices"

	"github.com/foldkit/foldkit/commonerrors"
)

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if err == nil {
		return nil
	}
	cause := context.Cause(ctx)
	if cause == nil || commonerrors.Any(cause, context.Canceled, context.DeadlineExceeded) {
		return err
	}
	return commonerrors.WrapError(err, cause, "")
}

type ContextualFunc func(ctx context.Context) error

type ContextualFunctionGroup struct {
	*ExecutionGroup[ContextualFunc]
}

// NewContextualGroup returns a group executing contextual functions.
func NewContextualGroup(options ...StoreOption) *ContextualFunctionGroup {
	return &ContextualFunctionGroup{
		ExecutionGroup: NewExecutionGroup[ContextualFunc](func(ctx context.Context, contextualF ContextualFunc) error {
			if contextualF == nil {
				return commonerrors.UndefinedVariable("contextual function")
			}
			return contextualF(ctx)
		}, options...),
	}
}

// ForEach executes all the contextual functions according to the options and returns the first error which occurred.
func ForEach(ctx context.Context, options []StoreOption, contextualFunc ...ContextualFunc) error {
	group := NewContextualGroup(append(slices.Clone(options), ExecuteAll)...)
	group.RegisterFunction(contextualFunc...)
	return group.Execute(ctx)
}

// BreakOnError executes each function in the group until an error is found or the context gets cancelled.
func BreakOnError(ctx context.Context, options []StoreOption, contextualFunc ...ContextualFunc) error {
	group := NewContextualGroup(append(slices.Clone(options), StopOnFirstError)...)
	group.RegisterFunction(contextualFunc...)
	return group.Execute(ctx)
}
