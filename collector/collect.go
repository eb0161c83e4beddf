package collector

import (
	"context"
	"iter"
	"slices"

	"github.com/foldkit/foldkit/collection"
	"github.com/foldkit/foldkit/parallelisation"
)

// Collect folds elements serially, in order, using a single accumulator. The combiner is never called.
func Collect[E, A, R any](elements []E, c *Collector[E, A, R]) (R, error) {
	return CollectSequence(slices.Values(elements), c)
}

// CollectSequence is similar to Collect but for sequences.
func CollectSequence[E, A, R any](elements iter.Seq[E], c *Collector[E, A, R]) (result R, err error) {
	err = c.Validate(false)
	if err != nil {
		return
	}
	return c.finish(collection.ReducesSequence(elements, c.Supplier(), c.fold))
}

// CollectParallel splits elements into contiguous partitions, folds every partition into its own accumulator concurrently
// and then merges the partial accumulators pairwise using the combiner.
// The left operand of every merge always holds the elements preceding those of the right operand,
// so ordered collectors produce the same result as Collect as long as their combiner is associative.
// A collector without combiner is rejected before any element is processed.
func CollectParallel[E, A, R any](ctx context.Context, elements []E, c *Collector[E, A, R], options ...Option) (result R, err error) {
	err = c.Validate(true)
	if err != nil {
		return
	}
	err = parallelisation.DetermineContextError(ctx)
	if err != nil {
		return
	}
	opts := WithOptions(options...)
	if len(elements) == 0 {
		return c.finish(c.Supplier())
	}

	var partitions [][]E
	if opts.partitionSize > 0 {
		partitions = collection.Partition(elements, opts.partitionSize)
	} else {
		partitions = collection.PartitionInto(elements, opts.workers)
	}
	opts.logger.V(1).Info("collecting in parallel", "elements", len(elements), "partitions", len(partitions), "workers", opts.workers)

	partials, err := parallelisation.TransformInOrder[[]E, A](ctx, slices.Values(partitions), func(fCtx context.Context, partition []E) (A, bool, error) {
		subErr := parallelisation.DetermineContextError(fCtx)
		if subErr != nil {
			var zero A
			return zero, false, subErr
		}
		return collection.Reduce(partition, c.Supplier(), c.fold), true, nil
	}, parallelisation.Workers(opts.workers), parallelisation.StopOnFirstError)
	if err != nil {
		return
	}

	merged, err := combine(ctx, partials, c.Combiner, opts)
	if err != nil {
		return
	}
	return c.finish(merged)
}

// combine merges partial accumulators level by level: neighbours are combined concurrently until a single accumulator remains.
func combine[A any](ctx context.Context, partials []A, combiner Combiner[A], opts *Options) (merged A, err error) {
	level := partials
	for depth := 0; len(level) > 1; depth++ {
		next := make([]A, (len(level)+1)/2)
		merges := make([]parallelisation.ContextualFunc, 0, len(level)/2)
		for i := 0; i+1 < len(level); i += 2 {
			left, right, target := level[i], level[i+1], i/2
			merges = append(merges, func(context.Context) error {
				next[target] = combiner(left, right)
				return nil
			})
		}
		if len(level)%2 == 1 {
			next[len(next)-1] = level[len(level)-1]
		}
		err = parallelisation.BreakOnError(ctx, []parallelisation.StoreOption{parallelisation.Workers(opts.workers)}, merges...)
		if err != nil {
			return
		}
		opts.logger.V(1).Info("merged partial accumulators", "depth", depth, "remaining", len(next))
		level = next
	}
	if len(level) == 1 {
		merged = level[0]
	}
	return
}

// Reduce collects elements either serially or in parallel using default options.
func Reduce[E, A, R any](elements []E, c *Collector[E, A, R], parallel bool) (R, error) {
	if parallel {
		return CollectParallel(context.Background(), elements, c)
	}
	return Collect(elements, c)
}
