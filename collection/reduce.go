package collection

import (
	"iter"
	"slices"
)

//
// Reduce utilities
//

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// Reduce folds over the slice s using f, starting with accumulator.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReducesSequence(slices.Values(s), accumulator, f)
}

// ReducesSequence folds over a sequence using f, starting with accumulator.
func ReducesSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) T2 {
	result := accumulator
	for e := range s {
		result = f(result, e)
	}
	return result
}

// Partition splits s into contiguous chunks of at most size elements, preserving order.
// The last chunk may be shorter. An empty slice yields no chunk and a size lower than 1 is treated as 1.
func Partition[S ~[]E, E any](s S, size int) []S {
	if len(s) == 0 {
		return nil
	}
	return slices.Collect(slices.Chunk(s, max(size, 1)))
}

// PartitionInto splits s into at most n contiguous chunks of near-equal length.
func PartitionInto[S ~[]E, E any](s S, n int) []S {
	n = max(n, 1)
	return Partition(s, (len(s)+n-1)/n)
}
