package collection

import (
	"iter"
	"slices"
)

//
// Mapping utilities
//

// MapFunc defines a function that maps a value of type T1 to type T2.
type MapFunc[T1, T2 any] func(T1) T2

// IdentityMapFunc returns a mapping function that returns its input unchanged.
func IdentityMapFunc[T any]() MapFunc[T, T] {
	return func(i T) T { return i }
}

// MapSequence maps each element of s using f and returns a sequence of mapped values.
func MapSequence[T1 any, T2 any](s iter.Seq[T1], f MapFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Map applies f to each element of s and returns a slice with the results.
func Map[T1 any, T2 any](s []T1, f MapFunc[T1, T2]) []T2 {
	result := make([]T2, 0, len(s))
	return slices.AppendSeq(result, MapSequence(slices.Values(s), f))
}

// FlatMapSequence maps each element of s to a slice and yields the elements of every slice in turn.
func FlatMapSequence[T1 any, T2 any](s iter.Seq[T1], f MapFunc[T1, []T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			for _, e := range f(v) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// FlatMap is the slice version of FlatMapSequence.
func FlatMap[T1 any, T2 any](s []T1, f MapFunc[T1, []T2]) []T2 {
	return slices.Collect(FlatMapSequence(slices.Values(s), f))
}

//
// Filtering utilities
//

// FilterFunc defines a function that evaluates a value and returns true
// when the value satisfies the condition.
type FilterFunc[E any] func(E) bool

// Predicate is an alias for FilterFunc to express boolean tests.
type Predicate[E any] = FilterFunc[E]

// OppositeFunc returns a predicate that negates the result of f.
func OppositeFunc[E any](f FilterFunc[E]) FilterFunc[E] { return func(e E) bool { return !f(e) } }

// FilterSequence returns a sequence that yields only elements for which f returns true.
func FilterSequence[E any](s iter.Seq[E], f Predicate[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range s {
			if f(v) && !yield(v) {
				return
			}
		}
	}
}

// Filter returns a new slice containing elements from s for which f returns true.
func Filter[S ~[]E, E any](s S, f FilterFunc[E]) S {
	return slices.Collect(FilterSequence(slices.Values(s), f))
}

// RejectSequence returns a sequence that yields elements for which f returns false.
func RejectSequence[E any](s iter.Seq[E], f FilterFunc[E]) iter.Seq[E] {
	return FilterSequence(s, OppositeFunc(f))
}

// Reject returns elements for which f returns false (the inverse of Filter).
func Reject[S ~[]E, E any](s S, f FilterFunc[E]) S {
	return Filter(s, OppositeFunc(f))
}

// AnyFunc returns whether at least one element of s satisfies f.
func AnyFunc[S ~[]E, E any](s S, f Predicate[E]) bool {
	return slices.ContainsFunc(s, f)
}

// AllFunc returns whether every element of s satisfies f. It returns true for an empty slice.
func AllFunc[S ~[]E, E any](s S, f Predicate[E]) bool {
	return !slices.ContainsFunc(s, OppositeFunc(f))
}
