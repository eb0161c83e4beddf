package collection

import (
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
)

//
// Set operations
//

// UniqueEntries returns a slice containing the distinct values from the
// provided slice. The order of elements is not guaranteed.
func UniqueEntries[T comparable](slice []T) []T {
	return mapset.NewThreadUnsafeSet[T](slice...).ToSlice()
}

// Unique returns the distinct values from the provided sequence.
// The order of elements is not guaranteed.
func Unique[T comparable](s iter.Seq[T]) []T {
	set := mapset.NewThreadUnsafeSet[T]()
	for e := range s {
		set.Add(e)
	}
	return set.ToSlice()
}

// Union returns the union of slice1 and slice2, containing only unique
// values. The order of elements is not guaranteed.
func Union[T comparable](slice1, slice2 []T) []T {
	return mapset.NewThreadUnsafeSet[T](slice1...).Union(mapset.NewThreadUnsafeSet[T](slice2...)).ToSlice()
}

// Intersection returns the distinct values common to slice1 and slice2.
// The order of elements is not guaranteed.
func Intersection[T comparable](slice1, slice2 []T) []T {
	return mapset.NewThreadUnsafeSet[T](slice1...).Intersect(mapset.NewThreadUnsafeSet[T](slice2...)).ToSlice()
}

// Difference returns distinct values present in slice1 but not in slice2.
// The order of elements is not guaranteed.
func Difference[T comparable](slice1, slice2 []T) []T {
	return mapset.NewThreadUnsafeSet[T](slice1...).Difference(mapset.NewThreadUnsafeSet[T](slice2...)).ToSlice()
}
