package collection

import (
	"iter"

	"github.com/foldkit/foldkit/field"
)

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

// Range returns a slice of integers similar to Python's built-in range().
// https://docs.python.org/3/library/stdtypes.html#range
//
//	Note: The stop value is always exclusive.
func Range(start, stop int, step *int) []int {
	it, length := rangeSequence(start, stop, step)
	result := make([]int, 0, length)
	for v := range it {
		result = append(result, v)
	}
	return result
}

// RangeSequence returns an iterator over a range
func RangeSequence(start, stop int, step *int) iter.Seq[int] {
	it, _ := rangeSequence(start, stop, step)
	return it
}

// InclusiveRangeSequence iterates over [from, to] by steps of one.
func InclusiveRangeSequence(from, to int) iter.Seq[int] {
	if to < from {
		return RangeSequence(from, from, nil)
	}
	return RangeSequence(from, to+1, nil)
}

func rangeSequence(start, stop int, step *int) (it iter.Seq[int], length int) {
	s := field.OptionalInt(step, 1)
	if s == 0 {
		it = func(yield func(int) bool) {}
		return
	}
	if (s > 0 && start < stop) || (s < 0 && start > stop) {
		length = (stop - start + s - sign(s)) / s
	}
	it = func(yield func(int) bool) {
		for i, v := 0, start; i < length; i, v = i+1, v+s {
			if !yield(v) {
				return
			}
		}
	}
	return
}
