// Package safecast converts between integer types, clamping to the target range instead of wrapping around.
package safecast

import "math"

func isNegative[C IInteger](i C) bool {
	return i < 0
}

// exceeds reports whether a non-negative value is greater than limit.
func exceeds[C IInteger](i C, limit uint64) bool {
	return !isNegative(i) && uint64(i) > limit
}

// ToInt converts i to an int. Values outside the int range are clamped to the closest boundary.
func ToInt[C IInteger](i C) int {
	if isNegative(i) {
		if int64(i) < math.MinInt {
			return math.MinInt
		}
		return int(i)
	}
	if exceeds(i, math.MaxInt) {
		return math.MaxInt
	}
	return int(i)
}

// ToUint converts i to an uint. Negative values become 0.
func ToUint[C IInteger](i C) uint {
	if isNegative(i) {
		return 0
	}
	if exceeds(i, math.MaxUint) {
		return math.MaxUint
	}
	return uint(i)
}
