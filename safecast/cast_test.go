package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected int
	}{
		{name: "zero", value: 0, expected: 0},
		{name: "small", value: 42, expected: 42},
		{name: "max", value: math.MaxInt, expected: math.MaxInt},
		{name: "overflow", value: math.MaxUint64, expected: math.MaxInt},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ToInt(test.value))
		})
	}
	assert.Equal(t, -5, ToInt(int8(-5)))
	assert.Equal(t, math.MinInt, ToInt(int64(math.MinInt64)))
}

func TestToUint(t *testing.T) {
	assert.Equal(t, uint(0), ToUint(-1))
	assert.Equal(t, uint(0), ToUint(math.MinInt64))
	assert.Equal(t, uint(12), ToUint(int32(12)))
	assert.Equal(t, uint(math.MaxUint), ToUint(uint64(math.MaxUint64)))
}
