package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.value, tt.min, tt.max))
		})
	}
}

func TestClampIntegers(t *testing.T) {
	assert.Equal(t, 7, Clamp(12, 0, 7))
	assert.Equal(t, 0, Clamp(-3, 0, 7))
	assert.Equal(t, 3, Clamp(3, 7, 0))
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(1.0, 1.0+1e-13, 1e-12))
	assert.False(t, NearlyEqual(1.0, 1.1, 1e-3))
	assert.True(t, NearlyEqual(0, 0, 0))
	assert.True(t, NearlyEqual(1e6, 1e6+1e-7, 0))
}
