package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDyadicInterpolator_Snap(t *testing.T) {
	tests := []struct {
		degree int
		pos    float64
		want   float64
	}{
		{1, 1.35, 1.0},
		{1, 2.7, 3.0},
		{2, 1.35, 1.5},
		{2, 2.7, 2.5},
		{2, 4.05, 4.0},
		{4, 1.35, 1.25},
		{4, 1.7, 1.75},
		{8, 1.35, 1.375},
	}

	for _, tt := range tests {
		d := NewDyadicInterpolator(tt.degree)
		assert.Equal(t, tt.want, d.Snap(tt.pos), "degree %d pos %v", tt.degree, tt.pos)
	}
}

func TestDyadicInterpolator_SnapIsExact(t *testing.T) {
	// Power-of-two degrees produce exact binary fractions: snapping twice
	// changes nothing.
	d := NewDyadicInterpolator(8)
	for _, pos := range []float64{0.0, 1.35, 2.7, 4.05, 5.1, 6.8} {
		once := d.Snap(pos)
		assert.Equal(t, once, d.Snap(once))
	}
}

func TestDyadicInterpolator_At(t *testing.T) {
	data := []float64{0, 2, 4, 6}
	d := NewDyadicInterpolator(2)

	assert.Equal(t, 2.0, d.At(data, 1.0))
	assert.Equal(t, 3.0, d.At(data, 1.5))
	assert.Equal(t, 5.0, d.At(data, 2.5))

	// Out-of-range positions read as zero
	assert.Equal(t, 0.0, d.At(data, -0.5))
	assert.Equal(t, 0.0, d.At(data, 3.5))
	assert.Equal(t, 0.0, d.At(nil, 1.0))
}

func TestDyadicInterpolator_AtComplex(t *testing.T) {
	re := []float64{1, 3}
	im := []float64{2, 4}
	d := NewDyadicInterpolator(2)

	assert.Equal(t, complex(2.0, 3.0), d.AtComplex(re, im, 0.5))
	assert.Equal(t, complex(2.0, 0.0), d.AtComplex(re, nil, 0.5))
}

func TestPowerOfTwoHelpers(t *testing.T) {
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(12))

	assert.Equal(t, 1, NextPowerOfTwo(0))
	assert.Equal(t, 8, NextPowerOfTwo(5))
	assert.Equal(t, 8, NextPowerOfTwo(8))
	assert.Equal(t, 16, NextPowerOfTwo(9))

	assert.Equal(t, 0, Log2(1))
	assert.Equal(t, 3, Log2(8))
	assert.Equal(t, 6, Log2(64))
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 16, CeilDiv(64, 4))
	assert.Equal(t, 9, CeilDiv(65, 8))
	assert.Equal(t, 1, CeilDiv(3, 5))
}
