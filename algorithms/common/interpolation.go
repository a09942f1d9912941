package common

import (
	"math"
)

// DyadicInterpolator evaluates a sampled sequence at fractional index
// positions constrained to a dyadic grid with spacing 1/degree. The degree
// must be a power of two so every grid position is an exact binary fraction;
// snapping then introduces no representation error, only the deliberate
// quantization of the requested position.
type DyadicInterpolator struct {
	degree int
}

// NewDyadicInterpolator creates an interpolator for the given grid degree.
// Degrees below 1 behave as degree 1 (integer positions only).
func NewDyadicInterpolator(degree int) *DyadicInterpolator {
	if degree < 1 {
		degree = 1
	}
	return &DyadicInterpolator{degree: degree}
}

// Degree returns the grid degree
func (d *DyadicInterpolator) Degree() int {
	return d.degree
}

// Snap quantizes pos to the nearest multiple of 1/degree
func (d *DyadicInterpolator) Snap(pos float64) float64 {
	g := float64(d.degree)
	return math.Round(pos*g) / g
}

// At evaluates the real sequence at a (possibly fractional) index by linear
// interpolation between the neighbouring integer samples. Positions outside
// [0, len(data)-1] read as zero.
func (d *DyadicInterpolator) At(data []float64, pos float64) float64 {
	if len(data) == 0 || pos < 0 || pos > float64(len(data)-1) {
		return 0.0
	}

	i := int(pos)
	frac := pos - float64(i)
	if frac == 0 {
		return data[i]
	}
	return Lerp(data[i], data[i+1], frac)
}

// AtComplex evaluates a complex sequence given as separate real and imaginary
// channels. A nil imaginary channel is treated as identically zero.
func (d *DyadicInterpolator) AtComplex(re, im []float64, pos float64) complex128 {
	r := d.At(re, pos)
	if im == nil {
		return complex(r, 0)
	}
	return complex(r, d.At(im, pos))
}
