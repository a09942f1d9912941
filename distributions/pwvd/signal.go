package pwvd

// Signal is an immutable one-dimensional sequence of real or complex samples.
// The engine never mutates the underlying slices; callers must not modify
// them while a computation is in flight.
type Signal struct {
	re []float64
	im []float64 // nil for a real signal
}

// NewRealSignal wraps a real-valued sample sequence
func NewRealSignal(samples []float64) Signal {
	return Signal{re: samples}
}

// NewComplexSignal wraps separate real and imaginary channels. The imaginary
// channel may be nil; if present it must match the real channel in length
// (enforced during parameter normalization).
func NewComplexSignal(re, im []float64) Signal {
	return Signal{re: re, im: im}
}

// FromComplexSamples converts an interleaved complex sequence into a Signal
func FromComplexSamples(samples []complex128) Signal {
	re := make([]float64, len(samples))
	im := make([]float64, len(samples))
	for i, z := range samples {
		re[i] = real(z)
		im[i] = imag(z)
	}
	return Signal{re: re, im: im}
}

// Len returns the number of samples
func (s Signal) Len() int {
	return len(s.re)
}

// IsComplex reports whether the signal carries an imaginary channel
func (s Signal) IsComplex() bool {
	return s.im != nil
}
