package spectral

// AnalyticSignal returns the analytic associate of a real signal: the complex
// signal whose spectrum keeps the non-negative frequencies of x (doubled,
// except DC and Nyquist) and zeros the negative half. Time-frequency
// distributions are conventionally computed on the analytic associate to
// suppress the interference between positive- and negative-frequency
// components of a real signal.
func AnalyticSignal(x []float64) []complex128 {
	n := len(x)
	if n == 0 {
		return []complex128{}
	}

	f := NewFFT()
	spectrum := f.ComputeReal(x)

	// One-sided weighting: DC (and Nyquist for even n) unchanged, positive
	// frequencies doubled, negative frequencies zeroed.
	half := n / 2
	for k := 1; k < half; k++ {
		spectrum[k] *= 2
	}
	if n%2 != 0 && half >= 1 {
		spectrum[half] *= 2
	}
	for k := half + 1; k < n; k++ {
		spectrum[k] = 0
	}

	return f.ComputeInverse(spectrum)
}
