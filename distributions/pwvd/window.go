package pwvd

// lagWindow is the symmetric signal segment around one analysis instant:
// samples at offsets -half..+half, with out-of-range offsets zero-padded.
// Index center maps to offset zero.
type lagWindow struct {
	re     []float64
	im     []float64 // nil when the signal is real
	center int
}

// extract fills the window for instant t, reusing the receiver's buffers.
// Buffers must have been sized by newLagWindow for the same half-width.
func (w *lagWindow) extract(sig Signal, t int) {
	n := sig.Len()
	for off := -w.center; off <= w.center; off++ {
		idx := t + off
		if idx < 0 || idx >= n {
			w.re[w.center+off] = 0
			if w.im != nil {
				w.im[w.center+off] = 0
			}
			continue
		}
		w.re[w.center+off] = sig.re[idx]
		if w.im != nil {
			w.im[w.center+off] = sig.im[idx]
		}
	}
}

// newLagWindow allocates a window of half-width half for the given signal.
// A real signal gets no imaginary buffer; the interpolator reads it as zero.
func newLagWindow(sig Signal, half int) *lagWindow {
	w := &lagWindow{
		re:     make([]float64, 2*half+1),
		center: half,
	}
	if sig.IsComplex() {
		w.im = make([]float64, 2*half+1)
	}
	return w
}
