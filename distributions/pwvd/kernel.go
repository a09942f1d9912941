package pwvd

import (
	"math/cmplx"

	"github.com/fjgtlwz/SOFTX-D-17-00059/algorithms/common"
)

// Lag-scaling coefficients of the sixth-order polynomial kernel
//
//	K(t,tau) = z^2(t+c1*tau) * conj(z)^2(t-c1*tau) * conj(z)(t+c2*tau) * z(t-c2*tau)
//
// published in Boashash & O'Shea (1994). They satisfy the moment conditions
// that place the kernel's oscillation at the signal's instantaneous frequency
// while nulling the cubic phase term.
const (
	lagCoeff1 = 0.675
	lagCoeff2 = 0.85
)

// kernelBuilder produces the complex kernel sequence for one analysis
// instant. Each builder owns its own lag window buffer, so distinct builders
// may run concurrently over the same read-only signal.
type kernelBuilder struct {
	interp *common.DyadicInterpolator
	win    *lagWindow
	maxLag int
	radix  int
}

func newKernelBuilder(sig Signal, p params) *kernelBuilder {
	return &kernelBuilder{
		interp: common.NewDyadicInterpolator(p.polyOrder),
		win:    newLagWindow(sig, p.windowLength),
		// Half-lags beyond (L-1)/2 would fold past the window edge once
		// scaled by the kernel coefficients.
		maxLag: (p.windowLength - 1) / 2,
		radix:  p.radixLength,
	}
}

// build fills dst (length radix) with the kernel sequence for instant t.
// The standard Wigner lag-to-index mapping is used: half-lag m lands at index
// m, its conjugate at radix-m, and everything in between stays zero. The
// resulting sequence is Hermitian-symmetric, so its transform is real.
func (b *kernelBuilder) build(sig Signal, t int, dst []complex128) {
	for i := range dst {
		dst[i] = 0
	}

	b.win.extract(sig, t)
	center := float64(b.win.center)

	for m := 0; m <= b.maxLag; m++ {
		// Fractional lag offsets, snapped to the dyadic grid. The factor 2
		// comes from the tau = 2m discretization of the lag axis.
		d1 := b.interp.Snap(2 * lagCoeff1 * float64(m))
		d2 := b.interp.Snap(2 * lagCoeff2 * float64(m))

		zp1 := b.interp.AtComplex(b.win.re, b.win.im, center+d1)
		zm1 := b.interp.AtComplex(b.win.re, b.win.im, center-d1)
		zp2 := b.interp.AtComplex(b.win.re, b.win.im, center+d2)
		zm2 := b.interp.AtComplex(b.win.re, b.win.im, center-d2)

		k := zp1 * zp1 * cmplx.Conj(zm1) * cmplx.Conj(zm1) * cmplx.Conj(zp2) * zm2

		dst[m] = k
		if m > 0 {
			dst[b.radix-m] = cmplx.Conj(k)
		}
	}
}
