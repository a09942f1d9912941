package pwvd

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chirpSignal(n int) Signal {
	// Quadratic-phase complex signal, the kind the polynomial kernel is for
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range re {
		phase := 2 * math.Pi * (0.05*float64(i) + 0.001*float64(i)*float64(i))
		re[i] = math.Cos(phase)
		im[i] = math.Sin(phase)
	}
	return NewComplexSignal(re, im)
}

func TestKernel_HermitianSymmetry(t *testing.T) {
	sig := chirpSignal(64)
	p, err := normalize(sig, Config{WindowLength: 16, TimeStep: 4, PolyOrder: 4})
	require.NoError(t, err)

	builder := newKernelBuilder(sig, p)
	kernel := make([]complex128, p.radixLength)
	builder.build(sig, 32, kernel)

	assert.InDelta(t, 0.0, imag(kernel[0]), 1e-12, "zero-lag value must be real")

	for m := 1; m < p.radixLength/2; m++ {
		want := cmplx.Conj(kernel[m])
		got := kernel[p.radixLength-m]
		assert.InDelta(t, real(want), real(got), 1e-12, "lag %d", m)
		assert.InDelta(t, imag(want), imag(got), 1e-12, "lag %d", m)
	}
}

func TestKernel_ZeroLagIsSixthPower(t *testing.T) {
	sig := chirpSignal(64)
	p, err := normalize(sig, Config{WindowLength: 16, TimeStep: 4, PolyOrder: 2})
	require.NoError(t, err)

	builder := newKernelBuilder(sig, p)
	kernel := make([]complex128, p.radixLength)

	instant := 20
	builder.build(sig, instant, kernel)

	z := complex(sig.re[instant], sig.im[instant])
	want := math.Pow(cmplx.Abs(z), 6)
	assert.InDelta(t, want, real(kernel[0]), 1e-12)
}

func TestKernel_UnusedLagsStayZero(t *testing.T) {
	sig := chirpSignal(64)
	p, err := normalize(sig, Config{WindowLength: 8, TimeStep: 4, PolyOrder: 2, TransformLength: 32})
	require.NoError(t, err)

	builder := newKernelBuilder(sig, p)
	kernel := make([]complex128, p.radixLength)
	builder.build(sig, 32, kernel)

	maxLag := (p.windowLength - 1) / 2
	for i := maxLag + 1; i < p.radixLength-maxLag; i++ {
		assert.Equal(t, complex128(0), kernel[i], "index %d", i)
	}
}

func TestKernel_BoundaryInstantZeroPadded(t *testing.T) {
	sig := chirpSignal(64)
	p, err := normalize(sig, Config{WindowLength: 16, TimeStep: 4, PolyOrder: 2})
	require.NoError(t, err)

	builder := newKernelBuilder(sig, p)
	kernel := make([]complex128, p.radixLength)

	// At t=0 every negative-offset sample reads as zero, so all non-zero-lag
	// kernel values vanish while the zero-lag term survives.
	builder.build(sig, 0, kernel)
	assert.Greater(t, real(kernel[0]), 0.0)
	for m := 1; m <= (p.windowLength-1)/2; m++ {
		assert.Equal(t, complex128(0), kernel[m], "lag %d", m)
	}
}

func TestKernel_IntegerDegreeMatchesSnappedLags(t *testing.T) {
	// With degree 1 all lag offsets snap to whole samples, so the kernel is
	// a plain product of signal samples with no interpolation error.
	sig := chirpSignal(64)
	p, err := normalize(sig, Config{WindowLength: 16, TimeStep: 4, PolyOrder: 1})
	require.NoError(t, err)

	builder := newKernelBuilder(sig, p)
	kernel := make([]complex128, p.radixLength)

	instant := 32
	builder.build(sig, instant, kernel)

	at := func(idx int) complex128 {
		return complex(sig.re[idx], sig.im[idx])
	}

	for m := 1; m <= (p.windowLength-1)/2; m++ {
		d1 := int(math.Round(2 * lagCoeff1 * float64(m)))
		d2 := int(math.Round(2 * lagCoeff2 * float64(m)))

		zp1 := at(instant + d1)
		zm1 := at(instant - d1)
		zp2 := at(instant + d2)
		zm2 := at(instant - d2)
		want := zp1 * zp1 * cmplx.Conj(zm1) * cmplx.Conj(zm1) * cmplx.Conj(zp2) * zm2

		assert.InDelta(t, real(want), real(kernel[m]), 1e-12, "lag %d", m)
		assert.InDelta(t, imag(want), imag(kernel[m]), 1e-12, "lag %d", m)
	}
}
