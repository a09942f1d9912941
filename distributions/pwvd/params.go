package pwvd

import (
	"fmt"

	"github.com/fjgtlwz/SOFTX-D-17-00059/algorithms/common"
)

// Config holds the user-facing parameters of a PWVD computation
type Config struct {
	// WindowLength is the half-width of the lag window used per analysis
	// instant. Clamped to the signal length (with a warning) if larger.
	WindowLength int

	// TimeStep is the stride between successive analysis instants
	TimeStep int

	// PolyOrder is the interpolation degree of the dyadic lag grid. Rounded
	// up to the next power of two; 0 and 1 both mean integer-lag evaluation.
	PolyOrder int

	// TransformLength is the requested FFT length. Zero means "use the
	// window length"; values below the window length are raised to it. The
	// actual transform length is the next power of two at or above the
	// request.
	TransformLength int
}

// DefaultConfig returns a reasonable starting configuration for a signal of
// the given length: full-signal lag window, unit time step, quadratic
// interpolation grid.
func DefaultConfig(signalLength int) Config {
	return Config{
		WindowLength: signalLength,
		TimeStep:     1,
		PolyOrder:    2,
	}
}

// params is the normalized, engine-internal parameter set. All invariants
// hold by construction: radixLength is a power of two at or above both the
// window length and the transform-length request, polyOrder is a power of
// two >= 1, and instantCount is exactly ceil(signalLength/timeStep).
type params struct {
	signalLength int
	windowLength int
	timeStep     int
	polyOrder    int
	radixLength  int
	radixOrder   int
	instantCount int

	// windowClamped records the non-fatal truncation of an oversized window
	windowClamped bool
}

// normalize validates the signal shape and the raw configuration and produces
// the internal parameter set. All failures are detected here, before any
// computation begins.
func normalize(sig Signal, cfg Config) (params, error) {
	var p params

	if sig.Len() < 2 {
		return p, fmt.Errorf("signal must hold at least two samples: %w", ErrInvalidShape)
	}
	if sig.im != nil && len(sig.im) != len(sig.re) {
		return p, fmt.Errorf("real and imaginary channels differ in length: %w", ErrInvalidShape)
	}
	p.signalLength = sig.Len()

	if cfg.WindowLength < 1 {
		return p, fmt.Errorf("window length must be greater than zero: %w", ErrInvalidParameter)
	}
	p.windowLength = cfg.WindowLength
	if p.windowLength > p.signalLength {
		p.windowLength = p.signalLength
		p.windowClamped = true
	}

	if cfg.TimeStep < 1 {
		return p, fmt.Errorf("time step must be greater than zero: %w", ErrInvalidParameter)
	}
	if cfg.TimeStep > p.signalLength {
		return p, fmt.Errorf("time step must be no greater than signal length: %w", ErrParameterOutOfRange)
	}
	p.timeStep = cfg.TimeStep

	// Round the interpolation degree up to a power of two by repeated
	// doubling. Requests of 0 and 1 both land on 1.
	p.polyOrder = 1
	for p.polyOrder < cfg.PolyOrder {
		p.polyOrder <<= 1
	}

	if cfg.TransformLength < 0 {
		return p, fmt.Errorf("FFT length must not be negative: %w", ErrInvalidParameter)
	}
	transformLength := cfg.TransformLength
	if transformLength < p.windowLength {
		transformLength = p.windowLength
	}
	p.radixLength = common.NextPowerOfTwo(transformLength)
	p.radixOrder = common.Log2(p.radixLength)

	p.instantCount = common.CeilDiv(p.signalLength, p.timeStep)

	return p, nil
}
