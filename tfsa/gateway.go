// Package tfsa is the host-facing boundary layer: it marshals loosely typed
// argument lists into engine calls, mirroring the calling convention of the
// original toolbox gateways (a signal vector followed by positional scalar
// parameters). It performs arity, shape and scalar checks only; parameter
// semantics are validated by the engine itself.
package tfsa

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/fjgtlwz/SOFTX-D-17-00059/distributions/pwvd"
	"github.com/fjgtlwz/SOFTX-D-17-00059/logging"
)

// Boundary-layer errors, all detected before the engine runs
var (
	ErrNotEnoughArguments = errors.New("tfsa: not enough input arguments")
	ErrTooManyArguments   = errors.New("tfsa: too many input arguments")
	ErrTooManyOutputs     = errors.New("tfsa: too many output arguments")
	ErrNotAVector         = errors.New("tfsa: input must be a vector")
	ErrNotAScalar         = errors.New("tfsa: parameter must be a scalar")
)

// Gateway dispatches host-style calls into the distribution engines
type Gateway struct {
	engine *pwvd.Engine
	logger logging.Logger
}

// NewGateway creates a gateway that logs through the global logger
func NewGateway() *Gateway {
	logger := logging.GetGlobalLogger()
	return &Gateway{
		engine: pwvd.NewEngineWithLogger(logger),
		logger: logger,
	}
}

// PWVD6 computes a sixth-order Polynomial Wigner-Ville Distribution from a
// host argument list: signal, window length, time resolution, interpolation
// degree and an optional FFT length. nargout is the number of output values
// the host requested; at most one (the distribution matrix) is supported.
func (g *Gateway) PWVD6(nargout int, args ...any) (*mat.Dense, error) {
	if len(args) < 4 {
		return nil, ErrNotEnoughArguments
	}
	if len(args) > 5 {
		return nil, ErrTooManyArguments
	}
	if nargout > 1 {
		return nil, ErrTooManyOutputs
	}

	sig, err := asVector(args[0])
	if err != nil {
		return nil, err
	}

	windowLength, err := asScalar(args[1], "smoothing window length")
	if err != nil {
		return nil, err
	}
	timeStep, err := asScalar(args[2], "time resolution")
	if err != nil {
		return nil, err
	}
	polyOrder, err := asScalar(args[3], "interpolation degree")
	if err != nil {
		return nil, err
	}

	cfg := pwvd.Config{
		WindowLength: int(windowLength),
		TimeStep:     int(timeStep),
		PolyOrder:    int(polyOrder),
	}

	if len(args) == 5 {
		fftLength, err := asScalar(args[4], "FFT length")
		if err != nil {
			return nil, err
		}
		cfg.TransformLength = int(fftLength)
	}

	// The engine raises the non-fatal window-clamp warning through the
	// shared logger; only the matrix itself comes back to the host.
	result, err := g.engine.Compute(sig, cfg)
	if err != nil {
		return nil, err
	}

	return result.TFD, nil
}

// asVector accepts the signal layouts a host may hand over: a flat real or
// complex slice, or a 1xN / Nx1 matrix. Genuine matrices and length-1
// sequences are rejected, matching the original gateway's vector check.
func asVector(v any) (pwvd.Signal, error) {
	switch x := v.(type) {
	case []float64:
		return pwvd.NewRealSignal(x), nil
	case []complex128:
		return pwvd.FromComplexSamples(x), nil
	case [][]float64:
		rows := len(x)
		if rows == 0 {
			return pwvd.Signal{}, ErrNotAVector
		}
		cols := len(x[0])
		switch {
		case rows == 1:
			return pwvd.NewRealSignal(x[0]), nil
		case cols == 1:
			flat := make([]float64, rows)
			for i, row := range x {
				if len(row) != 1 {
					return pwvd.Signal{}, ErrNotAVector
				}
				flat[i] = row[0]
			}
			return pwvd.NewRealSignal(flat), nil
		default:
			return pwvd.Signal{}, ErrNotAVector
		}
	case pwvd.Signal:
		return x, nil
	default:
		return pwvd.Signal{}, ErrNotAVector
	}
}

// asScalar converts a numeric host value, rejecting anything non-scalar
func asScalar(v any, name string) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%s must be a scalar: %w", name, ErrNotAScalar)
	}
}
