package pwvd

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/fjgtlwz/SOFTX-D-17-00059/algorithms/spectral"
	"github.com/fjgtlwz/SOFTX-D-17-00059/logging"
)

// Engine computes sixth-order Polynomial Wigner-Ville Distributions. It is
// stateless across calls and safe for concurrent use.
type Engine struct {
	fft    *spectral.FFT
	logger logging.Logger
}

// NewEngine creates an engine that logs through the global logger
func NewEngine() *Engine {
	return &Engine{
		fft:    spectral.NewFFT(),
		logger: logging.GetGlobalLogger(),
	}
}

// NewEngineWithLogger creates an engine with an explicit logger
func NewEngineWithLogger(logger logging.Logger) *Engine {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	return &Engine{
		fft:    spectral.NewFFT(),
		logger: logger,
	}
}

// Result holds a completed time-frequency distribution
type Result struct {
	// TFD is the distribution matrix: FreqBins rows (non-negative frequency
	// half-spectrum, row 0 = zero frequency) by Instants columns (analysis
	// instants in signal order, TimeStep samples apart).
	TFD *mat.Dense `json:"-"`

	FreqBins     int `json:"freq_bins"`
	Instants     int `json:"instants"`
	TimeStep     int `json:"time_step"`
	WindowLength int `json:"window_length"`
	PolyOrder    int `json:"poly_order"`
	RadixLength  int `json:"radix_length"`
	RadixOrder   int `json:"radix_order"`

	// Warnings lists non-fatal normalizations applied to the parameters
	Warnings []string `json:"warnings,omitempty"`
}

// Compute runs the full pipeline: normalize parameters, then for each
// analysis instant build the polynomial lag kernel and project it onto the
// frequency axis, one output column per instant. On any failure no partial
// matrix is returned.
func (e *Engine) Compute(sig Signal, cfg Config) (*Result, error) {
	p, err := normalize(sig, cfg)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if p.windowClamped {
		warnings = append(warnings, "window length truncated to signal length")
		e.logger.Warn("window length truncated to signal length", logging.Fields{
			"requested": cfg.WindowLength,
			"clamped":   p.windowLength,
		})
	}

	freqBins := p.radixLength / 2
	tfd, err := allocateMatrix(freqBins, p.instantCount)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("computing pwvd", logging.Fields{
		"signal_length": p.signalLength,
		"window_length": p.windowLength,
		"time_step":     p.timeStep,
		"poly_order":    p.polyOrder,
		"radix_length":  p.radixLength,
		"instants":      p.instantCount,
	})

	numWorkers := workerCount(p.instantCount)
	jobs := make(chan int, p.instantCount)

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Per-worker buffers: the builder owns a lag window, the
			// kernel and column slices are reused across instants.
			builder := newKernelBuilder(sig, p)
			kernel := make([]complex128, p.radixLength)
			column := make([]float64, freqBins)

			for instant := range jobs {
				if err := computeColumn(e.fft, builder, sig, p, instant, kernel, column); err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
					continue
				}
				tfd.SetCol(instant, column)
			}
		}()
	}

	for instant := range p.instantCount {
		jobs <- instant
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return &Result{
		TFD:          tfd,
		FreqBins:     freqBins,
		Instants:     p.instantCount,
		TimeStep:     p.timeStep,
		WindowLength: p.windowLength,
		PolyOrder:    p.polyOrder,
		RadixLength:  p.radixLength,
		RadixOrder:   p.radixOrder,
		Warnings:     warnings,
	}, nil
}

// computeColumn is the per-instant unit of work: a pure function of the
// read-only signal, the normalized parameters and the instant index. Workers
// share nothing but those inputs, so columns may be computed in any order and
// in parallel.
func computeColumn(f *spectral.FFT, builder *kernelBuilder, sig Signal, p params, instant int, kernel []complex128, column []float64) error {
	t := instant * p.timeStep
	builder.build(sig, t, kernel)
	return project(f, kernel, column)
}

// allocateMatrix materializes the output matrix, converting an allocation
// panic into the engine's error taxonomy.
func allocateMatrix(rows, cols int) (m *mat.Dense, err error) {
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("cannot allocate %dx%d matrix (%v): %w", rows, cols, r, ErrAllocationFailure)
		}
	}()
	return mat.NewDense(rows, cols, nil), nil
}

// workerCount bounds the worker pool by the instant count and the machine
func workerCount(instants int) int {
	n := runtime.NumCPU()
	if n > instants {
		n = instants
	}
	if n < 1 {
		n = 1
	}
	return n
}
