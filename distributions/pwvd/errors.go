// Package pwvd implements the sixth-order Polynomial Wigner-Ville
// Distribution, a time-frequency energy distribution that generalizes the
// bilinear Wigner-Ville lag product to a sixth-order multi-lag product for
// improved concentration on signals with non-linear instantaneous-frequency
// laws.
//
// References:
// B. Boashash and P. O'Shea, "Polynomial Wigner-Ville distributions and their
// relationship to time-varying higher order spectra", IEEE Transactions on
// Signal Processing, 42(1), 1994.
// B. Boashash (ed.), "Time-Frequency Signal Analysis and Processing", 2nd
// Edition, Academic Press, 2015.
package pwvd

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is;
// wrapped messages carry the name of the offending parameter.
var (
	// ErrInvalidShape is returned when the signal is not a one-dimensional
	// sequence of length >= 2.
	ErrInvalidShape = errors.New("pwvd: input must be a vector")

	// ErrInvalidParameter is returned when a scalar parameter violates a
	// basic range rule (window length or time step below 1, negative FFT
	// length).
	ErrInvalidParameter = errors.New("pwvd: invalid parameter")

	// ErrParameterOutOfRange is returned when a parameter is well-formed on
	// its own but inconsistent with the signal (time step beyond the signal
	// length).
	ErrParameterOutOfRange = errors.New("pwvd: parameter out of range")

	// ErrTransformFailure is returned when the spectral projection step
	// cannot be computed. Fatal for the invocation; no partial output.
	ErrTransformFailure = errors.New("pwvd: spectral transform failed")

	// ErrAllocationFailure is returned when the output matrix cannot be
	// materialized. Fatal for the invocation; no partial output.
	ErrAllocationFailure = errors.New("pwvd: matrix allocation failed")
)
