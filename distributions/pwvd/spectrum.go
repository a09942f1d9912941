package pwvd

import (
	"fmt"

	"github.com/fjgtlwz/SOFTX-D-17-00059/algorithms/spectral"
)

// project applies the radix-2 transform to one kernel sequence and writes the
// real parts of the non-negative-frequency half into dst (length radix/2).
// The kernel is Hermitian-symmetric, so the imaginary residue of each bin is
// numerical noise and is discarded.
func project(f *spectral.FFT, kernel []complex128, dst []float64) error {
	spectrum := f.Compute(kernel)
	if len(spectrum) != len(kernel) {
		return fmt.Errorf("transform of length %d returned %d bins: %w",
			len(kernel), len(spectrum), ErrTransformFailure)
	}

	for i := range dst {
		dst[i] = real(spectrum[i])
	}
	return nil
}
