// Package analysis provides spectral checks over recorded elevation
// series. For a single Airy component the power spectrum of any probe
// should peak at omega/2pi.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the one-sided FFT of data.
// The input is zero-padded to the next power of two.
func PowerSpectrum(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency (Hz) of the strongest non-DC
// spectral bin of a series sampled at interval dt.
func DominantFrequency(data []float64, dt float64) float64 {
	if len(data) < 2 || dt <= 0 {
		return 0
	}

	ps := PowerSpectrum(data)

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	return float64(maxIdx) / (float64(n) * dt)
}
