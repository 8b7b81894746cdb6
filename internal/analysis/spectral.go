package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// rolloffFraction is the share of spectral energy below the rolloff point.
const rolloffFraction = 0.85

// spectralAnalyzer computes per-frame spectra and the scalar descriptors
// derived from them. One instance is reused across all frames of a signal.
type spectralAnalyzer struct {
	fft   *fourier.FFT
	freqs []float64 // bin center frequencies, len = FrameLength/2 + 1
}

func newSpectralAnalyzer(sampleRate int) *spectralAnalyzer {
	bins := FrameLength/2 + 1
	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) * float64(sampleRate) / float64(FrameLength)
	}
	return &spectralAnalyzer{
		fft:   fourier.NewFFT(FrameLength),
		freqs: freqs,
	}
}

// magnitude writes the magnitude spectrum of a windowed frame into dst.
// dst must have length FrameLength/2 + 1.
func (sa *spectralAnalyzer) magnitude(windowed []float64, dst []float64) {
	coeffs := sa.fft.Coefficients(nil, windowed)
	for i := range dst {
		dst[i] = cmplx.Abs(coeffs[i])
	}
}

// centroid is the magnitude-weighted mean frequency, 0 for an empty spectrum.
func (sa *spectralAnalyzer) centroid(mag []float64) float64 {
	var weighted, total float64
	for i, m := range mag {
		weighted += sa.freqs[i] * m
		total += m
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// rolloff is the smallest bin frequency below which rolloffFraction of the
// total spectral energy is contained, 0 for an empty spectrum.
func (sa *spectralAnalyzer) rolloff(mag []float64) float64 {
	var total float64
	for _, m := range mag {
		total += m * m
	}
	if total == 0 {
		return 0
	}

	threshold := total * rolloffFraction
	var cum float64
	for i, m := range mag {
		cum += m * m
		if cum >= threshold {
			return sa.freqs[i]
		}
	}
	return sa.freqs[len(sa.freqs)-1]
}

// zeroCrossingRate is the fraction of adjacent-sample sign changes.
func zeroCrossingRate(frame []float64) float64 {
	var crossings int
	for i := 1; i < len(frame); i++ {
		if (frame[i] >= 0 && frame[i-1] < 0) || (frame[i] < 0 && frame[i-1] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(frame))
}

// rootMeanSquare is the RMS amplitude of the raw (unwindowed) frame.
func rootMeanSquare(frame []float64) float64 {
	var sum float64
	for _, s := range frame {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(frame)))
}

// onsetStrength is the half-wave-rectified spectral flux between successive
// magnitude spectra, the per-frame sample of the onset envelope.
func onsetStrength(mag, prev []float64) float64 {
	var flux float64
	for i := range mag {
		if d := mag[i] - prev[i]; d > 0 {
			flux += d
		}
	}
	return flux
}
