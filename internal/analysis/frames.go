// Package analysis extracts musical descriptors from a mono audio signal:
// spectral and temporal frame features, tempo, estimated key, and rule-based
// mood labels, assembled into a single analysis result.
package analysis

import "math"

const (
	// FrameLength is the analysis frame size in samples.
	FrameLength = 2048
	// HopLength is the distance between successive frame starts.
	HopLength = 512
)

// frameSeq is a finite, restartable sequence of overlapping frames over an
// immutable sample buffer. Frames are materialized on demand.
type frameSeq struct {
	samples []float64
	window  []float64
}

func newFrameSeq(samples []float64) *frameSeq {
	return &frameSeq{
		samples: samples,
		window:  hannWindow(FrameLength),
	}
}

// count is floor((N - FrameLength)/HopLength) + 1, or 0 for short signals.
func (fs *frameSeq) count() int {
	if len(fs.samples) < FrameLength {
		return 0
	}
	return (len(fs.samples)-FrameLength)/HopLength + 1
}

// raw returns the i-th frame as a view into the sample buffer.
func (fs *frameSeq) raw(i int) []float64 {
	start := i * HopLength
	return fs.samples[start : start+FrameLength]
}

// windowed writes the Hann-windowed i-th frame into dst and returns it.
// dst must have length FrameLength.
func (fs *frameSeq) windowed(i int, dst []float64) []float64 {
	frame := fs.raw(i)
	for j := range dst {
		dst[j] = frame[j] * fs.window[j]
	}
	return dst
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
