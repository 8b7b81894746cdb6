package analysis

import (
	"math"
	"testing"
)

func TestFrameCount(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		want    int
	}{
		{"empty", 0, 0},
		{"one short of a frame", FrameLength - 1, 0},
		{"exactly one frame", FrameLength, 1},
		{"one hop short of two frames", FrameLength + HopLength - 1, 1},
		{"exactly two frames", FrameLength + HopLength, 2},
		{"one second at target rate", 22050, (22050-FrameLength)/HopLength + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFrameSeq(make([]float64, tt.samples))
			if got := fs.count(); got != tt.want {
				t.Errorf("count for %d samples = %d, want %d", tt.samples, got, tt.want)
			}
		})
	}
}

func TestFrameOverlap(t *testing.T) {
	samples := make([]float64, FrameLength+2*HopLength)
	for i := range samples {
		samples[i] = float64(i)
	}
	fs := newFrameSeq(samples)

	for i := 0; i < fs.count(); i++ {
		frame := fs.raw(i)
		if frame[0] != float64(i*HopLength) {
			t.Errorf("frame %d starts at sample %g, want %d", i, frame[0], i*HopLength)
		}
		if len(frame) != FrameLength {
			t.Errorf("frame %d length = %d, want %d", i, len(frame), FrameLength)
		}
	}
}

func TestHannWindowShape(t *testing.T) {
	w := hannWindow(FrameLength)

	if w[0] > 1e-12 {
		t.Errorf("window start = %g, want 0", w[0])
	}
	mid := w[FrameLength/2]
	if math.Abs(mid-1.0) > 1e-3 {
		t.Errorf("window midpoint = %g, want ~1", mid)
	}
	// Symmetric form: w[i] == w[n-1-i].
	for i := 0; i < 16; i++ {
		if math.Abs(w[i]-w[FrameLength-1-i]) > 1e-12 {
			t.Errorf("window asymmetric at index %d: %g vs %g", i, w[i], w[FrameLength-1-i])
		}
	}
}

func TestEstimateKey(t *testing.T) {
	tests := []struct {
		name   string
		chroma []float64
		want   string
	}{
		{"all zero defaults to C", make([]float64, NumChroma), "C"},
		{"dominant A", chromaWithPeak(9, 1.0), "A"},
		{"dominant F sharp", chromaWithPeak(6, 2.5), "F#"},
		{"tie resolves to lower index", []float64{0, 3, 0, 3, 0, 0, 0, 0, 0, 0, 0, 0}, "C#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateKey(tt.chroma); got != tt.want {
				t.Errorf("estimateKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func chromaWithPeak(class int, energy float64) []float64 {
	c := make([]float64, NumChroma)
	for i := range c {
		c[i] = 0.1
	}
	c[class] = energy
	return c
}
