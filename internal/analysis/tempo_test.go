package analysis

import (
	"math"
	"testing"
)

// periodicOnsets builds an onset envelope with impulses every period frames.
func periodicOnsets(n, period int) []float64 {
	onset := make([]float64, n)
	for i := 0; i < n; i += period {
		onset[i] = 1.0
	}
	return onset
}

func TestEstimateTempoFromPeriodicOnsets(t *testing.T) {
	// framesPerSecond at the 22050Hz/512 geometry is ~43.07.
	fps := float64(22050) / float64(HopLength)

	tests := []struct {
		name   string
		period int
		frames int
	}{
		{"fast pulse", 20, 500},      // ~129 BPM
		{"mid pulse", 30, 510},       // ~86 BPM
		{"slow pulse", 50, 500},      // ~52 BPM
		{"band-edge pulse", 64, 512}, // ~40 BPM, period at the last searched lag
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onset := periodicOnsets(tt.frames, tt.period)
			want := 60 * fps / float64(tt.period)

			tempo, beats := estimateTempo(onset, 22050)
			if math.Abs(tempo-want) > 2 {
				t.Errorf("tempo = %.1f, want ~%.1f", tempo, want)
			}
			if len(beats) == 0 {
				t.Error("no beats returned for periodic envelope")
			}
		})
	}
}

func TestEstimateTempoDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		onset []float64
	}{
		{"too short", []float64{1, 0, 1}},
		{"all zero", make([]float64, 200)},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempo, beats := estimateTempo(tt.onset, 22050)
			if tempo != 0 {
				t.Errorf("tempo = %g, want 0", tempo)
			}
			if beats != nil {
				t.Errorf("beats = %v, want nil", beats)
			}
		})
	}
}

func TestEstimateTempoWithinRange(t *testing.T) {
	// Whatever structure the envelope has, a nonzero estimate must stay in
	// the plausible search band.
	onset := make([]float64, 400)
	for i := range onset {
		onset[i] = math.Abs(math.Sin(float64(i) * 0.37))
	}

	tempo, _ := estimateTempo(onset, 22050)
	if tempo != 0 && (tempo < minTempoBPM || tempo > maxTempoBPM) {
		t.Errorf("tempo %.1f outside [%g, %g]", tempo, minTempoBPM, maxTempoBPM)
	}
}

func TestEstimateTempoPrefersFasterHarmonic(t *testing.T) {
	// Alternating strong and weak pulses every 15 frames. The raw
	// correlation winner is the 30-frame strong-pulse period, but the
	// 15-frame sub-period is well supported and must win.
	onset := make([]float64, 510)
	for i, strong := 0, true; i < len(onset); i, strong = i+15, !strong {
		if strong {
			onset[i] = 1.0
		} else {
			onset[i] = 0.8
		}
	}

	fps := float64(22050) / float64(HopLength)
	want := 60 * fps / 15

	tempo, _ := estimateTempo(onset, 22050)
	if math.Abs(tempo-want) > 2 {
		t.Errorf("tempo = %.1f, want ~%.1f (folded to sub-period)", tempo, want)
	}
}

func TestAutocorrelateNormalization(t *testing.T) {
	x := []float64{1, 0, 1, 0, 1, 0, 1, 0}
	ac := autocorrelate(x, 4)

	if ac[0] != 1 {
		t.Errorf("ac[0] = %g, want 1", ac[0])
	}
	// Even lags correlate, odd lags do not.
	if ac[2] <= ac[1] {
		t.Errorf("ac[2]=%g should exceed ac[1]=%g for period-2 input", ac[2], ac[1])
	}
}

func TestPickBeatsSnapsToPeaks(t *testing.T) {
	// Impulses every 10 frames, slightly off the grid at one position.
	onset := make([]float64, 60)
	for i := 0; i < len(onset); i += 10 {
		onset[i] = 1.0
	}
	onset[30] = 0
	onset[31] = 1.0 // peak shifted by one frame

	beats := pickBeats(onset, 10)
	found := false
	for _, b := range beats {
		if b == 31 {
			found = true
		}
		if b == 30 {
			t.Error("beat stayed on empty grid position 30 instead of snapping to 31")
		}
	}
	if !found {
		t.Errorf("beats %v missing snapped position 31", beats)
	}
}
