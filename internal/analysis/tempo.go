package analysis

import "math"

// Plausible tempo search range in beats per minute.
const (
	minTempoBPM = 40.0
	maxTempoBPM = 240.0
)

// harmonicFoldRatio is the minimum correlation strength, relative to the
// winning peak, for half its period to be preferred instead. Resolves the
// octave ambiguity toward the faster tempo.
const harmonicFoldRatio = 0.75

// estimateTempo derives a global tempo from the onset-strength envelope via
// autocorrelation, plus the beat positions as frame indices. A silent or
// near-constant signal has no detectable periodicity and reports tempo 0.
func estimateTempo(onset []float64, sampleRate int) (float64, []int) {
	if len(onset) < 4 {
		return 0, nil
	}

	// No rising spectral energy anywhere means no rhythmic events.
	var total float64
	for _, v := range onset {
		total += v
	}
	if total == 0 {
		return 0, nil
	}

	framesPerSecond := float64(sampleRate) / float64(HopLength)
	minLag := int(math.Ceil(60 * framesPerSecond / maxTempoBPM))
	maxLag := int(math.Floor(60 * framesPerSecond / minTempoBPM))
	if minLag < 1 {
		minLag = 1
	}
	if maxLag > len(onset)-3 {
		maxLag = len(onset) - 3
	}
	if maxLag < minLag {
		return 0, nil
	}

	// One lag past the search band so the local-maximum test at maxLag
	// stays in bounds.
	autocorr := autocorrelate(onset, maxLag+2)

	// Strongest local maximum within the plausible lag range.
	bestLag, bestVal := 0, 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		if autocorr[lag] > autocorr[lag-1] && autocorr[lag] >= autocorr[lag+1] && autocorr[lag] > bestVal {
			bestVal = autocorr[lag]
			bestLag = lag
		}
	}
	if bestLag == 0 {
		// No interior peak; fall back to the strongest plain lag.
		for lag := minLag; lag <= maxLag; lag++ {
			if autocorr[lag] > bestVal {
				bestVal = autocorr[lag]
				bestLag = lag
			}
		}
	}
	if bestLag == 0 || bestVal <= 0 {
		return 0, nil
	}

	// Fold down to the fastest well-supported harmonic: when half the
	// period is also a correlation peak of comparable strength, the beat
	// is twice as fast as the raw winner suggests.
	for bestLag/2 >= minLag {
		half := bestLag / 2
		cand, candVal := half, autocorr[half]
		for _, l := range []int{half - 1, half + 1} {
			if l >= minLag && l <= maxLag && autocorr[l] > candVal {
				cand, candVal = l, autocorr[l]
			}
		}
		if candVal < harmonicFoldRatio*bestVal {
			break
		}
		bestLag, bestVal = cand, candVal
	}

	period := float64(bestLag) / framesPerSecond
	tempo := 60.0 / period
	beats := pickBeats(onset, bestLag)
	return tempo, beats
}

// autocorrelate computes the normalized autocorrelation of x for lags
// [0, maxLag).
func autocorrelate(x []float64, maxLag int) []float64 {
	if maxLag > len(x) {
		maxLag = len(x)
	}
	ac := make([]float64, maxLag)
	for lag := 0; lag < maxLag; lag++ {
		var sum float64
		for i := 0; i < len(x)-lag; i++ {
			sum += x[i] * x[i+lag]
		}
		ac[lag] = sum / float64(len(x)-lag)
	}
	if ac[0] > 0 {
		for i := range ac {
			ac[i] /= ac[0]
		}
	}
	return ac
}

// pickBeats anchors a beat grid at the strongest onset and snaps each grid
// position to the nearest local onset peak within a quarter period.
func pickBeats(onset []float64, period int) []int {
	anchor := 0
	for i, v := range onset {
		if v > onset[anchor] {
			anchor = i
		}
	}

	start := anchor % period
	halfWin := period / 4
	var beats []int
	for pos := start; pos < len(onset); pos += period {
		best := pos
		lo, hi := pos-halfWin, pos+halfWin
		if lo < 0 {
			lo = 0
		}
		if hi >= len(onset) {
			hi = len(onset) - 1
		}
		for i := lo; i <= hi; i++ {
			if onset[i] > onset[best] {
				best = i
			}
		}
		beats = append(beats, best)
	}
	return beats
}
