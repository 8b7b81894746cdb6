package analysis

import "math"

const (
	// NumMFCC is the number of mel-cepstral coefficients kept per frame.
	NumMFCC = 13
	// numMelFilters is the size of the mel filter bank feeding the DCT.
	numMelFilters = 26
	// logFloor keeps the log of an empty mel band finite.
	logFloor = 1e-10
)

// melBank holds triangular mel filters over the positive-frequency bins.
type melBank struct {
	filters [][]float64
}

func hzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

func melToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// newMelBank builds numMelFilters triangular filters spanning 0..sampleRate/2
// on the mel scale, expressed over the FrameLength/2+1 spectrum bins.
func newMelBank(sampleRate int) *melBank {
	bins := FrameLength/2 + 1
	maxMel := hzToMel(float64(sampleRate) / 2)

	// Filter edge frequencies, evenly spaced in mel.
	edges := make([]float64, numMelFilters+2)
	for i := range edges {
		edges[i] = melToHz(maxMel * float64(i) / float64(numMelFilters+1))
	}

	hzPerBin := float64(sampleRate) / float64(FrameLength)
	filters := make([][]float64, numMelFilters)
	for f := range filters {
		filters[f] = make([]float64, bins)
		lo, mid, hi := edges[f], edges[f+1], edges[f+2]
		for b := range filters[f] {
			freq := float64(b) * hzPerBin
			switch {
			case freq <= lo || freq >= hi:
				// outside the triangle
			case freq <= mid:
				filters[f][b] = (freq - lo) / (mid - lo)
			default:
				filters[f][b] = (hi - freq) / (hi - mid)
			}
		}
	}
	return &melBank{filters: filters}
}

// coefficients computes NumMFCC mel-cepstral coefficients from a magnitude
// spectrum: mel-filtered power, floored log, then DCT-II keeping the lowest
// coefficients. A silent frame yields the DCT of the flat floored log.
func (mb *melBank) coefficients(mag []float64) []float64 {
	logEnergies := make([]float64, numMelFilters)
	for f, filter := range mb.filters {
		var energy float64
		for b, w := range filter {
			if w != 0 {
				energy += mag[b] * mag[b] * w
			}
		}
		if energy < logFloor {
			energy = logFloor
		}
		logEnergies[f] = math.Log(energy)
	}

	mfcc := make([]float64, NumMFCC)
	for i := range mfcc {
		for j, e := range logEnergies {
			mfcc[i] += e * math.Cos(math.Pi*float64(i)*(float64(j)+0.5)/float64(numMelFilters))
		}
	}
	return mfcc
}
