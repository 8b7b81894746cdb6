package analysis

import "math"

// NumChroma is the number of pitch-class bins.
const NumChroma = 12

// referencePitch is the tuning reference (A4) in Hz.
const referencePitch = 440.0

// chromaVector folds a magnitude spectrum into 12 pitch-class energy bins.
// Each bin maps to its nearest semitone relative to A440 and contributes its
// energy to that semitone's class modulo 12. Sub-audible bins are skipped so
// the octave mapping stays defined.
func chromaVector(mag, freqs []float64, dst []float64) {
	for i := range dst {
		dst[i] = 0
	}
	for i, m := range mag {
		freq := freqs[i]
		if freq < 20 || m == 0 {
			continue
		}
		// MIDI note number: 69 is A4 at the reference pitch.
		midi := 69 + 12*math.Log2(freq/referencePitch)
		class := int(math.Round(midi)) % NumChroma
		if class < 0 {
			class += NumChroma
		}
		dst[class] += m * m
	}
}
