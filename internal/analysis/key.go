package analysis

// noteNames maps a pitch-class index to its note name. Index 0 is C so that
// MIDI note numbers fold directly onto the table (60 mod 12 == 0 == C).
var noteNames = [NumChroma]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// estimateKey selects the dominant pitch class from the time-averaged chroma
// vector. Ties resolve to the lowest index.
func estimateKey(chromaMean []float64) string {
	best := 0
	for i := 1; i < NumChroma; i++ {
		if chromaMean[i] > chromaMean[best] {
			best = i
		}
	}
	return noteNames[best]
}
