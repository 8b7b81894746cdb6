package analysis

import (
	"fmt"

	"github.com/tunelab/tunescope/internal/audio"
)

// Result is the canonical analysis record for one recording. Field names
// mirror the serialized output consumed by downstream catalogs.
type Result struct {
	DurationSeconds float64      `json:"duration_seconds"`
	TempoBPM        float64      `json:"tempo_bpm"`
	EstimatedKey    string       `json:"estimated_key"`
	Features        FeatureStats `json:"features"`
	Mood            Mood         `json:"mood_indicators"`

	// BeatFrames are the estimated beat positions as frame indices,
	// auxiliary output not part of the serialized record.
	BeatFrames []int `json:"-"`
}

// Error reports a failure inside feature computation. The zero-result,
// zero-default rule holds: a failed analysis yields this and nothing else.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("analysis failed: %s", e.Reason)
}

// ProgressFunc receives pipeline progress in [0,1] for a named stage.
type ProgressFunc func(stage string, done float64)

// frameFeatures holds the per-frame descriptor series. All slices share the
// same length, the frame count.
type frameFeatures struct {
	centroid []float64
	rolloff  []float64
	zcr      []float64
	rms      []float64
	mfcc     [][]float64
	chroma   [][]float64
	onset    []float64
}

// Analyze runs the full extraction pipeline over a loaded signal and returns
// its analysis record. The pipeline is synchronous and allocation-local;
// concurrent calls on distinct signals are safe. progress may be nil.
func Analyze(sig *audio.Signal, progress ProgressFunc) (*Result, error) {
	frames := newFrameSeq(sig.Samples)
	n := frames.count()
	if n == 0 {
		return nil, &Error{Reason: "signal shorter than one analysis frame"}
	}

	sa := newSpectralAnalyzer(sig.SampleRate)
	mel := newMelBank(sig.SampleRate)

	ff := &frameFeatures{
		centroid: make([]float64, n),
		rolloff:  make([]float64, n),
		zcr:      make([]float64, n),
		rms:      make([]float64, n),
		mfcc:     make([][]float64, n),
		chroma:   make([][]float64, n),
		onset:    make([]float64, n),
	}

	windowed := make([]float64, FrameLength)
	mag := make([]float64, FrameLength/2+1)
	prevMag := make([]float64, FrameLength/2+1)

	for i := 0; i < n; i++ {
		raw := frames.raw(i)
		sa.magnitude(frames.windowed(i, windowed), mag)

		ff.centroid[i] = sa.centroid(mag)
		ff.rolloff[i] = sa.rolloff(mag)
		ff.zcr[i] = zeroCrossingRate(raw)
		ff.rms[i] = rootMeanSquare(raw)
		ff.mfcc[i] = mel.coefficients(mag)
		ff.chroma[i] = make([]float64, NumChroma)
		chromaVector(mag, sa.freqs, ff.chroma[i])

		if i > 0 {
			ff.onset[i] = onsetStrength(mag, prevMag)
		}
		copy(prevMag, mag)

		if progress != nil && i%64 == 0 {
			progress("Analyzing", float64(i)/float64(n))
		}
	}

	agg := aggregateFeatures(ff)
	tempo, beats := estimateTempo(ff.onset, sig.SampleRate)

	if progress != nil {
		progress("Analyzing", 1.0)
	}

	return &Result{
		DurationSeconds: sig.Duration(),
		TempoBPM:        tempo,
		EstimatedKey:    estimateKey(agg.chromaMean),
		Features:        agg.stats,
		Mood:            classifyMood(agg.stats.RMSEnergyMean, tempo, agg.stats.SpectralCentroidMean, agg.zcrStd),
		BeatFrames:      beats,
	}, nil
}
