package analysis

// Mood classification thresholds. These are the single source of truth for
// the rule-based labels; all comparisons are strict so boundary values fall
// to the lower tier.
const (
	energyHighScore   = 8.0
	energyMediumScore = 5.0

	brightCentroidHz   = 3000.0
	balancedCentroidHz = 1500.0

	veryStableZCRStd = 0.01
	stableZCRStd     = 0.02
)

// Mood holds the three categorical mood labels.
type Mood struct {
	EnergyLevel       string `json:"energy_level"`
	Brightness        string `json:"brightness"`
	RhythmicStability string `json:"rhythmic_stability"`
}

// classifyMood derives all three labels. Pure function of its inputs.
func classifyMood(rmsMean, tempo, centroidMean, zcrStd float64) Mood {
	return Mood{
		EnergyLevel:       classifyEnergy(rmsMean, tempo),
		Brightness:        classifyBrightness(centroidMean),
		RhythmicStability: classifyRhythmicStability(zcrStd),
	}
}

// classifyEnergy scores loudness and tempo together.
func classifyEnergy(rmsMean, tempo float64) string {
	score := rmsMean*10 + tempo/20
	switch {
	case score > energyHighScore:
		return "High Energy"
	case score > energyMediumScore:
		return "Medium Energy"
	default:
		return "Low Energy"
	}
}

// classifyBrightness maps the mean spectral centroid to a timbre label.
func classifyBrightness(centroidMean float64) string {
	switch {
	case centroidMean > brightCentroidHz:
		return "Bright"
	case centroidMean > balancedCentroidHz:
		return "Balanced"
	default:
		return "Dark"
	}
}

// classifyRhythmicStability maps zero-crossing-rate spread to a label.
func classifyRhythmicStability(zcrStd float64) string {
	switch {
	case zcrStd < veryStableZCRStd:
		return "Very Stable"
	case zcrStd < stableZCRStd:
		return "Stable"
	default:
		return "Dynamic"
	}
}
