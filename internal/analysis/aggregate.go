package analysis

import "math"

// FeatureStats is the serialized aggregate of the per-frame scalar features.
type FeatureStats struct {
	SpectralCentroidMean float64   `json:"spectral_centroid_mean"`
	SpectralCentroidStd  float64   `json:"spectral_centroid_std"`
	SpectralRolloffMean  float64   `json:"spectral_rolloff_mean"`
	ZeroCrossingRateMean float64   `json:"zero_crossing_rate_mean"`
	RMSEnergyMean        float64   `json:"rms_energy_mean"`
	RMSEnergyStd         float64   `json:"rms_energy_std"`
	MFCCMeans            []float64 `json:"mfcc_means"`
}

// aggregate holds everything derived from the frame features, including the
// values the mood classifiers and key estimator need but the output omits.
type aggregate struct {
	stats      FeatureStats
	zcrStd     float64
	chromaMean []float64
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population standard deviation of the frame series.
func stddev(xs []float64, m float64) float64 {
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// aggregateFeatures collapses per-frame series into scalar statistics plus
// the column-wise chroma and MFCC means.
func aggregateFeatures(ff *frameFeatures) aggregate {
	centroidMean := mean(ff.centroid)
	zcrMean := mean(ff.zcr)
	rmsMean := mean(ff.rms)

	mfccMeans := make([]float64, NumMFCC)
	for _, row := range ff.mfcc {
		for i, v := range row {
			mfccMeans[i] += v
		}
	}
	for i := range mfccMeans {
		mfccMeans[i] /= float64(len(ff.mfcc))
	}

	chromaMean := make([]float64, NumChroma)
	for _, row := range ff.chroma {
		for i, v := range row {
			chromaMean[i] += v
		}
	}
	for i := range chromaMean {
		chromaMean[i] /= float64(len(ff.chroma))
	}

	return aggregate{
		stats: FeatureStats{
			SpectralCentroidMean: centroidMean,
			SpectralCentroidStd:  stddev(ff.centroid, centroidMean),
			SpectralRolloffMean:  mean(ff.rolloff),
			ZeroCrossingRateMean: zcrMean,
			RMSEnergyMean:        rmsMean,
			RMSEnergyStd:         stddev(ff.rms, rmsMean),
			MFCCMeans:            mfccMeans,
		},
		zcrStd:     stddev(ff.zcr, zcrMean),
		chromaMean: chromaMean,
	}
}
