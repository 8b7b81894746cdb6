package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tunelab/tunescope/internal/analysis"
)

// ReportData carries everything needed to generate a per-file report.
type ReportData struct {
	InputPath string
	StartTime time.Time
	EndTime   time.Time
	Result    *analysis.Result
}

// GenerateReport writes a human-readable analysis report next to the input
// file, named <basename>-analysis.log.
func GenerateReport(data ReportData) error {
	outPath := reportPath(data.InputPath)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	res := data.Result

	b.WriteString(strings.Repeat("=", 70) + "\n")
	fmt.Fprintf(&b, "TUNESCOPE ANALYSIS: %s\n", filepath.Base(data.InputPath))
	b.WriteString(strings.Repeat("=", 70) + "\n\n")

	fmt.Fprintf(&b, "Analyzed:  %s\n", data.EndTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Elapsed:   %s\n", data.EndTime.Sub(data.StartTime).Round(time.Millisecond))
	fmt.Fprintf(&b, "Duration:  %.1f s\n\n", res.DurationSeconds)

	b.WriteString("MUSICAL PROPERTIES\n")
	musical := &MetricTable{Rows: []MetricRow{
		{Label: "Tempo", Value: fmt.Sprintf("%.1f", res.TempoBPM), Unit: "BPM", Interpretation: interpretTempo(res.TempoBPM)},
		{Label: "Estimated Key", Value: res.EstimatedKey, Interpretation: "dominant pitch class"},
		{Label: "Beats Found", Value: fmt.Sprintf("%d", len(res.BeatFrames))},
	}}
	b.WriteString(musical.String())
	b.WriteString("\n")

	b.WriteString("SPECTRAL FEATURES\n")
	ft := res.Features
	spectral := &MetricTable{Rows: []MetricRow{
		{Label: "Centroid Mean", Value: fmt.Sprintf("%.0f", ft.SpectralCentroidMean), Unit: "Hz", Interpretation: interpretCentroid(ft.SpectralCentroidMean)},
		{Label: "Centroid Std", Value: fmt.Sprintf("%.0f", ft.SpectralCentroidStd), Unit: "Hz"},
		{Label: "Rolloff Mean", Value: fmt.Sprintf("%.0f", ft.SpectralRolloffMean), Unit: "Hz"},
		{Label: "ZCR Mean", Value: fmt.Sprintf("%.4f", ft.ZeroCrossingRateMean)},
		{Label: "RMS Mean", Value: fmt.Sprintf("%.4f", ft.RMSEnergyMean), Interpretation: interpretRMS(ft.RMSEnergyMean)},
		{Label: "RMS Std", Value: fmt.Sprintf("%.4f", ft.RMSEnergyStd)},
	}}
	b.WriteString(spectral.String())
	b.WriteString("\n")

	b.WriteString("MFCC MEANS\n  ")
	for i, v := range ft.MFCCMeans {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.2f", v)
	}
	b.WriteString("\n\n")

	b.WriteString("MOOD INDICATORS\n")
	mood := &MetricTable{Rows: []MetricRow{
		{Label: "Energy Level", Value: res.Mood.EnergyLevel},
		{Label: "Brightness", Value: res.Mood.Brightness},
		{Label: "Rhythmic Stability", Value: res.Mood.RhythmicStability},
	}}
	b.WriteString(mood.String())

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// reportPath derives the report filename from the input filename.
// Example: /path/to/track.mp3 → /path/to/track-analysis.log
func reportPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, base+"-analysis.log")
}

// interpretTempo describes a tempo in broad musical terms.
func interpretTempo(bpm float64) string {
	switch {
	case bpm == 0:
		return "no detectable pulse"
	case bpm < 60:
		return "very slow"
	case bpm < 90:
		return "slow"
	case bpm < 120:
		return "moderate"
	case bpm < 150:
		return "fast"
	default:
		return "very fast"
	}
}

// interpretCentroid describes where spectral energy concentrates.
func interpretCentroid(hz float64) string {
	switch {
	case hz > 3000:
		return "bright, treble-heavy"
	case hz > 1500:
		return "balanced spectrum"
	default:
		return "dark, bass-heavy"
	}
}

// interpretRMS describes overall loudness.
func interpretRMS(rms float64) string {
	switch {
	case rms > 0.3:
		return "loud"
	case rms > 0.1:
		return "moderate level"
	default:
		return "quiet"
	}
}
