// Package logging provides analysis report generation for analyzed audio
// files. This file contains the table formatting infrastructure for aligned
// metric listings.
package logging

import (
	"fmt"
	"strings"
)

// MetricRow represents a single row in a metric table.
// Values are pre-formatted strings to allow for mixed formatting.
type MetricRow struct {
	Label          string // Row label, e.g., "Spectral Centroid"
	Value          string // Formatted value
	Unit           string // Unit suffix, e.g., "Hz", "BPM", "" for unitless
	Interpretation string // Optional interpretation text (only shown if non-empty)
}

// MetricTable formats aligned label/value/unit columns with an optional
// interpretation column.
type MetricTable struct {
	Rows []MetricRow
}

// String renders the table with aligned columns.
// - Labels are left-aligned
// - Values are right-aligned
// - Units are appended after the value
// - Interpretation column only shown if any row has one
func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	hasInterpretation := false
	labelWidth, valueWidth, unitWidth := 0, 0, 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
		if len(row.Unit) > unitWidth {
			unitWidth = len(row.Unit)
		}
		if row.Interpretation != "" {
			hasInterpretation = true
		}
	}

	var b strings.Builder
	for _, row := range t.Rows {
		fmt.Fprintf(&b, "  %-*s  %*s", labelWidth, row.Label, valueWidth, row.Value)
		if unitWidth > 0 {
			fmt.Fprintf(&b, " %-*s", unitWidth, row.Unit)
		}
		if hasInterpretation && row.Interpretation != "" {
			fmt.Fprintf(&b, "  (%s)", row.Interpretation)
		}
		b.WriteString("\n")
	}
	return b.String()
}
