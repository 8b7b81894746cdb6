package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderAnalysisView renders the main analysis view
func renderAnalysisView(m Model) string {
	var b strings.Builder

	// Header
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	// File queue
	b.WriteString(renderFileQueue(m))
	b.WriteString("\n")

	// Overall progress
	b.WriteString(renderOverallProgress(m))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2A6FA8")).
		Render("Tunescope 🎧 - Audio Feature Analyzer")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Analyzing %d file(s)", m.TotalFiles))

	return title + "\n" + subtitle
}

// renderFileQueue renders the list of files with their status
func renderFileQueue(m Model) string {
	var b strings.Builder

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFileEntry renders a single file entry in the queue
func renderFileEntry(file FileProgress) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		// ✓ completed file with analysis summary
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		res := file.Record.Result
		summary := fmt.Sprintf("%.1f BPM | Key %s | %s · %s · %s",
			res.TempoBPM, res.EstimatedKey,
			res.Mood.EnergyLevel, res.Mood.Brightness, res.Mood.RhythmicStability)
		return fmt.Sprintf(" %s %s\n   %s", icon, fileName, summary)

	case StatusDecoding, StatusAnalyzing:
		// ⚙ active file with progress bar
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s\n   %s %s",
			icon, fileName, file.Stage, renderProgressBar(file.Progress, 30))

	case StatusError:
		// ✗ failed file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   Error: %s", icon, fileName, file.Record.Err)

	default:
		// · queued file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("·")
		return fmt.Sprintf(" %s %s", icon, fileName)
	}
}

// renderProgressBar renders a simple unicode progress bar
func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	filled := int(progress * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, progress*100)
}

// renderOverallProgress renders the run-level progress line
func renderOverallProgress(m Model) string {
	done := m.CompletedFiles + m.FailedFiles
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	return style.Render(fmt.Sprintf("%d/%d files · q to quit", done, m.TotalFiles))
}

// renderCompletionSummary renders the final screen after all files finish
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("Analysis complete")
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(renderFileQueue(m))
	b.WriteString("\n")

	summary := fmt.Sprintf("Analyzed %d file(s): %d succeeded, %d failed",
		m.TotalFiles, m.CompletedFiles, m.FailedFiles)
	b.WriteString(summary)
	b.WriteString("\n")

	if m.OutputPath != "" {
		b.WriteString(fmt.Sprintf("Results written to %s\n", m.OutputPath))
	}

	return b.String()
}
