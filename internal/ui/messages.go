package ui

import (
	"github.com/tunelab/tunescope/internal/batch"
)

// ProgressMsg represents a progress update from the analysis pipeline
type ProgressMsg struct {
	Stage    string  // "Decoding" or "Analyzing"
	Progress float64 // 0.0 to 1.0
}

// FileStartMsg indicates a new file has started analysis
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg indicates a file has finished analysis
type FileCompleteMsg struct {
	FileIndex int
	Record    batch.Record
}

// AllCompleteMsg indicates all files have been analyzed
type AllCompleteMsg struct {
	OutputPath string
}
