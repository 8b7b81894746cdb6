// Package batch analyzes a set of audio files and collects one record per
// file, success or error, in input order.
package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tunelab/tunescope/internal/analysis"
	"github.com/tunelab/tunescope/internal/audio"
)

// Record is the per-file outcome: a full analysis result or an error record,
// never both. Records serialize to the shape downstream consumers expect.
type Record struct {
	FileName string
	Result   *analysis.Result
	Err      string
}

// Failed reports whether this record is an error record.
func (r Record) Failed() bool { return r.Err != "" }

// MarshalJSON emits either the full result with its file name attached or
// the two-field error record.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Error    string `json:"error"`
			FileName string `json:"file_name"`
		}{r.Err, r.FileName})
	}
	type result analysis.Result
	return json.Marshal(struct {
		FileName string `json:"file_name"`
		*result
	}{r.FileName, (*result)(r.Result)})
}

// Runner analyzes files one at a time with no shared state between files.
type Runner struct {
	Options audio.LoadOptions
	// Progress, when set, receives stage updates for the file being analyzed.
	Progress analysis.ProgressFunc
}

// RunOne loads and analyzes a single file. Failures become error records;
// the caller decides nothing, the record carries the outcome.
func (r *Runner) RunOne(path string) Record {
	rec := Record{FileName: filepath.Base(path)}

	sig, err := audio.Load(path, r.Options)
	if err != nil {
		rec.Err = err.Error()
		return rec
	}

	res, err := analysis.Analyze(sig, r.Progress)
	if err != nil {
		rec.Err = err.Error()
		return rec
	}

	rec.Result = res
	return rec
}

// Run analyzes every file in order, continuing past failures. The returned
// slice always has one record per input path, order preserved.
func (r *Runner) Run(paths []string) []Record {
	records := make([]Record, 0, len(paths))
	for _, path := range paths {
		records = append(records, r.RunOne(path))
	}
	return records
}

// Scan lists the recognized audio files directly inside dir, sorted by name
// so batch output order is deterministic.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if audio.Recognized(strings.ToLower(entry.Name())) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// WriteResults writes the ordered record sequence as an indented JSON array.
func WriteResults(records []Record, outPath string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, append(data, '\n'), 0o644)
}

// Summary counts outcomes across a record sequence.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Summarize tallies a record sequence.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, rec := range records {
		if rec.Failed() {
			s.Failed++
		} else {
			s.Succeeded++
		}
	}
	return s
}
