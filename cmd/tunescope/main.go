package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tunelab/tunescope/internal/analysis"
	"github.com/tunelab/tunescope/internal/audio"
	"github.com/tunelab/tunescope/internal/batch"
	"github.com/tunelab/tunescope/internal/cli"
	"github.com/tunelab/tunescope/internal/logging"
	"github.com/tunelab/tunescope/internal/ui"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version bool     `short:"v" help:"Show version information"`
	Dir     string   `short:"d" type:"existingdir" help:"Directory to scan for audio files"`
	Out     string   `short:"o" default:"tunescope-results.json" help:"Output JSON file for analysis records"`
	Window  float64  `default:"60" help:"Seconds of audio analyzed per file"`
	Plain   bool     `help:"Disable the TUI and print plain per-file progress"`
	Logs    bool     `help:"Save detailed analysis logs next to each input file"`
	Debug   bool     `help:"Write a debug trace to tunescope-debug.log"`
	Files   []string `arg:"" name:"files" help:"Audio files to analyze" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("tunescope"),
		kong.Description("Musical feature extraction for audio libraries"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Collect inputs: explicit files first, then a directory scan
	files := append([]string{}, cliArgs.Files...)
	if cliArgs.Dir != "" {
		scanned, err := batch.Scan(cliArgs.Dir)
		if err != nil {
			cli.PrintError(fmt.Sprintf("Cannot scan %s: %v", cliArgs.Dir, err))
			os.Exit(1)
		}
		files = append(files, scanned...)
	}
	if len(files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	// Open debug log file
	debug := func(format string, args ...any) {}
	if cliArgs.Debug {
		debugLog, err := os.Create("tunescope-debug.log")
		if err == nil {
			defer debugLog.Close()
			debug = func(format string, args ...any) {
				fmt.Fprintf(debugLog, format+"\n", args...)
			}
		}
	}
	debug("[DEBUG] Inputs: %d file(s), window %.1fs", len(files), cliArgs.Window)

	runner := &batch.Runner{
		Options: audio.LoadOptions{WindowSeconds: cliArgs.Window},
	}

	var records []batch.Record
	if cliArgs.Plain {
		records = runPlain(runner, files, cliArgs.Logs, debug)
	} else {
		records = runWithUI(runner, files, cliArgs.Logs, cliArgs.Out, debug, tea.WithAltScreen())
	}

	if err := batch.WriteResults(records, cliArgs.Out); err != nil {
		cli.PrintError(fmt.Sprintf("Cannot write results: %v", err))
		os.Exit(1)
	}

	summary := batch.Summarize(records)
	fmt.Printf("Analyzed %d file(s): %d succeeded, %d failed\n",
		summary.Total, summary.Succeeded, summary.Failed)
	fmt.Printf("Results saved to %s\n", cliArgs.Out)
}

// runPlain analyzes files sequentially with line-based console output.
func runPlain(runner *batch.Runner, files []string, logs bool, debug func(string, ...any)) []batch.Record {
	var records []batch.Record
	for _, path := range files {
		fmt.Printf("Analyzing: %s\n", path)
		start := time.Now()

		rec := runner.RunOne(path)
		records = append(records, rec)
		debug("[DEBUG] %s done in %s (failed=%v)", path, time.Since(start).Round(time.Millisecond), rec.Failed())

		if rec.Failed() {
			fmt.Printf("  Error: %s\n", rec.Err)
			continue
		}

		res := rec.Result
		fmt.Printf("  Tempo: %.1f BPM\n", res.TempoBPM)
		fmt.Printf("  Key: %s\n", res.EstimatedKey)
		fmt.Printf("  Energy: %s\n", res.Mood.EnergyLevel)
		fmt.Printf("  Brightness: %s\n", res.Mood.Brightness)

		if logs {
			writeReport(path, start, res)
		}
	}
	return records
}

// runWithUI analyzes files in a background goroutine while the Bubbletea
// model renders the queue. Records travel over a buffered channel so the
// worker never shares a slice with the UI thread; on an early quit the
// worker is cancelled and joined before the partial records are returned.
func runWithUI(runner *batch.Runner, files []string, logs bool, outPath string, debug func(string, ...any), opts ...tea.ProgramOption) []batch.Record {
	model := ui.NewModel(files)
	p := tea.NewProgram(model, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recordCh := make(chan batch.Record, len(files))

	go func() {
		defer close(recordCh)
		for i, path := range files {
			select {
			case <-ctx.Done():
				debug("[DEBUG] Cancelled before %d/%d: %s", i+1, len(files), path)
				return
			default:
			}

			start := time.Now()
			debug("[DEBUG] Starting %d/%d: %s", i+1, len(files), path)
			p.Send(ui.FileStartMsg{FileIndex: i, FileName: path})

			runner.Progress = func(stage string, done float64) {
				p.Send(ui.ProgressMsg{Stage: stage, Progress: done})
			}

			rec := runner.RunOne(path)
			recordCh <- rec

			if logs && !rec.Failed() {
				writeReport(path, start, rec.Result)
			}

			p.Send(ui.FileCompleteMsg{FileIndex: i, Record: rec})
		}

		p.Send(ui.AllCompleteMsg{OutputPath: outPath})
	}()

	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}

	// Stop the worker after the file in flight and collect what finished.
	cancel()
	records := make([]batch.Record, 0, len(files))
	for rec := range recordCh {
		records = append(records, rec)
	}
	return records
}

func writeReport(path string, start time.Time, res *analysis.Result) {
	if err := logging.GenerateReport(logging.ReportData{
		InputPath: path,
		StartTime: start,
		EndTime:   time.Now(),
		Result:    res,
	}); err != nil {
		cli.PrintError(fmt.Sprintf("Cannot write analysis log for %s: %v", path, err))
	}
}
