package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/phanxgames/gesture/scenario"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Filter string
	Trace  bool // print every scenario's trace, not just failures
	Debug  bool // recognizer debug logging
}

// ScenarioResult is the per-scenario entry of a run report.
type ScenarioResult struct {
	Name   string           `json:"name"`
	File   string           `json:"file"`
	Pass   bool             `json:"pass"`
	Errors []string         `json:"errors,omitempty"`
	Result *scenario.Result `json:"result,omitempty"`
}

// RunReport summarizes a run.
type RunReport struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario|dir>...",
		Short: "Play gesture scenarios and check their assertions",
		Long: `Play gesture scenarios against a fresh recognizer on a manual clock and
evaluate their assertions.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (missing paths, unreadable scenarios, etc.)

Examples:
  gesture run ./scenarios
  gesture run swipe.yaml pinch.yaml --trace
  gesture run ./scenarios --filter "pinch_*" --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print the trace of every scenario")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "log every touch notification and gesture")

	return cmd
}

func runScenarios(opts *RunOptions, paths []string, cmd *cobra.Command) error {
	files, err := findScenarioFiles(paths, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	report := RunReport{Scenarios: make([]ScenarioResult, 0, len(files)), Total: len(files)}
	loadFailed := false
	for _, file := range files {
		formatter.VerboseLog("Running %s", file)
		res := runScenarioFile(opts, file)
		if res.Result == nil {
			loadFailed = true
		}
		if res.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Scenarios = append(report.Scenarios, res)
	}

	if opts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		writeRunText(cmd.OutOrStdout(), report, opts.Trace)
	}

	switch {
	case loadFailed:
		return NewExitError(ExitCommandError, "one or more scenarios could not be loaded")
	case report.Failed > 0:
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", report.Failed, report.Total))
	}
	return nil
}

func runScenarioFile(opts *RunOptions, file string) ScenarioResult {
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	sc, err := scenario.LoadScenario(file)
	if err != nil {
		return ScenarioResult{Name: name, File: file, Errors: []string{fmt.Sprintf("load: %v", err)}}
	}

	result, err := scenario.Run(sc, scenario.RunOptions{
		Logger: logrus.StandardLogger().WithField("scenario", sc.Name),
		Debug:  opts.Debug,
	})
	if err != nil {
		return ScenarioResult{Name: sc.Name, File: file, Errors: []string{err.Error()}}
	}
	return ScenarioResult{
		Name:   sc.Name,
		File:   file,
		Pass:   result.Pass,
		Errors: result.Errors,
		Result: result,
	}
}

func writeRunText(w io.Writer, report RunReport, trace bool) {
	if report.Total == 0 {
		fmt.Fprintln(w, "No scenarios found.")
		return
	}
	for _, s := range report.Scenarios {
		mark := "✓"
		if !s.Pass {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s\n", mark, s.Name)
		if s.Result != nil && (trace || !s.Pass) {
			for _, line := range strings.Split(strings.TrimRight(s.Result.Text(), "\n"), "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
			continue
		}
		for _, e := range s.Errors {
			fmt.Fprintf(w, "    %s\n", e)
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", report.Passed, report.Failed, report.Total)
}
