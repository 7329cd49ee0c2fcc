package cli

import (
	"fmt"
	"io"

	"github.com/phanxgames/gesture/scenario"
	"github.com/spf13/cobra"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Filter string
}

// FileValidation is the validation outcome of one scenario file.
type FileValidation struct {
	File  string `json:"file"`
	Name  string `json:"name,omitempty"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidationReport lists every validated file.
type ValidationReport struct {
	Valid   bool             `json:"valid"`
	Files   []FileValidation `json:"files"`
	Invalid int              `json:"invalid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <scenario|dir>...",
		Short: "Validate scenario files without running them",
		Long: `Check scenario files against the embedded JSON schema and the rules it
cannot express (step parameters and assertion fields).

Exit codes:
  0 - All files are valid
  1 - One or more files are invalid
  2 - Command error (missing paths, etc.)`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runValidate(opts *ValidateOptions, paths []string, cmd *cobra.Command) error {
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

	report := ValidationReport{Valid: true, Files: make([]FileValidation, 0, len(files))}
	for _, file := range files {
		formatter.VerboseLog("Validating %s", file)
		fv := FileValidation{File: file, Valid: true}
		sc, err := scenario.LoadScenario(file)
		if err != nil {
			fv.Valid = false
			fv.Error = err.Error()
			report.Valid = false
			report.Invalid++
		} else {
			fv.Name = sc.Name
		}
		report.Files = append(report.Files, fv)
	}

	if opts.Format == "json" {
		if !report.Valid {
			if err := formatter.Error(ErrCodeValidation, "validation failed", report); err != nil {
				return err
			}
		} else if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		writeValidateText(cmd.OutOrStdout(), report)
	}

	if !report.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d files invalid", report.Invalid, len(report.Files)))
	}
	return nil
}

func writeValidateText(w io.Writer, report ValidationReport) {
	if len(report.Files) == 0 {
		fmt.Fprintln(w, "No scenarios found.")
		return
	}
	for _, f := range report.Files {
		if f.Valid {
			fmt.Fprintf(w, "✓ %s (%s)\n", f.File, f.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n    %s\n", f.File, f.Error)
	}
	if report.Valid {
		fmt.Fprintln(w, "All scenarios valid.")
	}
}
