package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mararual/practicegraph/internal/checks"
	"github.com/mararual/practicegraph/internal/config"
	"github.com/mararual/practicegraph/internal/practices"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a practices document",
	Long: `Validate a practices document against its schema and graph rules.

The structural schema check runs first; if the document does not match the
declared shape, only schema errors are reported. Otherwise all graph rules
run and every finding is reported together, so multiple issues can be fixed
in one iteration.

Checks:
  - JSON structure: required fields, types, id/version/date formats
  - Unique practice ids
  - Dependency references resolve to existing practices
  - No practice depends on itself
  - No dependency cycles (one concrete cycle is reported)
  - Categories drawn from the allowed set

Exit Codes:
  0 - Success (document is valid)
  1 - Validation failed (document has errors)
  3 - Invalid arguments (missing or unparseable file, broken config)`,
	Example: `  # Validate the configured document (config data_path)
  practicegraph validate

  # Validate an explicit file
  practicegraph validate data/practices.json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		noColor, _ := cmd.Flags().GetBool("no-color")
		return runValidateCommand(args, configPath, noColor, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidateCommand executes the validate command.
func runValidateCommand(args []string, configPath string, noColor bool, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	if noColor || !cfg.Color {
		color.NoColor = true
	}

	path := cfg.DataPath
	if len(args) == 1 {
		path = args[0]
	}

	raw, err := practices.Load(path)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	validator := checks.NewValidator()
	validator.Categories = cfg.Categories

	report, err := validator.Validate(raw)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	return formatReport(report, raw, path, cfg.MaxErrors, out, errOut)
}

// formatReport formats and displays the validation report. maxErrors caps
// the printed errors only; the report itself is never truncated.
func formatReport(report *checks.Report, raw *practices.RawDocument, path string, maxErrors int, out, errOut io.Writer) error {
	if report.Success {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s %s is valid\n", green("✓"), path)
		printDocumentSummary(raw, out)
		return nil
	}

	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(errOut, "%s %s has %d error(s)\n\n", red("✗"), path, len(report.Errors))

	shown := report.Errors
	truncated := 0
	if maxErrors > 0 && len(shown) > maxErrors {
		truncated = len(shown) - maxErrors
		shown = shown[:maxErrors]
	}

	for i, e := range shown {
		fmt.Fprintf(errOut, "Error %d [%s]:\n", i+1, e.Rule)

		if e.Path != "" {
			fmt.Fprintf(errOut, "  Path: %s\n", e.Path)
		}
		fmt.Fprintf(errOut, "  Message: %s\n", e.Message)
		if len(e.Cycle) > 0 {
			fmt.Fprintf(errOut, "  Cycle: %s\n", strings.Join(e.Cycle, " -> "))
		}
		if e.Hint != "" {
			fmt.Fprintf(errOut, "  %s %s\n", yellow("Hint:"), e.Hint)
		}
		fmt.Fprintf(errOut, "\n")
	}

	if truncated > 0 {
		fmt.Fprintf(errOut, "... and %d more error(s)\n", truncated)
	}

	return NewExitError(ExitValidationFailed)
}

// printDocumentSummary prints counts for a valid document.
func printDocumentSummary(raw *practices.RawDocument, out io.Writer) {
	doc, err := raw.Decode()
	if err != nil {
		return
	}
	fmt.Fprintf(out, "\nSummary:\n")
	fmt.Fprintf(out, "  practices: %d\n", len(doc.Practices))
	fmt.Fprintf(out, "  dependencies: %d\n", len(doc.Dependencies))
	fmt.Fprintf(out, "  version: %s\n", doc.Metadata.Version)
}
