package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mararual/practicegraph/internal/checks"
	"github.com/mararual/practicegraph/internal/config"
	"github.com/mararual/practicegraph/internal/dag"
	"github.com/mararual/practicegraph/internal/practices"
)

var (
	orderCompactFlag  bool
	orderDetailedFlag bool
)

var orderCmd = &cobra.Command{
	Use:   "order [path]",
	Short: "Show the adoption order for a practices document",
	Long: `Show the adoption order for a practices document.

Practices are layered into stages by prerequisite depth: stage 1 holds the
practices with no requirements, and each later stage holds the practices
whose requirements are all met by earlier stages. Practices within a stage
can be adopted in any order.

The document is fully validated first; an invalid document is reported the
same way as 'practicegraph validate' and no order is rendered.`,
	Example: `  # Stage view
  practicegraph order data/practices.json

  # One-line view
  practicegraph order --compact data/practices.json

  # Per-practice view with requirements
  practicegraph order --detailed data/practices.json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		noColor, _ := cmd.Flags().GetBool("no-color")
		return runOrderCommand(args, configPath, noColor, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.Flags().BoolVar(&orderCompactFlag, "compact", false, "Render stages on a single line")
	orderCmd.Flags().BoolVar(&orderDetailedFlag, "detailed", false, "Render per-practice requirements and dependents")
}

// runOrderCommand executes the order command.
func runOrderCommand(args []string, configPath string, noColor bool, out, errOut io.Writer) error {
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

	// The adoption order is only meaningful for a valid document.
	validator := checks.NewValidator()
	validator.Categories = cfg.Categories
	report, err := validator.Validate(raw)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	if !report.Success {
		return formatReport(report, raw, path, cfg.MaxErrors, out, errOut)
	}

	doc, err := raw.Decode()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	graph, err := buildGraph(doc)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	if _, err := graph.ComputeStages(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	switch {
	case orderCompactFlag:
		fmt.Fprintln(out, graph.RenderCompact())
	case orderDetailedFlag:
		fmt.Fprint(out, graph.RenderDetailed())
	default:
		fmt.Fprint(out, graph.RenderASCII())
	}
	return nil
}

// buildGraph constructs the dependency graph from a validated document.
func buildGraph(doc *practices.Document) (*dag.Graph, error) {
	vertices := make([]dag.Vertex, 0, len(doc.Practices))
	for _, p := range doc.Practices {
		vertices = append(vertices, dag.Vertex{ID: p.ID, Label: p.Name})
	}
	edges := make([]dag.Edge, 0, len(doc.Dependencies))
	for _, d := range doc.Dependencies {
		edges = append(edges, dag.Edge{From: d.PracticeID, To: d.DependsOnID})
	}
	return dag.Build(vertices, edges)
}
