// Package cli provides Cobra-based CLI commands for the practicegraph
// validation tool: document validation (validate), adoption-order
// inspection (order), and schema/version introspection.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "practicegraph",
	Short: "practices dependency graph validation",
	Long: `practicegraph validates practices graph documents.

A practices document is a static JSON file describing adoptable practices
and the directed "requires" edges between them. practicegraph checks the
document's structure against its schema and enforces the graph invariants:
unique ids, resolvable dependency references, no self-dependencies, no
cycles, and categories drawn from the allowed set.`,
	Example: `  # Validate the configured practices document
  practicegraph validate

  # Validate an explicit file
  practicegraph validate data/practices.json

  # Show the adoption order for a valid document
  practicegraph order data/practices.json

  # Print the expected document schema
  practicegraph schema`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".practicegraph/config.json", "Path to config file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
