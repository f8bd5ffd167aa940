package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mararual/practicegraph/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the practices document schema",
	Long:  "Print the declared structural schema for practices documents: fields, types, required flags, enumerations, and value patterns.",
	Run: func(cmd *cobra.Command, args []string) {
		printSchema(schema.DocumentSchema, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// printSchema prints a schema description.
func printSchema(s schema.Schema, out io.Writer) {
	fmt.Fprintf(out, "Schema for %s documents\n", s.Name)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "%s\n\n", s.Description)

	fmt.Fprintf(out, "Fields:\n")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))

	for _, field := range s.Fields {
		printSchemaField(field, "", out)
	}
}

// printSchemaField prints a single schema field with indentation.
func printSchemaField(field schema.SchemaField, indent string, out io.Writer) {
	required := ""
	if field.Required {
		required = " (required)"
	}

	typeStr := string(field.Type)
	if len(field.Enum) > 0 {
		typeStr = fmt.Sprintf("enum[%s]", strings.Join(field.Enum, ", "))
	}
	if field.Type == schema.FieldTypeArray && field.Elem != "" {
		typeStr = fmt.Sprintf("array of %s", field.Elem)
	}

	fmt.Fprintf(out, "%s%s: %s%s\n", indent, field.Name, typeStr, required)

	if field.Description != "" {
		fmt.Fprintf(out, "%s  # %s\n", indent, field.Description)
	}
	if field.Pattern != "" {
		fmt.Fprintf(out, "%s  # pattern: %s\n", indent, field.Pattern)
	}

	for _, child := range field.Children {
		printSchemaField(child, indent+"  ", out)
	}
}
