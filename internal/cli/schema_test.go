package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mararual/practicegraph/internal/schema"
)

func TestPrintSchema(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printSchema(schema.DocumentSchema, &out)

	s := out.String()
	assert.Contains(t, s, "practices: array (required)")
	assert.Contains(t, s, "dependencies: array (required)")
	assert.Contains(t, s, "metadata: object (required)")
	assert.Contains(t, s, "id: string (required)")
	assert.Contains(t, s, "type: enum[root, practice] (required)")
	assert.Contains(t, s, "requirements: array of string (required)")
	assert.Contains(t, s, "# pattern: "+schema.KebabCasePattern)
	assert.Contains(t, s, "# pattern: "+schema.SemverPattern)
}

func TestPrintSchemaField_Indentation(t *testing.T) {
	t.Parallel()

	field := schema.SchemaField{
		Name:     "outer",
		Type:     schema.FieldTypeObject,
		Required: true,
		Children: []schema.SchemaField{
			{Name: "inner", Type: schema.FieldTypeString, Description: "a nested field"},
		},
	}

	var out bytes.Buffer
	printSchemaField(field, "", &out)

	s := out.String()
	assert.Contains(t, s, "outer: object (required)\n")
	assert.Contains(t, s, "  inner: string\n")
	assert.Contains(t, s, "    # a nested field\n")
}
