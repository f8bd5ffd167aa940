// Package schema declares the structural schema for practices documents and
// provides a generic interpreter that validates raw parsed JSON against it.
package schema

// FieldType represents the expected type of a schema field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "int"
	FieldTypeBool   FieldType = "bool"
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
)

// SchemaField defines a single field in a document schema.
type SchemaField struct {
	Name        string        // Field name in JSON
	Type        FieldType     // Expected type
	Required    bool          // Whether field must be present
	Pattern     string        // Regex pattern for string validation (optional)
	Enum        []string      // Valid values for enum fields (optional)
	Elem        FieldType     // Element type for arrays of scalars (optional)
	Description string        // Human-readable description
	Children    []SchemaField // Nested fields for object types and arrays of objects
}

// Schema represents the complete schema for a document.
type Schema struct {
	Name        string
	Description string
	Fields      []SchemaField
}

// Value patterns shared between the schema and its documentation.
const (
	// KebabCasePattern matches lowercase alphanumeric segments joined by
	// single hyphens, with no leading or trailing hyphen.
	KebabCasePattern = `^[a-z0-9]+(-[a-z0-9]+)*$`
	// SemverPattern matches plain x.y.z version strings.
	SemverPattern = `^\d+\.\d+\.\d+$`
	// ISODatePattern matches YYYY-MM-DD date strings.
	ISODatePattern = `^\d{4}-\d{2}-\d{2}$`
)

// DocumentSchema defines the structural schema for practices documents.
// The category field is checked here only as a required string; membership
// in the allowed category set is a business rule with a configurable set.
var DocumentSchema = Schema{
	Name:        "practices",
	Description: "Practices dependency graph document with practices, dependency edges, and metadata",
	Fields: []SchemaField{
		{
			Name:        "practices",
			Type:        FieldTypeArray,
			Required:    true,
			Description: "List of adoptable practices (graph nodes)",
			Children: []SchemaField{
				{Name: "id", Type: FieldTypeString, Required: true, Pattern: KebabCasePattern, Description: "Unique kebab-case identifier"},
				{Name: "name", Type: FieldTypeString, Required: true, Description: "Human-readable practice name"},
				{Name: "type", Type: FieldTypeString, Required: true, Enum: []string{"root", "practice"}, Description: "Node type"},
				{Name: "category", Type: FieldTypeString, Required: true, Description: "Category tag (allowed set enforced by the category rule)"},
				{Name: "description", Type: FieldTypeString, Required: true, Description: "Free-text description"},
				{Name: "requirements", Type: FieldTypeArray, Required: true, Elem: FieldTypeString, Description: "Ordered free-text requirements (may be empty)"},
				{Name: "benefits", Type: FieldTypeArray, Required: true, Elem: FieldTypeString, Description: "Ordered free-text benefits (may be empty)"},
			},
		},
		{
			Name:        "dependencies",
			Type:        FieldTypeArray,
			Required:    true,
			Description: "Directed edges: practice_id requires depends_on_id",
			Children: []SchemaField{
				{Name: "practice_id", Type: FieldTypeString, Required: true, Description: "Id of the practice that has the requirement"},
				{Name: "depends_on_id", Type: FieldTypeString, Required: true, Description: "Id of the required practice"},
			},
		},
		{
			Name:        "metadata",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "Document-level descriptive envelope",
			Children: []SchemaField{
				{Name: "source", Type: FieldTypeString, Required: true, Description: "Where the document content comes from"},
				{Name: "description", Type: FieldTypeString, Required: true, Description: "Document description"},
				{Name: "version", Type: FieldTypeString, Required: true, Pattern: SemverPattern, Description: "Semantic version (x.y.z)"},
				{Name: "lastUpdated", Type: FieldTypeString, Required: true, Pattern: ISODatePattern, Description: "Last update date (YYYY-MM-DD)"},
			},
		},
	},
}
