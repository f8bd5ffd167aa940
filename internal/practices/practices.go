// Package practices defines the practices graph document model: a static
// JSON document describing adoptable practices and the directed "requires"
// edges between them.
package practices

// PracticeType values allowed in the "type" field.
const (
	TypeRoot     = "root"
	TypePractice = "practice"
)

// PracticeTypes returns the allowed values for the practice "type" field.
func PracticeTypes() []string {
	return []string{TypeRoot, TypePractice}
}

// DefaultCategories returns the built-in allowed category tags. The set can
// be overridden through configuration.
func DefaultCategories() []string {
	return []string{"automation", "behavior", "culture", "measurement", "process"}
}

// Practice is one named node in the dependency graph.
type Practice struct {
	ID           string   `json:"id"`       // kebab-case identifier, unique per document
	Name         string   `json:"name"`     // human-readable name
	Type         string   `json:"type"`     // "root" or "practice"
	Category     string   `json:"category"` // membership in the allowed set is a business rule
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}

// Dependency is a directed edge meaning "PracticeID requires DependsOnID".
type Dependency struct {
	PracticeID  string `json:"practice_id"`
	DependsOnID string `json:"depends_on_id"`
}

// Metadata is the document-level descriptive envelope.
type Metadata struct {
	Source      string `json:"source"`
	Description string `json:"description"`
	Version     string `json:"version"`     // semantic version x.y.z
	LastUpdated string `json:"lastUpdated"` // ISO date YYYY-MM-DD
}

// Document is the top-level aggregate. It is loaded once and treated as a
// read-only value for the duration of a validation pass.
type Document struct {
	Practices    []Practice   `json:"practices"`
	Dependencies []Dependency `json:"dependencies"`
	Metadata     Metadata     `json:"metadata"`
}

// IDSet returns the set of practice ids in the document.
func (d *Document) IDSet() map[string]bool {
	ids := make(map[string]bool, len(d.Practices))
	for _, p := range d.Practices {
		ids[p.ID] = true
	}
	return ids
}
