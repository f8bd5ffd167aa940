// Package testutil provides test fixtures and filesystem helpers for
// practicegraph tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mararual/practicegraph/internal/practices"
)

// NewPractice returns a fully populated practice suitable for fixtures.
func NewPractice(id, name string) practices.Practice {
	return practices.Practice{
		ID:           id,
		Name:         name,
		Type:         practices.TypePractice,
		Category:     "automation",
		Description:  "Test practice " + id,
		Requirements: []string{},
		Benefits:     []string{},
	}
}

// NewDocument returns a small valid document: three practices with two
// dependency edges (both continuous-integration and trunk-based-development
// require version-control).
func NewDocument() *practices.Document {
	root := NewPractice("version-control", "Version Control")
	root.Type = practices.TypeRoot

	ci := NewPractice("continuous-integration", "Continuous Integration")
	ci.Requirements = []string{"All work integrates to trunk at least daily"}
	ci.Benefits = []string{"Smaller merges"}

	tbd := NewPractice("trunk-based-development", "Trunk-Based Development")
	tbd.Category = "behavior"

	return &practices.Document{
		Practices: []practices.Practice{root, ci, tbd},
		Dependencies: []practices.Dependency{
			{PracticeID: "continuous-integration", DependsOnID: "version-control"},
			{PracticeID: "trunk-based-development", DependsOnID: "version-control"},
		},
		Metadata: practices.Metadata{
			Source:      "test",
			Description: "Test practices document",
			Version:     "1.0.0",
			LastUpdated: "2025-06-30",
		},
	}
}

// DocumentOption mutates a fixture document before it is written.
type DocumentOption func(*practices.Document)

// WithPractice appends a practice.
func WithPractice(p practices.Practice) DocumentOption {
	return func(d *practices.Document) {
		d.Practices = append(d.Practices, p)
	}
}

// WithDependency appends a dependency edge.
func WithDependency(practiceID, dependsOnID string) DocumentOption {
	return func(d *practices.Document) {
		d.Dependencies = append(d.Dependencies, practices.Dependency{
			PracticeID:  practiceID,
			DependsOnID: dependsOnID,
		})
	}
}

// WithVersion sets the metadata version.
func WithVersion(version string) DocumentOption {
	return func(d *practices.Document) {
		d.Metadata.Version = version
	}
}

// WriteDocument marshals a document to JSON in a temp directory and returns
// the file path. Cleanup is handled by t.TempDir.
func WriteDocument(t *testing.T, doc *practices.Document) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}

	path := filepath.Join(t.TempDir(), "practices.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

// CreateTempDocument builds a valid fixture document, applies the options,
// writes it to a temp file, and returns the path.
func CreateTempDocument(t *testing.T, opts ...DocumentOption) string {
	t.Helper()

	doc := NewDocument()
	for _, opt := range opts {
		opt(doc)
	}
	return WriteDocument(t, doc)
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
