package practices

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// RawDocument holds a parsed but not yet schema-checked document. The
// generic Raw value feeds the structural schema checker; the typed Document
// is only decoded once the schema checker has passed.
type RawDocument struct {
	Path string // source file path, empty when parsed from memory
	Raw  any    // generic JSON value (map/slice/scalar shape)

	data []byte
}

// Load reads and parses a practices document from disk. A file that cannot
// be read or parsed as JSON is a hard error, not a validation finding.
func Load(path string) (*RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading practices document: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse parses a practices document from raw JSON bytes.
func Parse(data []byte) (*RawDocument, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return &RawDocument{Raw: raw, data: data}, nil
}

// Decode unmarshals the document into its typed form. Callers run the
// schema checker first; a decode failure after a schema pass indicates an
// internal inconsistency between schema and model.
func (d *RawDocument) Decode() (*Document, error) {
	var doc Document
	if err := json.Unmarshal(d.data, &doc); err != nil {
		return nil, fmt.Errorf("decoding practices document: %w", err)
	}
	return &doc, nil
}
