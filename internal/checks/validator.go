package checks

import (
	"fmt"

	"github.com/mararual/practicegraph/internal/practices"
	"github.com/mararual/practicegraph/internal/schema"
)

// Validator orchestrates one validation pass over a practices document.
// The schema check runs first; structural validity is a precondition for
// every business rule, so a schema failure short-circuits the pass and the
// report then contains schema findings only. The five business rules are
// independent of each other and all run even when one fails, so the author
// sees every problem in one iteration.
type Validator struct {
	Schema     schema.Schema
	Categories []string // allowed category set
}

// NewValidator creates a validator with the built-in document schema and
// default category set.
func NewValidator() *Validator {
	return &Validator{
		Schema:     schema.DocumentSchema,
		Categories: practices.DefaultCategories(),
	}
}

// Validate runs the full pipeline over a parsed document. The returned
// error is reserved for unexpected conditions (malformed schema, a decode
// failure after a schema pass); "the data is invalid" is expressed through
// the report. The document is never mutated.
func (v *Validator) Validate(raw *practices.RawDocument) (*Report, error) {
	report := &Report{Success: true}

	structural, err := schema.Validate(raw.Raw, v.Schema)
	if err != nil {
		return nil, err
	}
	if !structural.Valid {
		for _, fe := range structural.Errors {
			report.add(&Error{
				Rule:    RuleSchema,
				Path:    fe.Path,
				Message: fe.Message,
				Hint:    fe.Hint,
			})
		}
		return report, nil
	}

	doc, err := raw.Decode()
	if err != nil {
		return nil, fmt.Errorf("document passed schema validation but failed to decode: %w", err)
	}

	report.add(CheckUniqueIDs(doc.Practices)...)
	report.add(CheckReferences(doc.Practices, doc.Dependencies)...)
	report.add(CheckSelfDependencies(doc.Dependencies)...)
	report.add(CheckCycles(doc.Practices, doc.Dependencies)...)
	report.add(CheckCategories(doc.Practices, v.Categories)...)

	return report, nil
}
