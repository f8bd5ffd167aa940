// Package checks implements the business-rule validation of practices
// documents: id uniqueness, reference integrity, self-dependencies, cycle
// detection, and category membership, plus the orchestrator that runs the
// structural schema check first and aggregates everything into one report.
//
// Every checker is a pure function of its inputs: no I/O, no mutation of
// the document, and identical results for identical inputs.
package checks

import (
	"fmt"

	"github.com/mararual/practicegraph/internal/practices"
)

// Rule identifies the validation rule that produced a finding.
type Rule string

const (
	// RuleSchema covers structural violations (shape, types, patterns, enums).
	RuleSchema Rule = "schema"
	// RuleUniqueID covers duplicate practice ids.
	RuleUniqueID Rule = "unique-id"
	// RuleReference covers dependency edges with dangling endpoints.
	RuleReference Rule = "reference"
	// RuleSelfDependency covers edges where a practice depends on itself.
	RuleSelfDependency Rule = "self-dependency"
	// RuleCycle covers dependency cycles of length >= 1.
	RuleCycle Rule = "cycle"
	// RuleCategory covers practices with a category outside the allowed set.
	RuleCategory Rule = "category"
)

// Error is a single validation finding. Findings are values, not Go error
// control flow: invalid data is an anticipated outcome. The context fields
// beyond Rule/Path/Message vary by rule and are zero when not applicable.
type Error struct {
	Rule    Rule   // Originating rule
	Path    string // Document location (JSON-path style), when known
	Message string // Human-readable description
	Hint    string // Suggestion for fixing the finding

	PracticeID string                // Offending practice id (unique-id, self-dependency, category)
	Value      string                // Offending value (dangling id, invalid category)
	Edge       *practices.Dependency // Offending edge (reference, self-dependency)
	Cycle      []string              // Concrete cycle path, first and last id equal (cycle)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Rule, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

// Report is the aggregated outcome of one validation pass. Errors keep the
// order the rules emitted them in; the CLI prints them 1-indexed.
type Report struct {
	Success bool
	Errors  []*Error
}

// add appends findings and clears the success flag if any were added.
func (r *Report) add(errs ...*Error) {
	if len(errs) == 0 {
		return
	}
	r.Errors = append(r.Errors, errs...)
	r.Success = false
}

// HasRule returns true if the report contains a finding from the rule.
func (r *Report) HasRule(rule Rule) bool {
	for _, e := range r.Errors {
		if e.Rule == rule {
			return true
		}
	}
	return false
}
