package checks

import (
	"fmt"

	"github.com/mararual/practicegraph/internal/practices"
)

// CheckReferences verifies that both endpoints of every dependency edge
// name an existing practice. Each dangling endpoint is reported separately
// so the author knows which side of the edge is broken. O(n+m).
func CheckReferences(ps []practices.Practice, deps []practices.Dependency) []*Error {
	ids := make(map[string]bool, len(ps))
	for _, p := range ps {
		ids[p.ID] = true
	}

	var errs []*Error
	for i, d := range deps {
		edge := d
		if !ids[d.PracticeID] {
			errs = append(errs, &Error{
				Rule:    RuleReference,
				Path:    fmt.Sprintf("dependencies[%d].practice_id", i),
				Value:   d.PracticeID,
				Edge:    &edge,
				Message: fmt.Sprintf("dependency edge %q -> %q references unknown practice %q in practice_id", d.PracticeID, d.DependsOnID, d.PracticeID),
				Hint:    "Every dependency endpoint must match the id of a practice in this document",
			})
		}
		if !ids[d.DependsOnID] {
			errs = append(errs, &Error{
				Rule:    RuleReference,
				Path:    fmt.Sprintf("dependencies[%d].depends_on_id", i),
				Value:   d.DependsOnID,
				Edge:    &edge,
				Message: fmt.Sprintf("dependency edge %q -> %q references unknown practice %q in depends_on_id", d.PracticeID, d.DependsOnID, d.DependsOnID),
				Hint:    "Every dependency endpoint must match the id of a practice in this document",
			})
		}
	}
	return errs
}
