package checks

import (
	"fmt"

	"github.com/mararual/practicegraph/internal/practices"
)

// CheckSelfDependencies flags every edge where a practice depends on
// itself. A length-1 cycle is a common copy-paste mistake and gets its own
// clearer message instead of a degenerate cycle report.
func CheckSelfDependencies(deps []practices.Dependency) []*Error {
	var errs []*Error
	for i, d := range deps {
		if d.PracticeID != d.DependsOnID {
			continue
		}
		edge := d
		errs = append(errs, &Error{
			Rule:       RuleSelfDependency,
			Path:       fmt.Sprintf("dependencies[%d]", i),
			PracticeID: d.PracticeID,
			Edge:       &edge,
			Message:    fmt.Sprintf("practice %q depends on itself", d.PracticeID),
			Hint:       "Remove the self-referencing dependency edge",
		})
	}
	return errs
}
