package checks

import (
	"fmt"
	"strings"

	"github.com/mararual/practicegraph/internal/practices"
)

// CheckCategories verifies that every practice's category is drawn from the
// allowed set. Reports one finding per offending practice with the bad
// value.
func CheckCategories(ps []practices.Practice, allowed []string) []*Error {
	set := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		set[c] = true
	}

	var errs []*Error
	for i, p := range ps {
		if set[p.Category] {
			continue
		}
		errs = append(errs, &Error{
			Rule:       RuleCategory,
			Path:       fmt.Sprintf("practices[%d].category", i),
			PracticeID: p.ID,
			Value:      p.Category,
			Message:    fmt.Sprintf("practice %q has invalid category %q", p.ID, p.Category),
			Hint:       fmt.Sprintf("Use one of: %s", strings.Join(allowed, ", ")),
		})
	}
	return errs
}
