package checks

import (
	"fmt"

	"github.com/mararual/practicegraph/internal/practices"
)

// CheckUniqueIDs verifies that every practice id is distinct. Each duplicate
// value is reported once (not once per occurrence), in the order of its
// first appearance. O(n) time and space.
func CheckUniqueIDs(ps []practices.Practice) []*Error {
	counts := make(map[string]int, len(ps))
	for _, p := range ps {
		counts[p.ID]++
	}

	var errs []*Error
	reported := make(map[string]bool)
	for _, p := range ps {
		if counts[p.ID] < 2 || reported[p.ID] {
			continue
		}
		reported[p.ID] = true
		errs = append(errs, &Error{
			Rule:       RuleUniqueID,
			PracticeID: p.ID,
			Message:    fmt.Sprintf("duplicate practice id %q appears %d times", p.ID, counts[p.ID]),
			Hint:       "Practice ids must be unique across the document",
		})
	}
	return errs
}
