package checks

import (
	"fmt"
	"strings"

	"github.com/mararual/practicegraph/internal/dag"
	"github.com/mararual/practicegraph/internal/practices"
)

// CheckCycles verifies that the dependency edges form a DAG and reports one
// concrete cycle when they do not. Its answer is only guaranteed for
// reference-valid edges, so edges with a dangling endpoint are skipped here
// and left to the reference rule; duplicate ids are likewise the uniqueness
// rule's finding and are collapsed to a single vertex.
func CheckCycles(ps []practices.Practice, deps []practices.Dependency) []*Error {
	ids := make(map[string]bool, len(ps))
	vertices := make([]dag.Vertex, 0, len(ps))
	for _, p := range ps {
		if ids[p.ID] {
			continue
		}
		ids[p.ID] = true
		vertices = append(vertices, dag.Vertex{ID: p.ID})
	}

	edges := make([]dag.Edge, 0, len(deps))
	for _, d := range deps {
		if ids[d.PracticeID] && ids[d.DependsOnID] {
			edges = append(edges, dag.Edge{From: d.PracticeID, To: d.DependsOnID})
		}
	}

	g, err := dag.Build(vertices, edges)
	if err != nil {
		// Unreachable after the dedup and filtering above.
		return []*Error{{Rule: RuleCycle, Message: err.Error()}}
	}

	cycle := g.DetectCycle()
	if cycle == nil {
		return nil
	}

	return []*Error{{
		Rule:    RuleCycle,
		Cycle:   cycle,
		Message: fmt.Sprintf("dependency cycle detected: %s", strings.Join(cycle, " -> ")),
		Hint:    "Break the cycle by removing one of its dependency edges",
	}}
}
