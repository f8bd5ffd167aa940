package dag

import (
	"fmt"
	"sort"
	"strings"
)

// RenderASCII generates an ASCII view of the adoption stages.
// Uses portable ASCII characters only (no Unicode).
func (g *Graph) RenderASCII() string {
	if len(g.stages) == 0 {
		return "No stages computed. Run ComputeStages() first."
	}

	var sb strings.Builder
	sb.WriteString("Practice Adoption Stages\n")
	sb.WriteString("========================\n\n")

	for i, stage := range g.stages {
		sb.WriteString(renderStageHeader(stage.Number, len(stage.PracticeIDs)))
		sb.WriteString(g.renderStagePractices(stage.PracticeIDs))

		if i < len(g.stages)-1 {
			sb.WriteString("    |\n    v\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(renderSummary(g))

	return sb.String()
}

// renderStageHeader renders the header for a stage.
func renderStageHeader(stageNum, count int) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("Stage %d (%d practice%s)\n", stageNum, count, plural)
}

// renderStagePractices renders the practices in a stage.
func (g *Graph) renderStagePractices(ids []string) string {
	if len(ids) == 0 {
		return "  (empty)\n"
	}

	var sb strings.Builder
	for i, id := range ids {
		prefix := "  |-"
		if i == len(ids)-1 {
			prefix = "  +-"
		}
		if node := g.GetNode(id); node != nil && node.Label != "" {
			sb.WriteString(fmt.Sprintf("%s [%s] %s\n", prefix, id, node.Label))
		} else {
			sb.WriteString(fmt.Sprintf("%s [%s]\n", prefix, id))
		}
	}
	return sb.String()
}

// renderSummary renders the summary statistics.
func renderSummary(g *Graph) string {
	stats := g.GetStageStats()
	var sb strings.Builder
	sb.WriteString("Summary:\n")
	sb.WriteString(fmt.Sprintf("  Total Stages: %d\n", stats.TotalStages))
	sb.WriteString(fmt.Sprintf("  Total Practices: %d\n", stats.TotalPractices))
	sb.WriteString(fmt.Sprintf("  Widest Stage: %d\n", stats.MaxStageSize))
	return sb.String()
}

// RenderCompact generates a compact single-line representation.
// Format: Stage 1: [a, b] -> Stage 2: [c] -> Stage 3: [d]
func (g *Graph) RenderCompact() string {
	if len(g.stages) == 0 {
		return "No stages computed"
	}

	parts := make([]string, len(g.stages))
	for i, stage := range g.stages {
		parts[i] = fmt.Sprintf("Stage %d: [%s]", stage.Number, strings.Join(stage.PracticeIDs, ", "))
	}

	return strings.Join(parts, " -> ")
}

// RenderDetailed generates a per-practice view with prerequisite info.
func (g *Graph) RenderDetailed() string {
	if len(g.stages) == 0 {
		return "No stages computed. Run ComputeStages() first."
	}

	var sb strings.Builder
	sb.WriteString("Practice Adoption Plan\n")
	sb.WriteString("======================\n\n")

	for _, stage := range g.stages {
		sb.WriteString(fmt.Sprintf("Stage %d:\n", stage.Number))
		sb.WriteString(strings.Repeat("-", 40) + "\n")

		for _, id := range stage.PracticeIDs {
			node := g.GetNode(id)
			if node == nil {
				continue
			}
			sb.WriteString(renderDetailedPractice(node))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderDetailedPractice renders one practice with its relationships.
func renderDetailedPractice(node *Node) string {
	var sb strings.Builder
	if node.Label != "" {
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", node.ID, node.Label))
	} else {
		sb.WriteString(fmt.Sprintf("  [%s]\n", node.ID))
	}

	if len(node.Requires) > 0 {
		deps := make([]string, len(node.Requires))
		copy(deps, node.Requires)
		sort.Strings(deps)
		sb.WriteString(fmt.Sprintf("    Requires: %s\n", strings.Join(deps, ", ")))
	}

	if len(node.RequiredBy) > 0 {
		deps := make([]string, len(node.RequiredBy))
		copy(deps, node.RequiredBy)
		sort.Strings(deps)
		sb.WriteString(fmt.Sprintf("    Enables: %s\n", strings.Join(deps, ", ")))
	}

	return sb.String()
}
