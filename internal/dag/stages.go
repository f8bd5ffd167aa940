package dag

import (
	"fmt"
	"sort"
)

// AdoptionStage is a group of practices that can be adopted together once
// every practice in the preceding stages is in place.
type AdoptionStage struct {
	Number      int      // Stage number (1, 2, 3...)
	PracticeIDs []string // Practices in this stage, sorted
}

// Size returns the number of practices in the stage.
func (s *AdoptionStage) Size() int {
	return len(s.PracticeIDs)
}

// ComputeStages layers the graph into adoption stages by prerequisite
// depth: stage N holds every practice whose longest prerequisite chain has
// length N-1. The graph must be acyclic; cycles are reported as an error.
// The computed stages are stored on the graph and returned.
func (g *Graph) ComputeStages() ([]AdoptionStage, error) {
	if cycle := g.DetectCycle(); cycle != nil {
		return nil, fmt.Errorf("computing stages: dependency cycle %v", cycle)
	}

	if len(g.nodes) == 0 {
		g.stages = []AdoptionStage{}
		return g.stages, nil
	}

	g.computeDepths()
	g.stages = stagesFromDepths(g.groupByDepth())
	return g.stages, nil
}

// computeDepths calculates the longest prerequisite chain for each node
// using Kahn's algorithm (BFS in topological order).
func (g *Graph) computeDepths() {
	inDegree := make(map[string]int, len(g.nodes))
	for id, node := range g.nodes {
		node.Depth = 0
		inDegree[id] = len(node.Requires)
	}

	queue := make([]string, 0, len(g.roots))
	queue = append(queue, g.roots...)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := g.nodes[id]

		for _, depID := range node.RequiredBy {
			depNode := g.nodes[depID]
			if node.Depth+1 > depNode.Depth {
				depNode.Depth = node.Depth + 1
			}

			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
}

// groupByDepth groups practice ids by their depth level.
func (g *Graph) groupByDepth() map[int][]string {
	groups := make(map[int][]string)
	for id, node := range g.nodes {
		groups[node.Depth] = append(groups[node.Depth], id)
	}
	return groups
}

// stagesFromDepths creates ordered AdoptionStage values from depth groups.
func stagesFromDepths(groups map[int][]string) []AdoptionStage {
	depths := make([]int, 0, len(groups))
	for depth := range groups {
		depths = append(depths, depth)
	}
	sort.Ints(depths)

	stages := make([]AdoptionStage, 0, len(depths))
	for i, depth := range depths {
		ids := groups[depth]
		sort.Strings(ids)
		stages = append(stages, AdoptionStage{
			Number:      i + 1,
			PracticeIDs: ids,
		})
	}
	return stages
}

// StageForPractice returns the stage number (1-indexed) for a practice id,
// or 0 if the practice is not found or stages have not been computed.
func (g *Graph) StageForPractice(id string) int {
	for _, stage := range g.stages {
		for _, pid := range stage.PracticeIDs {
			if pid == id {
				return stage.Number
			}
		}
	}
	return 0
}

// StageStats summarizes the computed stages.
type StageStats struct {
	TotalStages    int // Number of stages
	TotalPractices int // Practices across all stages
	MaxStageSize   int // Size of the largest stage
	MinStageSize   int // Size of the smallest stage
}

// GetStageStats returns statistics about the computed stages.
func (g *Graph) GetStageStats() StageStats {
	if len(g.stages) == 0 {
		return StageStats{}
	}

	stats := StageStats{
		TotalStages:  len(g.stages),
		MinStageSize: g.stages[0].Size(),
	}

	for _, stage := range g.stages {
		size := stage.Size()
		stats.TotalPractices += size
		if size > stats.MaxStageSize {
			stats.MaxStageSize = size
		}
		if size < stats.MinStageSize {
			stats.MinStageSize = size
		}
	}

	return stats
}
