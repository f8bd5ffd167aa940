package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamondGraph builds a four practice diamond: b and c require a, d
// requires both b and c.
func diamondGraph(t *testing.T) *Graph {
	t.Helper()

	g, err := Build(
		vertices("a", "b", "c", "d"),
		[]Edge{
			{From: "b", To: "a"},
			{From: "c", To: "a"},
			{From: "d", To: "b"},
			{From: "d", To: "c"},
		},
	)
	require.NoError(t, err)
	return g
}

func TestComputeStages(t *testing.T) {
	t.Parallel()

	g := diamondGraph(t)
	stages, err := g.ComputeStages()
	require.NoError(t, err)

	require.Len(t, stages, 3)
	assert.Equal(t, 1, stages[0].Number)
	assert.Equal(t, []string{"a"}, stages[0].PracticeIDs)
	assert.Equal(t, []string{"b", "c"}, stages[1].PracticeIDs)
	assert.Equal(t, []string{"d"}, stages[2].PracticeIDs)
}

func TestComputeStages_LongestChainWins(t *testing.T) {
	t.Parallel()

	// e requires both a root (a) and a depth-1 practice (b): its stage is
	// governed by the longer chain.
	g, err := Build(
		vertices("a", "b", "e"),
		[]Edge{
			{From: "b", To: "a"},
			{From: "e", To: "a"},
			{From: "e", To: "b"},
		},
	)
	require.NoError(t, err)

	stages, err := g.ComputeStages()
	require.NoError(t, err)

	require.Len(t, stages, 3)
	assert.Equal(t, []string{"e"}, stages[2].PracticeIDs)
	assert.Equal(t, 3, g.StageForPractice("e"))
}

func TestComputeStages_DisconnectedPractices(t *testing.T) {
	t.Parallel()

	g, err := Build(vertices("solo-one", "solo-two"), nil)
	require.NoError(t, err)

	stages, err := g.ComputeStages()
	require.NoError(t, err)

	require.Len(t, stages, 1)
	assert.Equal(t, []string{"solo-one", "solo-two"}, stages[0].PracticeIDs)
}

func TestComputeStages_Empty(t *testing.T) {
	t.Parallel()

	g, err := Build(nil, nil)
	require.NoError(t, err)

	stages, err := g.ComputeStages()
	require.NoError(t, err)
	assert.Empty(t, stages)
}

func TestComputeStages_CycleRejected(t *testing.T) {
	t.Parallel()

	g, err := Build(
		vertices("a", "b"),
		[]Edge{{From: "a", To: "b"}, {From: "b", To: "a"}},
	)
	require.NoError(t, err)

	_, err = g.ComputeStages()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency cycle")
}

func TestStageForPractice(t *testing.T) {
	t.Parallel()

	g := diamondGraph(t)
	_, err := g.ComputeStages()
	require.NoError(t, err)

	assert.Equal(t, 1, g.StageForPractice("a"))
	assert.Equal(t, 2, g.StageForPractice("b"))
	assert.Equal(t, 3, g.StageForPractice("d"))
	assert.Equal(t, 0, g.StageForPractice("missing"))
}

func TestGetStageStats(t *testing.T) {
	t.Parallel()

	g := diamondGraph(t)

	assert.Equal(t, StageStats{}, g.GetStageStats())

	_, err := g.ComputeStages()
	require.NoError(t, err)

	stats := g.GetStageStats()
	assert.Equal(t, 3, stats.TotalStages)
	assert.Equal(t, 4, stats.TotalPractices)
	assert.Equal(t, 2, stats.MaxStageSize)
	assert.Equal(t, 1, stats.MinStageSize)
}

func TestRenderASCII(t *testing.T) {
	t.Parallel()

	g, err := Build(
		[]Vertex{
			{ID: "version-control", Label: "Version Control"},
			{ID: "continuous-integration", Label: "Continuous Integration"},
		},
		[]Edge{{From: "continuous-integration", To: "version-control"}},
	)
	require.NoError(t, err)

	assert.Contains(t, g.RenderASCII(), "No stages computed")

	_, err = g.ComputeStages()
	require.NoError(t, err)

	out := g.RenderASCII()
	assert.Contains(t, out, "Stage 1 (1 practice)\n")
	assert.Contains(t, out, "Stage 2 (1 practice)\n")
	assert.Contains(t, out, "  +- [version-control] Version Control\n")
	assert.Contains(t, out, "    |\n    v\n")
	assert.Contains(t, out, "Total Stages: 2")
	assert.Contains(t, out, "Total Practices: 2")
}

func TestRenderCompact(t *testing.T) {
	t.Parallel()

	g := diamondGraph(t)
	assert.Equal(t, "No stages computed", g.RenderCompact())

	_, err := g.ComputeStages()
	require.NoError(t, err)

	assert.Equal(t, "Stage 1: [a] -> Stage 2: [b, c] -> Stage 3: [d]", g.RenderCompact())
}

func TestRenderDetailed(t *testing.T) {
	t.Parallel()

	g := diamondGraph(t)
	_, err := g.ComputeStages()
	require.NoError(t, err)

	out := g.RenderDetailed()
	assert.Contains(t, out, "Stage 1:\n")
	assert.Contains(t, out, "Stage 3:\n")
	assert.Contains(t, out, "    Requires: b, c\n")
	assert.Contains(t, out, "    Enables: b, c\n")
}
