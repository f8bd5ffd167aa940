package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mararual/practicegraph/internal/practices"
)

func practiceList(ids ...string) []practices.Practice {
	ps := make([]practices.Practice, len(ids))
	for i, id := range ids {
		ps[i] = practices.Practice{ID: id, Category: "automation"}
	}
	return ps
}

func TestCheckUniqueIDs(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		ids  []string
		want []string // duplicate ids, in first-appearance order
	}{
		"no practices":       {ids: nil, want: nil},
		"all unique":         {ids: []string{"a", "b", "c"}, want: nil},
		"one duplicate":      {ids: []string{"a", "b", "a"}, want: []string{"a"}},
		"triple occurrence":  {ids: []string{"a", "a", "a"}, want: []string{"a"}},
		"two duplicate sets": {ids: []string{"b", "a", "b", "a"}, want: []string{"b", "a"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			errs := CheckUniqueIDs(practiceList(tt.ids...))
			require.Len(t, errs, len(tt.want))
			for i, id := range tt.want {
				assert.Equal(t, RuleUniqueID, errs[i].Rule)
				assert.Equal(t, id, errs[i].PracticeID)
				assert.Contains(t, errs[i].Message, "duplicate practice id")
			}
		})
	}
}

func TestCheckUniqueIDs_ReportsOccurrenceCount(t *testing.T) {
	t.Parallel()

	errs := CheckUniqueIDs(practiceList("a", "a", "a"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "appears 3 times")
}

func TestCheckReferences(t *testing.T) {
	t.Parallel()

	ps := practiceList("a", "b")

	tests := map[string]struct {
		deps      []practices.Dependency
		wantPaths []string
	}{
		"no dependencies": {
			deps:      nil,
			wantPaths: nil,
		},
		"all valid": {
			deps:      []practices.Dependency{{PracticeID: "a", DependsOnID: "b"}},
			wantPaths: nil,
		},
		"dangling practice_id": {
			deps:      []practices.Dependency{{PracticeID: "ghost", DependsOnID: "b"}},
			wantPaths: []string{"dependencies[0].practice_id"},
		},
		"dangling depends_on_id": {
			deps:      []practices.Dependency{{PracticeID: "a", DependsOnID: "ghost"}},
			wantPaths: []string{"dependencies[0].depends_on_id"},
		},
		"both sides dangling": {
			deps:      []practices.Dependency{{PracticeID: "x", DependsOnID: "y"}},
			wantPaths: []string{"dependencies[0].practice_id", "dependencies[0].depends_on_id"},
		},
		"second edge broken": {
			deps: []practices.Dependency{
				{PracticeID: "a", DependsOnID: "b"},
				{PracticeID: "b", DependsOnID: "ghost"},
			},
			wantPaths: []string{"dependencies[1].depends_on_id"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			errs := CheckReferences(ps, tt.deps)
			require.Len(t, errs, len(tt.wantPaths))
			for i, path := range tt.wantPaths {
				assert.Equal(t, RuleReference, errs[i].Rule)
				assert.Equal(t, path, errs[i].Path)
				require.NotNil(t, errs[i].Edge)
			}
		})
	}
}

func TestCheckReferences_ErrorIdentifiesValue(t *testing.T) {
	t.Parallel()

	errs := CheckReferences(practiceList("a"), []practices.Dependency{
		{PracticeID: "a", DependsOnID: "missing-practice"},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "missing-practice", errs[0].Value)
	assert.Contains(t, errs[0].Message, `unknown practice "missing-practice"`)
}

func TestCheckSelfDependencies(t *testing.T) {
	t.Parallel()

	deps := []practices.Dependency{
		{PracticeID: "a", DependsOnID: "b"},
		{PracticeID: "b", DependsOnID: "b"},
		{PracticeID: "c", DependsOnID: "c"},
	}

	errs := CheckSelfDependencies(deps)
	require.Len(t, errs, 2)
	assert.Equal(t, RuleSelfDependency, errs[0].Rule)
	assert.Equal(t, "dependencies[1]", errs[0].Path)
	assert.Equal(t, "b", errs[0].PracticeID)
	assert.Equal(t, "dependencies[2]", errs[1].Path)
	assert.Equal(t, "c", errs[1].PracticeID)
}

func TestCheckSelfDependencies_CleanEdges(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CheckSelfDependencies(nil))
	assert.Empty(t, CheckSelfDependencies([]practices.Dependency{
		{PracticeID: "a", DependsOnID: "b"},
	}))
}

func TestCheckCycles(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		ids       []string
		deps      []practices.Dependency
		wantCycle []string
	}{
		"empty document": {},
		"acyclic": {
			ids: []string{"a", "b", "c"},
			deps: []practices.Dependency{
				{PracticeID: "b", DependsOnID: "a"},
				{PracticeID: "c", DependsOnID: "b"},
			},
		},
		"two node cycle": {
			ids: []string{"a", "b"},
			deps: []practices.Dependency{
				{PracticeID: "a", DependsOnID: "b"},
				{PracticeID: "b", DependsOnID: "a"},
			},
			wantCycle: []string{"a", "b", "a"},
		},
		"self loop": {
			ids:       []string{"a"},
			deps:      []practices.Dependency{{PracticeID: "a", DependsOnID: "a"}},
			wantCycle: []string{"a", "a"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			errs := CheckCycles(practiceList(tt.ids...), tt.deps)
			if tt.wantCycle == nil {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, RuleCycle, errs[0].Rule)
			assert.Equal(t, tt.wantCycle, errs[0].Cycle)
			assert.Contains(t, errs[0].Message, "dependency cycle detected")
		})
	}
}

func TestCheckCycles_IgnoresDanglingEdges(t *testing.T) {
	t.Parallel()

	// An edge with an unknown endpoint is the reference rule's finding;
	// the cycle rule must still answer for the well-formed remainder.
	ps := practiceList("a", "b")
	deps := []practices.Dependency{
		{PracticeID: "a", DependsOnID: "ghost"},
		{PracticeID: "a", DependsOnID: "b"},
		{PracticeID: "b", DependsOnID: "a"},
	}

	errs := CheckCycles(ps, deps)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"a", "b", "a"}, errs[0].Cycle)
}

func TestCheckCycles_ToleratesDuplicateIDs(t *testing.T) {
	t.Parallel()

	ps := practiceList("a", "a", "b")
	deps := []practices.Dependency{{PracticeID: "b", DependsOnID: "a"}}

	assert.Empty(t, CheckCycles(ps, deps))
}

func TestCheckCategories(t *testing.T) {
	t.Parallel()

	allowed := []string{"automation", "behavior"}

	ps := []practices.Practice{
		{ID: "a", Category: "automation"},
		{ID: "b", Category: "tooling"},
		{ID: "c", Category: ""},
	}

	errs := CheckCategories(ps, allowed)
	require.Len(t, errs, 2)

	assert.Equal(t, RuleCategory, errs[0].Rule)
	assert.Equal(t, "practices[1].category", errs[0].Path)
	assert.Equal(t, "b", errs[0].PracticeID)
	assert.Equal(t, "tooling", errs[0].Value)
	assert.Contains(t, errs[0].Hint, "automation, behavior")

	assert.Equal(t, "practices[2].category", errs[1].Path)
}

func TestCheckCategories_AllValid(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CheckCategories(practiceList("a", "b"), []string{"automation"}))
	assert.Empty(t, CheckCategories(nil, []string{"automation"}))
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	e := &Error{Rule: RuleReference, Path: "dependencies[0].practice_id", Message: "unknown practice"}
	assert.Equal(t, "reference: dependencies[0].practice_id: unknown practice", e.Error())

	e = &Error{Rule: RuleCycle, Message: "dependency cycle detected"}
	assert.Equal(t, "cycle: dependency cycle detected", e.Error())
}

func TestReport_HasRule(t *testing.T) {
	t.Parallel()

	r := &Report{Success: true}
	assert.False(t, r.HasRule(RuleCycle))

	r.add(&Error{Rule: RuleCycle})
	assert.False(t, r.Success)
	assert.True(t, r.HasRule(RuleCycle))
	assert.False(t, r.HasRule(RuleSchema))
}
