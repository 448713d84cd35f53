package bank

import (
	"testing"

	"skillcompass/internal/clusters"
)

func TestSeedBanks_Valid(t *testing.T) {
	if err := Validate(clusters.IDs()); err != nil {
		t.Errorf("seed bank data invalid: %v", err)
	}
}

func TestStage1_HasEightItems(t *testing.T) {
	if got := Stage1Size(); got != 8 {
		t.Errorf("Stage1Size() = %d, want 8", got)
	}
	for _, q := range Stage1() {
		if q.Stage != 1 {
			t.Errorf("question %q in stage-1 pool has stage %d", q.ID, q.Stage)
		}
	}
}

func TestStage2_AllTagged(t *testing.T) {
	for _, q := range Stage2() {
		if q.Stage != 2 {
			t.Errorf("question %q in stage-2 pool has stage %d", q.ID, q.Stage)
		}
		if len(q.TargetSkills) == 0 {
			t.Errorf("stage-2 question %q has no target skills", q.ID)
		}
	}
}

func TestByID(t *testing.T) {
	q, ok := ByID("stage1_q1_preference")
	if !ok {
		t.Fatal("stage1_q1_preference not found")
	}
	if q.Kind != KindMultipleChoice {
		t.Errorf("kind = %s, want multiple-choice", q.Kind)
	}
	if _, ok := q.OptionByValue("talking-people"); !ok {
		t.Error("talking-people option missing")
	}

	if _, ok := ByID("no-such-question"); ok {
		t.Error("ByID returned ok for unknown ID")
	}
}

func TestTargetSkills_ExistInClusterModel(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range clusters.All() {
		for _, s := range c.CoreSkills {
			known[s] = true
		}
	}
	// Skills referenced by bank evidence tables must be resolvable
	// against the cluster model's core skill set.
	for _, q := range Stage2() {
		for _, s := range q.TargetSkills {
			if !known[s] {
				t.Errorf("question %q targets unknown skill %q", q.ID, s)
			}
		}
		for _, o := range q.Options {
			for s := range o.SkillEvidence {
				if !known[s] {
					t.Errorf("question %q option %q carries evidence for unknown skill %q", q.ID, o.Value, s)
				}
			}
		}
	}
}

func TestValidate_RejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		qs   []Question
	}{
		{"duplicate id", []Question{
			{ID: "a", Kind: KindFreeText, Stage: 2, Difficulty: 1},
			{ID: "a", Kind: KindFreeText, Stage: 2, Difficulty: 1},
		}},
		{"bad stage", []Question{
			{ID: "a", Kind: KindFreeText, Stage: 3, Difficulty: 1},
		}},
		{"bad difficulty", []Question{
			{ID: "a", Kind: KindFreeText, Stage: 2, Difficulty: 4},
		}},
		{"too few options", []Question{
			{ID: "a", Kind: KindMultipleChoice, Stage: 2, Difficulty: 1,
				Options: []Option{{Value: "x"}}},
		}},
		{"unknown cluster", []Question{
			{ID: "a", Kind: KindMultipleChoice, Stage: 2, Difficulty: 1,
				Options: []Option{
					{Value: "x", ClusterLikelihoods: map[string]float64{"nope": 1.0}},
					{Value: "y"},
				}},
		}},
		{"non-positive likelihood", []Question{
			{ID: "a", Kind: KindMultipleChoice, Stage: 2, Difficulty: 1,
				Options: []Option{
					{Value: "x", ClusterLikelihoods: map[string]float64{"tech-solver": 0}},
					{Value: "y"},
				}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateQuestions(tt.qs, clusters.IDs()); err == nil {
				t.Error("want validation error, got nil")
			}
		})
	}
}
