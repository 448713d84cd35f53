package bank

import (
	"fmt"
	"slices"
)

// Kind discriminates the question variants.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindMultiSelect    Kind = "multi-select"
	KindScale          Kind = "scale"
	KindScenario       Kind = "scenario"
	KindFreeText       Kind = "free-text"
)

// HasOptions reports whether questions of this kind carry enumerable
// options with likelihood tables.
func (k Kind) HasOptions() bool {
	switch k {
	case KindMultipleChoice, KindMultiSelect, KindScale:
		return true
	}
	return false
}

// Option is one selectable answer value. ClusterLikelihoods holds
// relative likelihood weights P(choose|cluster); a cluster missing from
// the table counts as weight 1 (no information). SkillEvidence maps
// skill IDs to the confidence weight earned by choosing this option.
type Option struct {
	Value              string             `json:"value"`
	Label              string             `json:"label"`
	ClusterLikelihoods map[string]float64 `json:"clusterLikelihoods,omitempty"`
	SkillEvidence      map[string]int     `json:"skillEvidence,omitempty"`
}

// Question is a single bank entry. Catalog questions are immutable
// reference data; scenario questions are built per session by the
// scenario package and carry the Scenario* fields instead of Options.
type Question struct {
	ID             string   `json:"id"`
	Kind           Kind     `json:"kind"`
	Stage          int      `json:"stage"`
	Prompt         string   `json:"prompt"`
	Description    string   `json:"description,omitempty"`
	Difficulty     int      `json:"difficulty"`
	TargetSkills   []string `json:"targetSkills,omitempty"`
	TargetClusters []string `json:"targetClusters,omitempty"`
	Options        []Option `json:"options,omitempty"`

	// Scenario and free-text fields.
	ExpectedGain        float64             `json:"expectedGain,omitempty"`
	ScenarioContext     string              `json:"scenarioContext,omitempty"`
	SuggestedApproaches []string            `json:"suggestedApproaches,omitempty"`
	SkillIndicators     map[string][]string `json:"skillIndicators,omitempty"`
}

// OptionByValue returns the option with the given value.
func (q Question) OptionByValue(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// index holds both pools with an ID lookup.
type index struct {
	stage1 []Question
	stage2 []Question
	byID   map[string]*Question
}

var idx *index

func buildIndex(stage1, stage2 []Question) *index {
	ix := &index{
		stage1: stage1,
		stage2: stage2,
		byID:   make(map[string]*Question, len(stage1)+len(stage2)),
	}
	for i := range ix.stage1 {
		ix.byID[ix.stage1[i].ID] = &ix.stage1[i]
	}
	for i := range ix.stage2 {
		ix.byID[ix.stage2[i].ID] = &ix.stage2[i]
	}
	return ix
}

// ByID returns a bank question by ID.
func ByID(id string) (Question, bool) {
	q, ok := idx.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Stage1 returns the orientation pool in declaration order.
func Stage1() []Question {
	return slices.Clone(idx.stage1)
}

// Stage2 returns the confirmation pool in declaration order.
func Stage2() []Question {
	return slices.Clone(idx.stage2)
}

// Stage1Size returns the number of orientation items.
func Stage1Size() int {
	return len(idx.stage1)
}

// Validate checks both pools for structural issues.
func Validate(clusterIDs []string) error {
	all := make([]Question, 0, len(idx.stage1)+len(idx.stage2))
	all = append(all, idx.stage1...)
	all = append(all, idx.stage2...)
	return validateQuestions(all, clusterIDs)
}

func validateQuestions(qs []Question, clusterIDs []string) error {
	known := make(map[string]bool, len(clusterIDs))
	for _, id := range clusterIDs {
		known[id] = true
	}

	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if q.ID == "" {
			return fmt.Errorf("question with empty ID (prompt %q)", q.Prompt)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question ID: %q", q.ID)
		}
		seen[q.ID] = true

		if q.Stage != 1 && q.Stage != 2 {
			return fmt.Errorf("question %q: stage %d out of range", q.ID, q.Stage)
		}
		if q.Difficulty < 1 || q.Difficulty > 3 {
			return fmt.Errorf("question %q: difficulty %d out of range", q.ID, q.Difficulty)
		}
		if q.Kind.HasOptions() && len(q.Options) < 2 {
			return fmt.Errorf("question %q: %s question needs at least 2 options", q.ID, q.Kind)
		}

		values := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Value == "" {
				return fmt.Errorf("question %q: option with empty value", q.ID)
			}
			if values[o.Value] {
				return fmt.Errorf("question %q: duplicate option value %q", q.ID, o.Value)
			}
			values[o.Value] = true

			for cid, w := range o.ClusterLikelihoods {
				if !known[cid] {
					return fmt.Errorf("question %q option %q: unknown cluster %q", q.ID, o.Value, cid)
				}
				if w <= 0 {
					return fmt.Errorf("question %q option %q: non-positive likelihood for %q", q.ID, o.Value, cid)
				}
			}
			for sid, w := range o.SkillEvidence {
				if sid == "" || w <= 0 || w > 100 {
					return fmt.Errorf("question %q option %q: bad skill evidence %q=%d", q.ID, o.Value, sid, w)
				}
			}
		}
	}
	return nil
}
