package engine

import (
	"context"
	"errors"
	"testing"

	"skillcompass/internal/skills"
)

func TestSummarize_TopClustersAndSkills(t *testing.T) {
	e := New(Config{})
	st := NewState()
	st.Done = true
	st.Clusters = sharpDistribution("tech-solver", 0.44)
	st.Asked = []string{"stage1_q1_preference", "stage1_q2_energize"}
	st.Skills = skills.BeliefMap{
		"debugging": {Confidence: 82, Evidence: []string{"stage2_q1_broken_system"}, Source: skills.SourceDirect},
		"empathy":   {Confidence: 40, Source: skills.SourceAIInferred},
	}

	sum := e.Summarize(context.Background(), st)

	if sum.SessionID != st.SessionID || !sum.Done || sum.QuestionsAsked != 2 {
		t.Errorf("header fields wrong: %+v", sum)
	}
	if len(sum.Clusters) != 3 {
		t.Fatalf("got %d clusters, want top 3", len(sum.Clusters))
	}
	if sum.Clusters[0].ID != "tech-solver" || sum.Clusters[0].Percent != 44 {
		t.Errorf("top cluster = %+v", sum.Clusters[0])
	}
	if sum.Clusters[0].Label == "" || sum.Clusters[0].Description == "" {
		t.Error("cluster metadata not resolved")
	}

	if len(sum.Skills) != 2 || sum.Skills[0].ID != "debugging" {
		t.Fatalf("skills = %+v", sum.Skills)
	}
	if sum.Skills[0].Proficiency != skills.ProficiencyAdvanced {
		t.Errorf("proficiency = %s", sum.Skills[0].Proficiency)
	}
	if sum.Skills[0].Label != "Debugging" {
		t.Errorf("label not resolved through the catalog: %q", sum.Skills[0].Label)
	}
}

func TestSummarize_StaticOccupationFallback(t *testing.T) {
	e := New(Config{})
	st := NewState()
	st.Clusters = sharpDistribution("care-support", 0.5)

	sum := e.Summarize(context.Background(), st)

	if len(sum.Occupations) == 0 {
		t.Fatal("no fallback occupations")
	}
	want := clusterOccupations["care-support"][0]
	if sum.Occupations[0] != want {
		t.Errorf("first occupation = %q, want the top cluster's entry %q", sum.Occupations[0], want)
	}
	seen := make(map[string]bool)
	for _, occ := range sum.Occupations {
		if seen[occ] {
			t.Errorf("duplicate occupation %q", occ)
		}
		seen[occ] = true
	}
}

type stubSuggester struct {
	occupations []string
	err         error
	calls       int
}

func (s *stubSuggester) SuggestOccupations(ctx context.Context, identified []skills.IdentifiedSkill) ([]string, error) {
	s.calls++
	return s.occupations, s.err
}

func TestSummarize_SuggesterUsedForConfidentSkills(t *testing.T) {
	sug := &stubSuggester{occupations: []string{"Escalation engineer", "Site reliability engineer"}}
	e := New(Config{}, WithSuggester(sug))
	st := NewState()
	st.Skills = skills.BeliefMap{
		"debugging": {Confidence: 85, Source: skills.SourceDirect},
		"empathy":   {Confidence: 30, Source: skills.SourceAIInferred},
	}

	sum := e.Summarize(context.Background(), st)

	if sug.calls != 1 {
		t.Fatalf("suggester calls = %d", sug.calls)
	}
	if len(sum.Occupations) != 2 || sum.Occupations[0] != "Escalation engineer" {
		t.Errorf("occupations = %v", sum.Occupations)
	}
}

func TestSummarize_SuggesterBelowThresholdSkipped(t *testing.T) {
	sug := &stubSuggester{occupations: []string{"Should not appear"}}
	e := New(Config{}, WithSuggester(sug))
	st := NewState()
	st.Skills = skills.BeliefMap{
		"empathy": {Confidence: 30, Source: skills.SourceAIInferred},
	}

	e.Summarize(context.Background(), st)

	if sug.calls != 0 {
		t.Errorf("suggester consulted with no skill above the confidence floor")
	}
}

func TestSummarize_SuggesterFailureFallsBack(t *testing.T) {
	sug := &stubSuggester{err: errors.New("rate limited")}
	e := New(Config{}, WithSuggester(sug))
	st := NewState()
	st.Clusters = sharpDistribution("hands-on-builder", 0.5)
	st.Skills = skills.BeliefMap{
		"debugging": {Confidence: 85, Source: skills.SourceDirect},
	}

	sum := e.Summarize(context.Background(), st)

	if len(sum.Occupations) == 0 {
		t.Fatal("no occupations after suggester failure")
	}
	if sum.Occupations[0] != clusterOccupations["hands-on-builder"][0] {
		t.Errorf("occupations = %v, want the static fallback", sum.Occupations)
	}
}
