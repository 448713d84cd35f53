package engine

import (
	"math"
	"testing"

	"skillcompass/internal/bank"
	"skillcompass/internal/clusters"
	"skillcompass/internal/skills"
)

func mustQuestion(t *testing.T, id string) bank.Question {
	t.Helper()
	q, ok := bank.ByID(id)
	if !ok {
		t.Fatalf("question %q not in bank", id)
	}
	return q
}

func assertNormalized(t *testing.T, d clusters.Distribution) {
	t.Helper()
	if diff := math.Abs(d.Sum() - 1.0); diff > clusters.SumTolerance {
		t.Fatalf("distribution sum = %v, want 1.0 ± %v", d.Sum(), clusters.SumTolerance)
	}
}

func TestApplyAnswer_TalkingPeopleShiftsDistribution(t *testing.T) {
	st := NewState()
	q := mustQuestion(t, "stage1_q1_preference")
	prior := st.Clusters.Clone()

	applyAnswer(st, q, []string{"talking-people"})

	assertNormalized(t, st.Clusters)
	if st.Clusters["helper-people"] <= prior["helper-people"] {
		t.Errorf("P(helper-people) = %v, want > prior %v", st.Clusters["helper-people"], prior["helper-people"])
	}
	if st.Clusters["care-support"] <= prior["care-support"] {
		t.Errorf("P(care-support) = %v, want > prior %v", st.Clusters["care-support"], prior["care-support"])
	}
	if st.Clusters["analyst-researcher"] >= prior["analyst-researcher"] {
		t.Errorf("P(analyst-researcher) = %v, want < prior %v", st.Clusters["analyst-researcher"], prior["analyst-researcher"])
	}
}

func TestApplyAnswer_AppendsAskedAndCachesEntropy(t *testing.T) {
	st := NewState()
	q := mustQuestion(t, "stage1_q1_preference")

	applyAnswer(st, q, []string{"tinkering-tech"})

	if len(st.Asked) != 1 || st.Asked[0] != q.ID {
		t.Errorf("Asked = %v", st.Asked)
	}
	if got := st.Clusters.Entropy(); st.Entropy != got {
		t.Errorf("cached entropy = %v, recomputed = %v", st.Entropy, got)
	}
	// An informative answer must reduce entropy below the uniform max.
	if st.Entropy >= math.Log2(float64(clusters.Count())) {
		t.Errorf("entropy %v not reduced from uniform", st.Entropy)
	}
}

func TestApplyAnswer_NormalizedOverFullSequence(t *testing.T) {
	st := NewState()
	answers := map[string][]string{
		"stage1_q1_preference":  {"tinkering-tech"},
		"stage1_q2_energize":    {"solving-puzzle", "building-physical"},
		"stage1_q3_environment": {"quiet-focus"},
		"stage1_q4_structure":   {"2"},
		"stage1_q5_problem":     {"take-apart"},
		"stage1_q6_hands":       {"4"},
		"stage1_q7_recognition": {"made-it-work"},
		"stage1_q8_people":      {"2"},
	}
	for _, q := range bank.Stage1() {
		applyAnswer(st, q, answers[q.ID])
		assertNormalized(t, st.Clusters)
	}
	if st.Clusters["tech-solver"] <= 1.0/float64(clusters.Count()) {
		t.Errorf("P(tech-solver) = %v after consistently technical answers", st.Clusters["tech-solver"])
	}
}

func TestApplyAnswer_MultiSelectCombinesMultiplicatively(t *testing.T) {
	st := NewState()
	q := mustQuestion(t, "stage1_q2_energize")

	applyAnswer(st, q, []string{"solving-puzzle", "helping-someone"})
	assertNormalized(t, st.Clusters)

	// Both chosen options rate care-support differently than
	// organizer-planner; the combined update must reflect the product
	// of likelihoods, here checked against a hand-applied sequence.
	want := clusters.Uniform()
	for _, v := range []string{"solving-puzzle", "helping-someone"} {
		opt, _ := q.OptionByValue(v)
		for id := range want {
			if l, ok := opt.ClusterLikelihoods[id]; ok {
				want[id] *= l
			}
		}
	}
	want.Normalize()
	for id, p := range want {
		if math.Abs(st.Clusters[id]-p) > 1e-12 {
			t.Errorf("P(%s) = %v, want %v", id, st.Clusters[id], p)
		}
	}
}

func TestApplyAnswer_ScaleIndexedLikeOptions(t *testing.T) {
	st := NewState()
	q := mustQuestion(t, "stage1_q4_structure")
	prior := st.Clusters.Clone()

	applyAnswer(st, q, []string{"5"})

	assertNormalized(t, st.Clusters)
	if st.Clusters["organizer-planner"] <= prior["organizer-planner"] {
		t.Error("strong agreement with planning did not raise organizer-planner")
	}
}

func TestApplyAnswer_UnmatchedValueLeavesDistribution(t *testing.T) {
	st := NewState()
	q := mustQuestion(t, "stage1_q1_preference")
	prior := st.Clusters.Clone()

	applyAnswer(st, q, []string{"no-such-option"})

	for id, p := range prior {
		if st.Clusters[id] != p {
			t.Errorf("P(%s) changed to %v", id, st.Clusters[id])
		}
	}
	// The question still counts as asked.
	if !st.HasAsked(q.ID) {
		t.Error("question not recorded as asked")
	}
}

func TestApplyAnswer_DirectSkillEvidence(t *testing.T) {
	st := NewState()
	st.Stage = 2
	q := mustQuestion(t, "stage2_q1_broken_system")

	applyAnswer(st, q, []string{"bisect-cause"})

	b, ok := st.Skills["debugging"]
	if !ok {
		t.Fatal("debugging evidence not merged")
	}
	if b.Source != skills.SourceDirect {
		t.Errorf("source = %s, want direct", b.Source)
	}
	if len(b.Evidence) != 1 || b.Evidence[0] != q.ID {
		t.Errorf("evidence = %v", b.Evidence)
	}
}

func TestApplyAnswer_FreeTextSkipsClusterUpdate(t *testing.T) {
	st := NewState()
	st.Stage = 2
	prior := st.Clusters.Clone()
	q := bank.Question{
		ID:    "scenario_test",
		Kind:  bank.KindScenario,
		Stage: 2, Difficulty: 2,
	}
	st.Generated[q.ID] = q

	applyAnswer(st, q, nil)

	for id, p := range prior {
		if st.Clusters[id] != p {
			t.Errorf("P(%s) changed by free-text answer", id)
		}
	}
	if !st.HasAsked(q.ID) {
		t.Error("scenario answer not recorded as asked")
	}
}
