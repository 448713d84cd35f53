package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"skillcompass/internal/bank"
	"skillcompass/internal/clusters"
	"skillcompass/internal/skills"
)

// answerFirst picks the first option value for option-bearing
// questions, so scripted sessions always submit something valid.
func answerFirst(q *bank.Question) Answer {
	if !q.Kind.HasOptions() {
		return Answer{Text: "I would talk it through with the people involved first."}
	}
	return Answer{Values: []string{q.Options[0].Value}}
}

func TestEngine_FullSessionInvariants(t *testing.T) {
	e := New(Config{})
	ctx := context.Background()

	st, q := e.InitSession(ctx)
	if st.Stage != 1 {
		t.Fatalf("initial stage = %d", st.Stage)
	}
	if q == nil {
		t.Fatal("no opening question")
	}

	prevStage := st.Stage
	for i := 0; q != nil; i++ {
		if i > e.cfg.MaxQuestions {
			t.Fatalf("session did not terminate after %d answers", i)
		}

		res, err := e.SubmitAnswer(ctx, st, q.ID, answerFirst(q))
		if err != nil {
			t.Fatalf("answer %d (%s): %v", i, q.ID, err)
		}

		// The posterior stays normalized after every single update.
		if diff := math.Abs(st.Clusters.Sum() - 1.0); diff > clusters.SumTolerance {
			t.Fatalf("after %s: distribution sum %v", q.ID, st.Clusters.Sum())
		}
		// The stage never regresses.
		if st.Stage < prevStage {
			t.Fatalf("stage regressed %d -> %d", prevStage, st.Stage)
		}
		prevStage = st.Stage

		q = res.NextQuestion
	}

	if !st.Done {
		t.Error("session ended without Done set")
	}
	if len(st.Asked) > e.cfg.MaxQuestions {
		t.Errorf("asked %d questions, cap is %d", len(st.Asked), e.cfg.MaxQuestions)
	}
	if st.Stage != 2 {
		t.Errorf("session ended in stage %d", st.Stage)
	}
}

func TestEngine_UnknownQuestion(t *testing.T) {
	e := New(Config{})
	st, _ := e.InitSession(context.Background())

	_, err := e.SubmitAnswer(context.Background(), st, "no_such_question", Answer{Values: []string{"x"}})
	var unknown *ErrUnknownQuestion
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
	if unknown.QuestionID != "no_such_question" {
		t.Errorf("QuestionID = %q", unknown.QuestionID)
	}
	if len(st.Asked) != 0 {
		t.Error("unknown submission mutated the session")
	}
}

func TestEngine_DuplicateAnswerLeavesStateUntouched(t *testing.T) {
	e := New(Config{})
	ctx := context.Background()
	st, q := e.InitSession(ctx)

	if _, err := e.SubmitAnswer(ctx, st, q.ID, answerFirst(q)); err != nil {
		t.Fatal(err)
	}
	before := st.Clusters.Clone()
	askedBefore := len(st.Asked)

	_, err := e.SubmitAnswer(ctx, st, q.ID, answerFirst(q))
	var dup *ErrDuplicateAnswer
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want ErrDuplicateAnswer", err)
	}
	if len(st.Asked) != askedBefore {
		t.Error("replay appended to Asked")
	}
	for id, p := range before {
		if st.Clusters[id] != p {
			t.Errorf("replay moved P(%s)", id)
		}
	}
}

func TestEngine_DoneSessionIsNoOp(t *testing.T) {
	e := New(Config{})
	st := NewState()
	st.Done = true

	res, err := e.SubmitAnswer(context.Background(), st, "stage1_q1_preference", Answer{Values: []string{"talking-people"}})
	if err != nil {
		t.Fatal(err)
	}
	if res.NextQuestion != nil {
		t.Error("finished session produced a next question")
	}
	if len(st.Asked) != 0 {
		t.Error("finished session recorded an answer")
	}
}

func TestEngine_FreeTextAnswerMergesAnalysis(t *testing.T) {
	scenario := &bank.Question{
		ID:    "gen_scn_1",
		Kind:  bank.KindScenario,
		Stage: 2, Difficulty: 2,
	}
	inj := &stubInjector{
		evidence: []skills.Evidence{
			{SkillID: "empathy", Confidence: 70, Evidence: []string{"mentioned checking in with the team"}, Source: skills.SourceAIAnalysis},
		},
	}
	e := New(Config{}, WithInjector(inj))
	st := NewState()
	st.Stage = 2
	st.Generated[scenario.ID] = *scenario

	_, err := e.SubmitAnswer(context.Background(), st, scenario.ID, Answer{Text: "I'd check in with everyone first."})
	if err != nil {
		t.Fatal(err)
	}
	b, ok := st.Skills["empathy"]
	if !ok {
		t.Fatal("analysis evidence not merged")
	}
	if b.Source != skills.SourceAIAnalysis {
		t.Errorf("source = %s", b.Source)
	}
}

func TestEngine_AnalysisFailureIsRecoverable(t *testing.T) {
	scenario := &bank.Question{
		ID:    "gen_scn_1",
		Kind:  bank.KindScenario,
		Stage: 2, Difficulty: 2,
	}
	inj := &stubInjector{err: errors.New("provider unavailable")}
	e := New(Config{}, WithInjector(inj))
	st := NewState()
	st.Stage = 2
	st.Generated[scenario.ID] = *scenario

	_, err := e.SubmitAnswer(context.Background(), st, scenario.ID, Answer{Text: "some answer"})
	if err != nil {
		t.Fatalf("analysis failure leaked as a fatal error: %v", err)
	}
	if !st.HasAsked(scenario.ID) {
		t.Error("answer not recorded despite recoverable failure")
	}
	if len(st.Skills) != 0 {
		t.Error("evidence merged from a failed analysis")
	}
}
