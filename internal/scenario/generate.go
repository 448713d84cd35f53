package scenario

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skillcompass/internal/bank"
	"skillcompass/internal/engine"
	"skillcompass/internal/llm"
)

// generatedScenario is the collaborator's payload for one scenario
// question.
type generatedScenario struct {
	Prompt              string              `json:"prompt"`
	ScenarioContext     string              `json:"scenarioContext"`
	SuggestedApproaches []string            `json:"suggestedApproaches"`
	SkillIndicators     map[string][]string `json:"skillIndicators"`
}

// Generate produces one scenario question targeting a skill of an
// uncertain cluster. ok=false declines injection — no qualifying
// target, collaborator failure, malformed payload or timeout — and the
// selector falls back to a catalog question.
func (i *Injector) Generate(ctx context.Context, st *engine.State) (*bank.Question, bool) {
	target, ok := i.PickTargetSkill(st)
	if !ok {
		return nil, false
	}

	ctx = llm.WithPurpose(ctx, "scenario-gen")
	ctx, cancel := context.WithTimeout(ctx, i.cfg.Timeout)
	defer cancel()

	resp, err := i.provider.Generate(ctx, llm.Request{
		System: generateSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: generateUser(target, st)},
		},
		Schema:      scenarioSchema,
		MaxTokens:   1024,
		Temperature: 0.8,
	})
	if err != nil {
		i.log.Warn("scenario generation failed",
			zap.String("sessionId", st.SessionID),
			zap.String("targetSkill", target),
			zap.Error(err))
		return nil, false
	}

	var gen generatedScenario
	if err := json.Unmarshal(resp.Content, &gen); err != nil {
		i.log.Warn("scenario payload unmarshal failed",
			zap.String("sessionId", st.SessionID),
			zap.Error(err))
		return nil, false
	}
	if gen.Prompt == "" {
		i.log.Warn("scenario payload missing prompt",
			zap.String("sessionId", st.SessionID))
		return nil, false
	}

	q := &bank.Question{
		ID:           fmt.Sprintf("scn_%s", uuid.NewString()[:8]),
		Kind:         bank.KindScenario,
		Stage:        2,
		Prompt:       gen.Prompt,
		Difficulty:   2,
		TargetSkills: []string{target},
		// Coarse estimate: a free-text probe of one uncertain skill
		// rarely resolves more than a fraction of the remaining
		// cluster uncertainty.
		ExpectedGain:        st.Entropy * 0.25,
		ScenarioContext:     gen.ScenarioContext,
		SuggestedApproaches: gen.SuggestedApproaches,
		SkillIndicators:     gen.SkillIndicators,
	}

	i.log.Info("scenario injected",
		zap.String("sessionId", st.SessionID),
		zap.String("questionId", q.ID),
		zap.String("targetSkill", target))
	return q, true
}
