package scenario

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"skillcompass/internal/bank"
	"skillcompass/internal/llm"
	"skillcompass/internal/skills"
)

// skillTuple is one skill claim in an analysis payload.
type skillTuple struct {
	Skill      string `json:"skill"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// analysisResult is the collaborator's payload for one free-text
// answer.
type analysisResult struct {
	IdentifiedSkills  []skillTuple `json:"identifiedSkills"`
	AdditionalSkills  []skillTuple `json:"additionalSkills"`
	OverallAssessment string       `json:"overallAssessment"`
}

// Analyze extracts skill evidence from a free-text answer. Directly
// demonstrated skills merge as ai-analysis, inferred ones as
// ai-inferred. Tuples whose skill reference cannot be resolved against
// the catalog are dropped with a warning; a dropped tuple never fails
// the call. The error return covers collaborator failure only, and the
// caller treats it as recoverable.
func (i *Injector) Analyze(ctx context.Context, q bank.Question, text string) ([]skills.Evidence, error) {
	if i.provider == nil {
		return nil, &llm.ErrProviderUnavailable{}
	}

	ctx = llm.WithPurpose(ctx, "answer-analysis")
	ctx, cancel := context.WithTimeout(ctx, i.cfg.Timeout)
	defer cancel()

	resp, err := i.provider.Generate(ctx, llm.Request{
		System: analyzeSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: analyzeUser(q, text)},
		},
		Schema:    analysisSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, err
	}

	var result analysisResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	var out []skills.Evidence
	out = append(out, i.resolveTuples(q, result.IdentifiedSkills, skills.SourceAIAnalysis)...)
	out = append(out, i.resolveTuples(q, result.AdditionalSkills, skills.SourceAIInferred)...)
	return out, nil
}

// resolveTuples maps skill claims through the catalog resolver,
// dropping what cannot be resolved.
func (i *Injector) resolveTuples(q bank.Question, tuples []skillTuple, source skills.Source) []skills.Evidence {
	var out []skills.Evidence
	for _, t := range tuples {
		entry, ok := i.resolver.ResolveSkill(t.Skill)
		if !ok {
			i.log.Warn("unresolved skill in analysis, dropping",
				zap.String("questionId", q.ID),
				zap.String("skill", t.Skill))
			continue
		}

		provenance := fmt.Sprintf("%s: %s", q.ID, source)
		if t.Reasoning != "" {
			provenance = fmt.Sprintf("%s: %s", q.ID, t.Reasoning)
		}
		out = append(out, skills.Evidence{
			SkillID:    entry.ID,
			Confidence: t.Confidence,
			Evidence:   []string{provenance},
			Source:     source,
		})
	}
	return out
}
