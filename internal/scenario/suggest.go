package scenario

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"skillcompass/internal/llm"
	"skillcompass/internal/skills"
)

// Suggester proposes occupations via the generative collaborator. It
// implements engine.OccupationSuggester; the engine falls back to its
// static table when a call fails.
type Suggester struct {
	provider llm.Provider
	timeout  time.Duration
	log      *zap.Logger
}

// NewSuggester creates a Suggester. Zero timeout takes the default.
func NewSuggester(provider llm.Provider, timeout time.Duration, log *zap.Logger) *Suggester {
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Suggester{provider: provider, timeout: timeout, log: log}
}

// SuggestOccupations asks the collaborator for occupations matching
// the identified skills.
func (s *Suggester) SuggestOccupations(ctx context.Context, identified []skills.IdentifiedSkill) ([]string, error) {
	if s.provider == nil {
		return nil, &llm.ErrProviderUnavailable{}
	}

	ctx = llm.WithPurpose(ctx, "occupation-suggest")
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: suggestSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: suggestUser(identified)},
		},
		Schema:    occupationSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Occupations []string `json:"occupations"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return payload.Occupations, nil
}
