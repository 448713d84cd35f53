// Package engine implements the two-stage Bayesian adaptive quiz: a
// posterior update over archetype clusters after every answer, skill
// evidence aggregation, and expected-information-gain question
// selection with optional generative scenario injection.
package engine

import (
	"context"

	"go.uber.org/zap"

	"skillcompass/internal/bank"
	"skillcompass/internal/catalog"
	"skillcompass/internal/skills"
)

// Injector decides when to substitute a generated scenario question
// for a catalog pick, and turns free-text answers back into skill
// evidence. The scenario package provides the implementation; a nil
// injector disables both paths.
type Injector interface {
	// ShouldInject reports whether this call should serve a scenario
	// question instead of a catalog question.
	ShouldInject(st *State) bool

	// Generate produces a scenario question for the session. ok=false
	// means generation declined or failed and the caller should fall
	// back to the catalog.
	Generate(ctx context.Context, st *State) (q *bank.Question, ok bool)

	// Analyze extracts skill evidence from a free-text answer. Errors
	// are recoverable: the answer is simply recorded without evidence.
	Analyze(ctx context.Context, q bank.Question, text string) ([]skills.Evidence, error)
}

// OccupationSuggester proposes occupations for a set of identified
// skills. A nil suggester (or a failing one) falls back to the static
// per-cluster table.
type OccupationSuggester interface {
	SuggestOccupations(ctx context.Context, identified []skills.IdentifiedSkill) ([]string, error)
}

// SkillCatalog resolves skill references and labels for summaries.
type SkillCatalog interface {
	catalog.Resolver
	Label(id string) string
}

// Engine is the quiz core. It is stateless across sessions: all
// per-session data lives in State, so one Engine serves concurrent
// sessions as long as each session's calls stay sequential.
type Engine struct {
	cfg       Config
	injector  Injector
	catalog   SkillCatalog
	suggester OccupationSuggester
	log       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithInjector wires the scenario injector.
func WithInjector(inj Injector) Option {
	return func(e *Engine) { e.injector = inj }
}

// WithCatalog replaces the built-in skill catalog.
func WithCatalog(c SkillCatalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithSuggester wires an occupation suggester.
func WithSuggester(s OccupationSuggester) Option {
	return func(e *Engine) { e.suggester = s }
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an Engine. Zero config fields take defaults.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg.withDefaults(),
		catalog: catalog.NewStatic(nil),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Answer is one submitted answer: chosen option values for enumerable
// questions, free text for scenario and free-text questions.
type Answer struct {
	Values []string `json:"values,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Result is the outcome of one answer exchange. NextQuestion is nil
// when the quiz has ended.
type Result struct {
	State        *State
	NextQuestion *bank.Question
}

// InitSession creates a new stage-1 session with a uniform prior and
// picks its first question.
func (e *Engine) InitSession(ctx context.Context) (*State, *bank.Question) {
	st := NewState()
	return st, e.selectNext(ctx, st)
}

// SubmitAnswer applies one answer to the session and selects the next
// question. On ErrUnknownQuestion the state must not be persisted; on
// ErrDuplicateAnswer the state is untouched and the caller should
// re-serve its previous next question.
func (e *Engine) SubmitAnswer(ctx context.Context, st *State, questionID string, ans Answer) (*Result, error) {
	if st.Done {
		return &Result{State: st}, nil
	}

	q, ok := st.question(questionID)
	if !ok {
		return nil, &ErrUnknownQuestion{QuestionID: questionID}
	}
	if st.HasAsked(questionID) {
		return nil, &ErrDuplicateAnswer{QuestionID: questionID}
	}

	applyAnswer(st, q, ans.Values)

	if !q.Kind.HasOptions() && ans.Text != "" && e.injector != nil {
		evidence, err := e.injector.Analyze(ctx, q, ans.Text)
		if err != nil {
			// Recoverable: the answer stays recorded, just without
			// extracted evidence.
			e.log.Warn("free-text analysis failed",
				zap.String("sessionId", st.SessionID),
				zap.String("questionId", questionID),
				zap.Error(err))
		} else {
			skills.Merge(st.Skills, evidence)
		}
	}

	next := e.selectNext(ctx, st)
	if next == nil {
		st.Done = true
	}

	return &Result{State: st, NextQuestion: next}, nil
}
