// Package scenario injects generatively produced open-ended questions
// into stage 2 of the quiz and reconciles their free-text answers back
// into skill evidence. Every collaborator failure degrades to the
// deterministic catalog path; nothing here may stall a session.
package scenario

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"skillcompass/internal/catalog"
	"skillcompass/internal/clusters"
	"skillcompass/internal/engine"
	"skillcompass/internal/llm"
)

// Config tunes injection scheduling and collaborator timeouts.
type Config struct {
	// MaxScenarios caps injected scenario questions per session.
	// Negative disables injection outright; zero means default.
	MaxScenarios int

	// Checkpoints are the asked-question counts at which a scenario may
	// replace a catalog pick.
	Checkpoints []int

	// UncertainLow and UncertainHigh bound the cluster probability band
	// that makes a cluster a scenario target.
	UncertainLow  float64
	UncertainHigh float64

	// Timeout bounds each collaborator call.
	Timeout time.Duration
}

// DefaultConfig returns the standard injection tuning.
func DefaultConfig() Config {
	return Config{
		MaxScenarios:  3,
		Checkpoints:   []int{3, 7, 11},
		UncertainLow:  0.15,
		UncertainHigh: 0.6,
		Timeout:       15 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxScenarios == 0 {
		c.MaxScenarios = def.MaxScenarios
	} else if c.MaxScenarios < 0 {
		c.MaxScenarios = 0
	}
	if len(c.Checkpoints) == 0 {
		c.Checkpoints = append([]int(nil), def.Checkpoints...)
	}
	if c.UncertainLow <= 0 {
		c.UncertainLow = def.UncertainLow
	}
	if c.UncertainHigh <= 0 {
		c.UncertainHigh = def.UncertainHigh
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}

// Injector drives scenario generation and free-text analysis through an
// llm.Provider. It implements engine.Injector.
type Injector struct {
	provider llm.Provider
	resolver catalog.Resolver
	cfg      Config
	log      *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Injector.
type Option func(*Injector)

// WithRand sets the random source used for target-skill choice. Tests
// pass a seeded source for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(i *Injector) { i.rng = rng }
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(i *Injector) { i.log = log }
}

// New creates an Injector. A nil provider yields an injector that never
// injects and fails analysis, so callers can wire it unconditionally.
func New(provider llm.Provider, resolver catalog.Resolver, cfg Config, opts ...Option) *Injector {
	inj := &Injector{
		provider: provider,
		resolver: resolver,
		cfg:      cfg.withDefaults(),
		log:      zap.NewNop(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// ShouldInject reports whether a scenario question should replace the
// next catalog pick: stage 2 only, collaborator configured, under the
// per-session cap, at a scheduled checkpoint, with at least one cluster
// still in the uncertain band to target.
func (i *Injector) ShouldInject(st *engine.State) bool {
	if st.Stage != 2 || i.provider == nil {
		return false
	}
	if st.ScenariosInjected >= i.cfg.MaxScenarios {
		return false
	}
	if !i.atCheckpoint(len(st.Asked)) {
		return false
	}
	return len(st.Clusters.Uncertain(i.cfg.UncertainLow, i.cfg.UncertainHigh)) > 0
}

func (i *Injector) atCheckpoint(asked int) bool {
	for _, c := range i.cfg.Checkpoints {
		if asked == c {
			return true
		}
	}
	return false
}

// PickTargetSkill chooses the skill a generated scenario should probe:
// uniformly at random among the core skills of clusters whose
// probability sits in the uncertain band. ok=false means no cluster
// qualifies and injection should be declined.
func (i *Injector) PickTargetSkill(st *engine.State) (string, bool) {
	uncertain := st.Clusters.Uncertain(i.cfg.UncertainLow, i.cfg.UncertainHigh)

	var pool []string
	for _, id := range uncertain {
		pool = append(pool, clusters.CoreSkills(id)...)
	}
	if len(pool) == 0 {
		return "", false
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	return pool[i.rng.Intn(len(pool))], true
}
