package engine

import (
	"slices"

	"github.com/google/uuid"

	"skillcompass/internal/bank"
	"skillcompass/internal/clusters"
	"skillcompass/internal/skills"
)

// State is a session's complete belief state: the unit of persistence,
// read-modify-written once per answer. All fields round-trip through
// JSON losslessly.
type State struct {
	SessionID string `json:"sessionId"`

	// Stage is 1 (orientation) or 2 (confirmation). It only ever
	// advances.
	Stage int `json:"stage"`

	// Clusters is the posterior over archetype clusters; Entropy caches
	// its Shannon entropy after the latest update.
	Clusters clusters.Distribution `json:"clusters"`
	Entropy  float64               `json:"entropy"`

	// Skills is the running skill evidence map.
	Skills skills.BeliefMap `json:"skills"`

	// Asked lists answered question IDs in order. A question ID never
	// appears twice.
	Asked []string `json:"asked"`

	// Generated holds session-owned scenario questions keyed by ID, so
	// their answers can be matched after a round trip through
	// persistence.
	Generated map[string]bank.Question `json:"generated,omitempty"`

	// ScenariosInjected counts injected scenario questions.
	ScenariosInjected int `json:"scenariosInjected"`

	// Done is set when the selector decides the quiz is over.
	Done bool `json:"done"`
}

// NewState creates a fresh stage-1 session with a uniform cluster
// prior.
func NewState() *State {
	dist := clusters.Uniform()
	return &State{
		SessionID: uuid.NewString(),
		Stage:     1,
		Clusters:  dist,
		Entropy:   dist.Entropy(),
		Skills:    make(skills.BeliefMap),
		Generated: make(map[string]bank.Question),
	}
}

// HasAsked reports whether the question was already answered in this
// session.
func (s *State) HasAsked(questionID string) bool {
	return slices.Contains(s.Asked, questionID)
}

// question finds a question visible to this session: the static banks
// first, then the session's generated scenarios.
func (s *State) question(id string) (bank.Question, bool) {
	if q, ok := bank.ByID(id); ok {
		return q, true
	}
	q, ok := s.Generated[id]
	return q, ok
}

// stage1Answered counts answered orientation items.
func (s *State) stage1Answered() int {
	n := 0
	for _, id := range s.Asked {
		if q, ok := bank.ByID(id); ok && q.Stage == 1 {
			n++
		}
	}
	return n
}

// stage2Answered counts answered stage-2 items, generated scenarios
// included.
func (s *State) stage2Answered() int {
	n := 0
	for _, id := range s.Asked {
		if q, ok := s.question(id); ok && q.Stage == 2 {
			n++
		}
	}
	return n
}
