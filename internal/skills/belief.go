package skills

// Source tags where skill evidence came from. Sources are ranked:
// direct catalog-question evidence outranks AI analysis of a free-text
// answer, which outranks AI inference.
type Source string

const (
	SourceDirect     Source = "direct"
	SourceAIAnalysis Source = "ai-analysis"
	SourceAIInferred Source = "ai-inferred"
)

// rank returns the strength ordering of a source. Unknown sources rank
// lowest.
func (s Source) rank() int {
	switch s {
	case SourceDirect:
		return 3
	case SourceAIAnalysis:
		return 2
	case SourceAIInferred:
		return 1
	}
	return 0
}

// Outranks reports whether s is a strictly stronger source than other.
func (s Source) Outranks(other Source) bool {
	return s.rank() > other.rank()
}

// Belief is the running evidence for one skill. Confidence is a
// heuristic strength score in [0,100], not a probability. Evidence is a
// provenance trail of contributing question IDs; duplicates are kept.
type Belief struct {
	Confidence int      `json:"confidence"`
	Evidence   []string `json:"evidence"`
	Source     Source   `json:"source"`
}

// BeliefMap maps skill IDs to their running beliefs.
type BeliefMap map[string]Belief

// Clone returns a deep copy of the belief map.
func (m BeliefMap) Clone() BeliefMap {
	out := make(BeliefMap, len(m))
	for id, b := range m {
		ev := make([]string, len(b.Evidence))
		copy(ev, b.Evidence)
		b.Evidence = ev
		out[id] = b
	}
	return out
}

// clampConfidence bounds a confidence score to [0,100].
func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
