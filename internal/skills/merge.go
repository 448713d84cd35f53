package skills

import "math"

// Evidence is one incoming piece of skill evidence to be folded into a
// belief map.
type Evidence struct {
	SkillID    string
	Confidence int
	Evidence   []string
	Source     Source
}

// Merge folds incoming evidence into the belief map in place.
//
// A new skill is inserted as-is (confidence clamped). An existing skill
// gets the pairwise average of old and new confidence, rounded, and the
// evidence trails concatenated. The source tag is never downgraded: a
// weaker incoming source keeps the existing tag.
//
// The averaging is a deliberate heuristic accumulator, not a Bayesian
// posterior over skill presence.
func Merge(m BeliefMap, incoming []Evidence) {
	for _, in := range incoming {
		if in.SkillID == "" {
			continue
		}

		existing, ok := m[in.SkillID]
		if !ok {
			m[in.SkillID] = Belief{
				Confidence: clampConfidence(in.Confidence),
				Evidence:   append([]string(nil), in.Evidence...),
				Source:     in.Source,
			}
			continue
		}

		avg := float64(existing.Confidence+clampConfidence(in.Confidence)) / 2
		existing.Confidence = clampConfidence(int(math.Round(avg)))
		existing.Evidence = append(existing.Evidence, in.Evidence...)
		if !existing.Source.Outranks(in.Source) {
			existing.Source = in.Source
		}
		m[in.SkillID] = existing
	}
}
