package skills

import "sort"

// Proficiency buckets a confidence score for external consumers.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
)

// ProficiencyFor maps a confidence score to a proficiency band.
func ProficiencyFor(confidence int) Proficiency {
	switch {
	case confidence >= 80:
		return ProficiencyAdvanced
	case confidence >= 55:
		return ProficiencyIntermediate
	}
	return ProficiencyBeginner
}

// IdentifiedSkill is the externally visible result for one skill,
// assembled from a Belief and a resolved catalog label.
type IdentifiedSkill struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Confidence  int         `json:"confidence"`
	Evidence    []string    `json:"evidence"`
	Source      Source      `json:"source"`
	Proficiency Proficiency `json:"proficiency"`
}

// LabelFunc resolves a skill ID to a display label. A nil LabelFunc
// falls back to the raw ID.
type LabelFunc func(id string) string

// Identified assembles the external skill list from a belief map,
// sorted by confidence descending with ID as the tiebreak.
func Identified(m BeliefMap, label LabelFunc) []IdentifiedSkill {
	out := make([]IdentifiedSkill, 0, len(m))
	for id, b := range m {
		name := id
		if label != nil {
			if l := label(id); l != "" {
				name = l
			}
		}
		out = append(out, IdentifiedSkill{
			ID:          id,
			Label:       name,
			Confidence:  b.Confidence,
			Evidence:    append([]string(nil), b.Evidence...),
			Source:      b.Source,
			Proficiency: ProficiencyFor(b.Confidence),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].ID < out[j].ID
	})
	return out
}
