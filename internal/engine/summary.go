package engine

import (
	"context"
	"math"

	"go.uber.org/zap"

	"skillcompass/internal/skills"
)

// ClusterScore is one entry of the final cluster ranking.
type ClusterScore struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Percent     int    `json:"percent"`
}

// Summary is the engine's final output for a session.
type Summary struct {
	SessionID      string                   `json:"sessionId"`
	Done           bool                     `json:"done"`
	QuestionsAsked int                      `json:"questionsAsked"`
	Clusters       []ClusterScore           `json:"clusters"`
	Skills         []skills.IdentifiedSkill `json:"skills"`
	Occupations    []string                 `json:"occupations"`
}

// Summarize produces the session snapshot handed to downstream
// consumers: the top-3 clusters with rounded percentages, the
// identified skill list, and candidate occupations. Occupation
// suggestion degrades to a static per-cluster table when no suggester
// is wired or the collaborator fails.
func (e *Engine) Summarize(ctx context.Context, st *State) *Summary {
	top := st.Clusters.Top(3)
	clusterScores := make([]ClusterScore, len(top))
	for i, r := range top {
		clusterScores[i] = ClusterScore{
			ID:          r.ID,
			Label:       r.Label,
			Description: r.Description,
			Percent:     int(math.Round(r.Probability * 100)),
		}
	}

	identified := skills.Identified(st.Skills, e.catalog.Label)

	return &Summary{
		SessionID:      st.SessionID,
		Done:           st.Done,
		QuestionsAsked: len(st.Asked),
		Clusters:       clusterScores,
		Skills:         identified,
		Occupations:    e.occupations(ctx, st, identified),
	}
}

// occupations asks the suggester for occupations matching the
// confident skills, falling back to the static table on any failure.
func (e *Engine) occupations(ctx context.Context, st *State, identified []skills.IdentifiedSkill) []string {
	var confident []skills.IdentifiedSkill
	for _, s := range identified {
		if s.Confidence >= e.cfg.OccupationConfidence {
			confident = append(confident, s)
		}
	}

	if e.suggester != nil && len(confident) > 0 {
		occupations, err := e.suggester.SuggestOccupations(ctx, confident)
		if err == nil && len(occupations) > 0 {
			return occupations
		}
		if err != nil {
			e.log.Warn("occupation suggestion failed, using static fallback",
				zap.String("sessionId", st.SessionID),
				zap.Error(err))
		}
	}

	return fallbackOccupations(st)
}

// fallbackOccupations returns the static occupations for the session's
// top clusters.
func fallbackOccupations(st *State) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range st.Clusters.Top(3) {
		for _, occ := range clusterOccupations[r.ID] {
			if !seen[occ] {
				seen[occ] = true
				out = append(out, occ)
			}
		}
	}
	return out
}

// clusterOccupations is the static fallback used when the generative
// collaborator is unavailable.
var clusterOccupations = map[string][]string{
	"tech-solver": {
		"Software developer", "Systems administrator", "QA engineer",
	},
	"helper-people": {
		"Teacher", "Customer success manager", "HR advisor",
	},
	"creative-maker": {
		"Graphic designer", "Content producer", "UX designer",
	},
	"analyst-researcher": {
		"Data analyst", "Market researcher", "Policy analyst",
	},
	"organizer-planner": {
		"Project coordinator", "Operations manager", "Office manager",
	},
	"hands-on-builder": {
		"Electrician", "CNC machinist", "Maintenance technician",
	},
	"care-support": {
		"Nursing assistant", "Childcare worker", "Social care worker",
	},
	"leader-communicator": {
		"Sales manager", "Team lead", "Public relations officer",
	},
}
