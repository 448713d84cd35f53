package engine

import (
	"skillcompass/internal/bank"
	"skillcompass/internal/skills"
)

// applyAnswer folds one answer into the state: the Bayesian cluster
// update for option-bearing questions, plus direct skill evidence from
// the chosen options. The question ID is appended to Asked and the
// entropy cache refreshed. Free-text and scenario answers leave the
// cluster distribution alone; their skill evidence arrives via the
// injector's analysis path.
func applyAnswer(st *State, q bank.Question, values []string) {
	if q.Kind.HasOptions() {
		updateClusters(st, q, values)
		mergeOptionEvidence(st, q, values)
	}

	st.Asked = append(st.Asked, q.ID)
	st.Entropy = st.Clusters.Entropy()
}

// updateClusters applies the chosen options' likelihood tables to the
// cluster posterior. Multiple chosen values combine multiplicatively —
// answers are treated as conditionally independent given the cluster, a
// simplifying assumption rather than a claim about the world. A cluster
// missing from a table contributes likelihood 1. If no chosen value
// matches any option, or the posterior mass collapses to zero, the
// distribution is left unchanged.
func updateClusters(st *State, q bank.Question, values []string) {
	posterior := st.Clusters.Clone()
	matched := false

	for _, v := range values {
		opt, ok := q.OptionByValue(v)
		if !ok {
			continue
		}
		matched = true
		for id := range posterior {
			if lik, ok := opt.ClusterLikelihoods[id]; ok {
				posterior[id] *= lik
			}
		}
	}

	if !matched || posterior.Sum() <= 0 {
		return
	}

	posterior.Normalize()
	st.Clusters = posterior
}

// mergeOptionEvidence converts the chosen options' skill evidence
// tables into direct-source merges.
func mergeOptionEvidence(st *State, q bank.Question, values []string) {
	var incoming []skills.Evidence
	for _, v := range values {
		opt, ok := q.OptionByValue(v)
		if !ok {
			continue
		}
		for skillID, confidence := range opt.SkillEvidence {
			incoming = append(incoming, skills.Evidence{
				SkillID:    skillID,
				Confidence: confidence,
				Evidence:   []string{q.ID},
				Source:     skills.SourceDirect,
			})
		}
	}
	skills.Merge(st.Skills, incoming)
}
