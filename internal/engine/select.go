package engine

import (
	"context"
	"sort"

	"skillcompass/internal/bank"
	"skillcompass/internal/clusters"
)

// selectNext picks the next question for the session, advancing the
// stage when the orientation pool is exhausted. Returns nil when the
// quiz should end; the caller sets Done.
func (e *Engine) selectNext(ctx context.Context, st *State) *bank.Question {
	if len(st.Asked) >= e.cfg.MaxQuestions {
		return nil
	}

	if st.Stage == 1 {
		if st.stage1Answered() < e.cfg.Stage1Minimum {
			if q := nextStage1(st); q != nil {
				return q
			}
		}
		// Orientation done: the current distribution becomes the
		// stage-2 prior and selection continues on this same call.
		st.Stage = 2
	}

	if st.Entropy < e.cfg.EntropyThreshold && st.stage2Answered() >= e.cfg.MinStage2Questions {
		return nil
	}

	if e.injector != nil && e.injector.ShouldInject(st) {
		if q, ok := e.injector.Generate(ctx, st); ok {
			// A state reloaded from persistence may arrive with a nil
			// Generated map (the field is omitted while empty).
			if st.Generated == nil {
				st.Generated = make(map[string]bank.Question)
			}
			st.Generated[q.ID] = *q
			st.ScenariosInjected++
			return q
		}
		// Generation failed — fall through to the catalog pick.
	}

	return e.bestStage2(st)
}

// nextStage1 returns the first unasked orientation item in declaration
// order.
func nextStage1(st *State) *bank.Question {
	for _, q := range bank.Stage1() {
		if !st.HasAsked(q.ID) {
			return &q
		}
	}
	return nil
}

// bestStage2 scores the remaining confirmation candidates by expected
// information gain and returns the winner.
func (e *Engine) bestStage2(st *State) *bank.Question {
	candidates := e.stage2Candidates(st)
	uncertain := st.Clusters.Uncertain(e.cfg.UncertainLow, e.cfg.UncertainHigh)
	return pickBest(st.Clusters, candidates, uncertain)
}

// pickBest returns the maximum-scoring candidate by expected
// information gain. Ties break on coverage of currently-uncertain
// clusters, then lower difficulty, then ID, so selection is fully
// deterministic.
func pickBest(dist clusters.Distribution, candidates []bank.Question, uncertain []string) *bank.Question {
	if len(candidates) == 0 {
		return nil
	}

	type scored struct {
		q        bank.Question
		gain     float64
		coverage int
	}
	scoredCandidates := make([]scored, 0, len(candidates))
	for _, q := range candidates {
		scoredCandidates = append(scoredCandidates, scored{
			q:        q,
			gain:     ExpectedGain(dist, q),
			coverage: uncertainCoverage(q, uncertain),
		})
	}

	sort.Slice(scoredCandidates, func(i, j int) bool {
		a, b := scoredCandidates[i], scoredCandidates[j]
		if a.gain != b.gain {
			return a.gain > b.gain
		}
		if a.coverage != b.coverage {
			return a.coverage > b.coverage
		}
		if a.q.Difficulty != b.q.Difficulty {
			return a.q.Difficulty < b.q.Difficulty
		}
		return a.q.ID < b.q.ID
	})

	return &scoredCandidates[0].q
}

// stage2Candidates filters the confirmation pool: unasked items only,
// with hard items held back for the first few stage-2 picks. If the
// pacing filter empties the set entirely, the difficulty cap is lifted
// rather than ending the quiz early.
func (e *Engine) stage2Candidates(st *State) []bank.Question {
	early := st.stage2Answered() < e.cfg.EarlyStage2Count

	var unasked, paced []bank.Question
	for _, q := range bank.Stage2() {
		if st.HasAsked(q.ID) {
			continue
		}
		unasked = append(unasked, q)
		if !early || q.Difficulty <= e.cfg.EarlyMaxDifficulty {
			paced = append(paced, q)
		}
	}
	if len(paced) > 0 {
		return paced
	}
	return unasked
}

// uncertainCoverage counts how many currently-uncertain clusters the
// question says anything about, via its target tags or its options'
// likelihood tables.
func uncertainCoverage(q bank.Question, uncertain []string) int {
	touched := make(map[string]bool)
	for _, id := range q.TargetClusters {
		touched[id] = true
	}
	for _, o := range q.Options {
		for id := range o.ClusterLikelihoods {
			touched[id] = true
		}
	}
	n := 0
	for _, id := range uncertain {
		if touched[id] {
			n++
		}
	}
	return n
}

// ExpectedGain estimates the entropy reduction from asking q under the
// current distribution: H(prior) − Σ_o P(o)·H(posterior|o), with P(o)
// obtained by applying Bayes' rule forward through the option's
// likelihood table. Questions without options (scenario, free-text)
// score zero here; generated scenarios carry their own estimate.
func ExpectedGain(dist clusters.Distribution, q bank.Question) float64 {
	if !q.Kind.HasOptions() {
		return q.ExpectedGain
	}

	prior := dist.Entropy()

	type outcome struct {
		weight    float64
		posterior clusters.Distribution
	}
	outcomes := make([]outcome, 0, len(q.Options))
	var totalWeight float64

	for _, opt := range q.Options {
		posterior := dist.Clone()
		var weight float64
		for id, p := range dist {
			lik := 1.0
			if l, ok := opt.ClusterLikelihoods[id]; ok {
				lik = l
			}
			posterior[id] = p * lik
			weight += p * lik
		}
		if weight <= 0 {
			continue
		}
		posterior.Normalize()
		outcomes = append(outcomes, outcome{weight: weight, posterior: posterior})
		totalWeight += weight
	}

	if totalWeight <= 0 {
		return 0
	}

	var expected float64
	for _, o := range outcomes {
		expected += (o.weight / totalWeight) * o.posterior.Entropy()
	}

	gain := prior - expected
	if gain < 0 {
		return 0
	}
	return gain
}
