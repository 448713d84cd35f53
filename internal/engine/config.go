package engine

// Config tunes the two-stage adaptive flow. Zero values are replaced by
// defaults in New, so partially filled configs are safe. This means a
// field cannot be tuned to zero; the smallest representable tunings are
// bounds like UncertainLow just above 0 or EarlyStage2Count of 1.
type Config struct {
	// MaxQuestions bounds the total number of questions per session.
	MaxQuestions int

	// Stage1Minimum is the number of answered orientation items after
	// which the session moves to stage 2.
	Stage1Minimum int

	// EntropyThreshold ends stage 2 when the cluster distribution's
	// entropy (bits) falls below it, provided MinStage2Questions have
	// been answered.
	EntropyThreshold float64

	// MinStage2Questions is the minimum number of stage-2 answers
	// before the entropy stop can fire.
	MinStage2Questions int

	// EarlyStage2Count caps the first N stage-2 picks at difficulty
	// EarlyMaxDifficulty so hard items are not front-loaded.
	EarlyStage2Count   int
	EarlyMaxDifficulty int

	// UncertainLow and UncertainHigh bound the probability band in
	// which a cluster counts as "uncertain" for tie-breaking and
	// scenario targeting.
	UncertainLow  float64
	UncertainHigh float64

	// OccupationConfidence is the minimum skill confidence for a skill
	// to feed occupation suggestions.
	OccupationConfidence int
}

// DefaultConfig returns the standard quiz tuning.
func DefaultConfig() Config {
	return Config{
		MaxQuestions:         15,
		Stage1Minimum:        6,
		EntropyThreshold:     1.0,
		MinStage2Questions:   4,
		EarlyStage2Count:     3,
		EarlyMaxDifficulty:   2,
		UncertainLow:         0.15,
		UncertainHigh:        0.6,
		OccupationConfidence: 60,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxQuestions <= 0 {
		c.MaxQuestions = def.MaxQuestions
	}
	if c.Stage1Minimum <= 0 {
		c.Stage1Minimum = def.Stage1Minimum
	}
	if c.EntropyThreshold <= 0 {
		c.EntropyThreshold = def.EntropyThreshold
	}
	if c.MinStage2Questions <= 0 {
		c.MinStage2Questions = def.MinStage2Questions
	}
	if c.EarlyStage2Count <= 0 {
		c.EarlyStage2Count = def.EarlyStage2Count
	}
	if c.EarlyMaxDifficulty <= 0 {
		c.EarlyMaxDifficulty = def.EarlyMaxDifficulty
	}
	if c.UncertainLow <= 0 {
		c.UncertainLow = def.UncertainLow
	}
	if c.UncertainHigh <= 0 {
		c.UncertainHigh = def.UncertainHigh
	}
	if c.OccupationConfidence <= 0 {
		c.OccupationConfidence = def.OccupationConfidence
	}
	return c
}
