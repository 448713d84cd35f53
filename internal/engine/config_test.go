package engine

import "testing"

func TestConfigWithDefaults_BackfillsZeroFields(t *testing.T) {
	got := Config{}.withDefaults()
	if got != DefaultConfig() {
		t.Fatalf("zero config should resolve to defaults, got %+v", got)
	}
}

func TestConfigWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{MaxQuestions: 20, UncertainLow: 0.05}
	got := cfg.withDefaults()
	if got.MaxQuestions != 20 {
		t.Fatalf("expected MaxQuestions 20, got %d", got.MaxQuestions)
	}
	if got.UncertainLow != 0.05 {
		t.Fatalf("expected UncertainLow 0.05, got %v", got.UncertainLow)
	}
	// Untouched fields still pick up defaults.
	if got.Stage1Minimum != DefaultConfig().Stage1Minimum {
		t.Fatalf("expected default Stage1Minimum, got %d", got.Stage1Minimum)
	}
}

func TestConfigWithDefaults_ZeroMeansDefault(t *testing.T) {
	// A zero tuning is not representable: it reads as "use the
	// default", matching the Config doc contract.
	cfg := Config{UncertainLow: 0}
	if got := cfg.withDefaults().UncertainLow; got != DefaultConfig().UncertainLow {
		t.Fatalf("expected default UncertainLow, got %v", got)
	}
}
