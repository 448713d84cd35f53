package catalog

import "testing"

func TestResolveSkill_ExactID(t *testing.T) {
	r := NewStatic(nil)
	e, ok := r.ResolveSkill("active-listening")
	if !ok || e.ID != "active-listening" {
		t.Errorf("ResolveSkill(active-listening) = %+v, %v", e, ok)
	}
}

func TestResolveSkill_ExactLabel(t *testing.T) {
	r := NewStatic(nil)
	tests := []string{"Active listening", "ACTIVE LISTENING", "  active_listening  "}
	for _, ref := range tests {
		e, ok := r.ResolveSkill(ref)
		if !ok || e.ID != "active-listening" {
			t.Errorf("ResolveSkill(%q) = %+v, %v", ref, e, ok)
		}
	}
}

func TestResolveSkill_Substring(t *testing.T) {
	r := NewStatic(nil)
	e, ok := r.ResolveSkill("strong public speaking skills")
	if !ok || e.ID != "public-speaking" {
		t.Errorf("ResolveSkill(substring) = %+v, %v", e, ok)
	}
}

func TestResolveSkill_TokenOverlap(t *testing.T) {
	r := NewStatic(nil)
	e, ok := r.ResolveSkill("listening actively to patients")
	if !ok || e.ID != "active-listening" {
		t.Errorf("ResolveSkill(token overlap) = %+v, %v", e, ok)
	}
}

func TestResolveSkill_NotFound(t *testing.T) {
	r := NewStatic(nil)
	tests := []string{"", "   ", "underwater basket weaving"}
	for _, ref := range tests {
		if e, ok := r.ResolveSkill(ref); ok {
			t.Errorf("ResolveSkill(%q) = %+v, want not found", ref, e)
		}
	}
}

func TestResolveSkill_Deterministic(t *testing.T) {
	r := NewStatic(nil)
	first, ok := r.ResolveSkill("design")
	if !ok {
		t.Fatal("design did not resolve")
	}
	for range 10 {
		e, _ := r.ResolveSkill("design")
		if e.ID != first.ID {
			t.Fatalf("resolution not deterministic: %s vs %s", e.ID, first.ID)
		}
	}
}

func TestLabel(t *testing.T) {
	r := NewStatic(nil)
	if got := r.Label("data-analysis"); got != "Data analysis" {
		t.Errorf("Label = %q", got)
	}
	if got := r.Label("mystery-skill"); got != "mystery-skill" {
		t.Errorf("unknown Label = %q, want ID fallback", got)
	}
}

func TestNewStatic_CustomEntries(t *testing.T) {
	r := NewStatic([]Entry{{ID: "x", Label: "X Ray Vision"}})
	if e, ok := r.ResolveSkill("x ray"); !ok || e.ID != "x" {
		t.Errorf("custom entry lookup = %+v, %v", e, ok)
	}
	if _, ok := r.ResolveSkill("debugging"); ok {
		t.Error("built-in catalog leaked into custom resolver")
	}
}
