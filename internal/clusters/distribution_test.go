package clusters

import (
	"math"
	"testing"
)

func TestUniform_SumsToOne(t *testing.T) {
	d := Uniform()
	if len(d) != Count() {
		t.Fatalf("len = %d, want %d", len(d), Count())
	}
	if diff := math.Abs(d.Sum() - 1.0); diff > SumTolerance {
		t.Errorf("sum = %v, want 1.0", d.Sum())
	}
}

func TestNormalize(t *testing.T) {
	d := Distribution{"a": 2, "b": 6}
	d.Normalize()
	if d["a"] != 0.25 || d["b"] != 0.75 {
		t.Errorf("normalized = %v, want a=0.25 b=0.75", d)
	}
}

func TestNormalize_ZeroMassUnchanged(t *testing.T) {
	d := Distribution{"a": 0, "b": 0}
	d.Normalize()
	if d["a"] != 0 || d["b"] != 0 {
		t.Errorf("zero-mass distribution changed: %v", d)
	}
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name string
		d    Distribution
		want float64
	}{
		{"certain", Distribution{"a": 1, "b": 0}, 0},
		{"two-way even", Distribution{"a": 0.5, "b": 0.5}, 1},
		{"four-way even", Distribution{"a": 0.25, "b": 0.25, "c": 0.25, "d": 0.25}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Entropy(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Entropy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUniform_EntropyIsMaximal(t *testing.T) {
	want := math.Log2(float64(Count()))
	if got := Uniform().Entropy(); math.Abs(got-want) > 1e-12 {
		t.Errorf("uniform entropy = %v, want %v", got, want)
	}
}

func TestTop(t *testing.T) {
	d := Distribution{
		"tech-solver":        0.5,
		"helper-people":      0.3,
		"analyst-researcher": 0.2,
	}
	top := d.Top(2)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[0].ID != "tech-solver" || top[1].ID != "helper-people" {
		t.Errorf("order = %s, %s", top[0].ID, top[1].ID)
	}
	if top[0].Label != "Tech Solver" {
		t.Errorf("label = %q, want catalog label", top[0].Label)
	}
}

func TestTop_TiesBrokenByID(t *testing.T) {
	d := Distribution{"helper-people": 0.5, "care-support": 0.5}
	top := d.Top(2)
	if top[0].ID != "care-support" {
		t.Errorf("first = %s, want care-support (ID order on tie)", top[0].ID)
	}
}

func TestUncertain(t *testing.T) {
	d := Uniform() // 0.125 each, inside the (0.1, 0.6) band
	ids := d.Uncertain(0.1, 0.6)
	if len(ids) != Count() {
		t.Errorf("uncertain count = %d, want %d", len(ids), Count())
	}

	d = Distribution{"tech-solver": 0.9, "helper-people": 0.1}
	if got := d.Uncertain(0.15, 0.6); len(got) != 0 {
		t.Errorf("uncertain = %v, want none", got)
	}
}

func TestClone_Independent(t *testing.T) {
	d := Uniform()
	c := d.Clone()
	c["tech-solver"] = 0.9
	if d["tech-solver"] == 0.9 {
		t.Error("Clone shares storage with original")
	}
}

func TestValidate_SeedData(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("seed cluster data invalid: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	bad := []Cluster{
		{ID: "x", Label: "X", CoreSkills: []string{"a", "a"}},
		{ID: "x", Label: "Y", CoreSkills: []string{"b"}},
	}
	if err := validateClusters(bad); err == nil {
		t.Error("want error for duplicate IDs and skills")
	}
}
