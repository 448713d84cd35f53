package clusters

import (
	"math"
	"sort"
)

// SumTolerance is the allowed deviation of a distribution's probability
// mass from 1.0.
const SumTolerance = 1e-9

// Distribution is a probability mass function over cluster IDs.
// After every posterior update the probabilities sum to 1 within
// SumTolerance.
type Distribution map[string]float64

// Uniform returns a distribution assigning equal probability to every
// cluster in the model.
func Uniform() Distribution {
	d := make(Distribution, Count())
	p := 1.0 / float64(Count())
	for _, id := range idx.ids {
		d[id] = p
	}
	return d
}

// Clone returns an independent copy of the distribution.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for id, p := range d {
		out[id] = p
	}
	return out
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var s float64
	for _, p := range d {
		s += p
	}
	return s
}

// Normalize rescales the distribution in place so it sums to 1.
// A zero-mass distribution is left unchanged.
func (d Distribution) Normalize() {
	s := d.Sum()
	if s <= 0 {
		return
	}
	for id := range d {
		d[id] /= s
	}
}

// Entropy returns the Shannon entropy in bits. Zero-probability
// clusters contribute nothing.
func (d Distribution) Entropy() float64 {
	var h float64
	for _, p := range d {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// Ranked is one entry of a ranked distribution view.
type Ranked struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Probability float64 `json:"probability"`
}

// Top returns the k most probable clusters with their catalog labels.
// Ties are broken by ID for deterministic output.
func (d Distribution) Top(k int) []Ranked {
	out := make([]Ranked, 0, len(d))
	for id, p := range d {
		r := Ranked{ID: id, Probability: p}
		if c, ok := idx.byID[id]; ok {
			r.Label = c.Label
			r.Description = c.Description
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Probability != out[j].Probability {
			return out[i].Probability > out[j].Probability
		}
		return out[i].ID < out[j].ID
	})
	if k < len(out) {
		out = out[:k]
	}
	return out
}

// Uncertain returns the IDs of clusters whose probability lies strictly
// inside the (lo, hi) band, in canonical cluster order. These are the
// clusters worth spending questions on.
func (d Distribution) Uncertain(lo, hi float64) []string {
	var out []string
	for _, id := range idx.ids {
		if p := d[id]; p > lo && p < hi {
			out = append(out, id)
		}
	}
	return out
}
