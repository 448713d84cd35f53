// Package catalog resolves free-form skill references — IDs, labels or
// loose phrases coming back from free-text analysis — to canonical
// catalog entries.
package catalog

import "strings"

// Entry is a canonical skill: stable ID plus display label.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Resolver resolves a skill reference to a canonical entry. The engine
// consumes this interface; the static implementation below is the
// default provider.
type Resolver interface {
	ResolveSkill(ref string) (Entry, bool)
}

// Static is an in-memory Resolver over a fixed entry list. The zero
// value is not usable; construct with NewStatic.
type Static struct {
	entries []Entry
	byID    map[string]int
	byLabel map[string]int
}

// NewStatic builds a resolver over the given entries. When entries is
// nil the built-in skill catalog is used.
func NewStatic(entries []Entry) *Static {
	if entries == nil {
		entries = seedSkills
	}
	s := &Static{
		entries: entries,
		byID:    make(map[string]int, len(entries)),
		byLabel: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		s.byID[e.ID] = i
		s.byLabel[normalize(e.Label)] = i
	}
	return s
}

// ResolveSkill resolves ref by exact ID, then exact label, then
// substring containment, then token overlap. Matching is
// case-insensitive. The first matching entry in catalog order wins, so
// resolution is deterministic.
func (s *Static) ResolveSkill(ref string) (Entry, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Entry{}, false
	}

	if i, ok := s.byID[ref]; ok {
		return s.entries[i], true
	}

	norm := normalize(ref)
	if i, ok := s.byID[norm]; ok {
		return s.entries[i], true
	}
	if i, ok := s.byLabel[norm]; ok {
		return s.entries[i], true
	}

	// Substring fallback, either direction.
	for _, e := range s.entries {
		el := normalize(e.Label)
		if strings.Contains(el, norm) || strings.Contains(norm, el) {
			return e, true
		}
	}

	// Token overlap: a reference like "listening to patients actively"
	// still lands on "Active listening".
	refTokens := tokens(norm)
	if len(refTokens) == 0 {
		return Entry{}, false
	}
	best := -1
	bestOverlap := 0
	for i, e := range s.entries {
		overlap := overlapCount(refTokens, tokens(normalize(e.Label)))
		if overlap > bestOverlap {
			best, bestOverlap = i, overlap
		}
	}
	if best >= 0 {
		return s.entries[best], true
	}
	return Entry{}, false
}

// Label returns the display label for a skill ID, or the ID itself when
// unknown.
func (s *Static) Label(id string) string {
	if i, ok := s.byID[id]; ok {
		return s.entries[i].Label
	}
	return id
}

// normalize lowercases and collapses separators so "Active Listening",
// "active-listening" and "active_listening" compare equal.
func normalize(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.NewReplacer("_", " ", "-", " ").Replace(v)
	return strings.Join(strings.Fields(v), " ")
}

// tokens splits a normalized string into match-worthy tokens. Short
// stopword-like tokens are skipped.
func tokens(v string) []string {
	var out []string
	for _, t := range strings.Fields(v) {
		if len(t) >= 4 {
			out = append(out, t)
		}
	}
	return out
}

func overlapCount(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	n := 0
	for _, t := range b {
		if set[t] {
			n++
		}
	}
	return n
}
