package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the JSON payload out of collaborator text that may
// arrive wrapped in incidental formatting: markdown code fences, a
// leading "Here is the ..." sentence, trailing commentary. Returns
// ErrInvalidResponse when no JSON value can be located.
func ExtractJSON(raw json.RawMessage) (json.RawMessage, error) {
	s := strings.TrimSpace(string(raw))

	// Strip a fenced block if present, with or without a language tag.
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if j := strings.Index(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		s = strings.TrimSpace(rest)
	}

	if json.Valid([]byte(s)) {
		return json.RawMessage(s), nil
	}

	// Fall back to the outermost braced or bracketed span.
	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(s, pair[0])
		end := strings.LastIndexByte(s, pair[1])
		if start >= 0 && end > start {
			candidate := s[start : end+1]
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate), nil
			}
		}
	}

	return nil, &ErrInvalidResponse{
		Content: raw,
		Err:     fmt.Errorf("no JSON payload found in response"),
	}
}
