package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-answer",
	Description: "Test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required":             []any{"answer", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	got, err := validateResponse(testSchema, json.RawMessage(`{"answer":"yes","score":0.8}`))
	if err != nil {
		t.Fatalf("validateResponse() error: %v", err)
	}
	if string(got) != `{"answer":"yes","score":0.8}` {
		t.Errorf("content = %s", got)
	}
}

func TestValidateResponse_FencedContent(t *testing.T) {
	raw := json.RawMessage("```json\n{\"answer\":\"yes\",\"score\":0.5}\n```")
	got, err := validateResponse(testSchema, raw)
	if err != nil {
		t.Fatalf("validateResponse() error: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("extracted content not JSON: %v", err)
	}
}

func TestValidateResponse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing field", `{"answer":"yes"}`},
		{"wrong type", `{"answer":1,"score":0.5}`},
		{"out of range", `{"answer":"yes","score":2}`},
		{"extra field", `{"answer":"yes","score":0.5,"extra":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateResponse(testSchema, json.RawMessage(tt.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Errorf("error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaPassesThrough(t *testing.T) {
	raw := json.RawMessage("plain text, not JSON")
	got, err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("validateResponse(nil) error: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("content changed: %s", got)
	}
}
