// Package llm abstracts the generative collaborator behind a single
// Provider interface so the quiz engine can be driven by Anthropic,
// OpenAI-compatible or Gemini backends — or a deterministic mock in
// tests — without caring which.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the collaborator abstraction. Consumers call Generate
// with a Request and receive structured JSON.
type Provider interface {
	// Generate sends a prompt and returns a structured response. When
	// the request carries a Schema the provider uses its native
	// structured-output mechanism and the returned Content is the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes a single collaborator call.
type Request struct {
	// System sets the collaborator's role and constraints.
	System string

	// Messages is the conversation. Scenario generation and answer
	// analysis are both single-turn, so this is usually one user
	// message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. Nil means
	// the raw text is returned as-is.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the collaborator must satisfy.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "scenario-question".
	Name string

	// Description guides the collaborator's generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the collaborator's output.
type Response struct {
	// Content is the generated output, validated against the request
	// schema when one was set.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
