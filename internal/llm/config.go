package llm

import (
	"os"
	"time"
)

// Config holds collaborator configuration.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini" or
	// "mock". Empty means no collaborator is configured; the engine
	// then runs on the catalog question path only.
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single collaborator call including retries. The
	// quiz must never stall on a slow backend.
	Timeout time.Duration
}

// Configured reports whether a real collaborator backend is selected.
func (c Config) Configured() bool {
	return c.Provider != ""
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL switches
// the same adapter to OpenRouter or any OpenAI-compatible API.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults and no backend
// selected.
func DefaultConfig() Config {
	return Config{
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// ConfigFromEnv builds a Config from SKILLCOMPASS_* environment
// variables, falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SKILLCOMPASS_LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("SKILLCOMPASS_ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	} else if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("SKILLCOMPASS_ANTHROPIC_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}
	if v := os.Getenv("SKILLCOMPASS_OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("SKILLCOMPASS_OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("SKILLCOMPASS_OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}
	if v := os.Getenv("SKILLCOMPASS_GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("SKILLCOMPASS_GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("SKILLCOMPASS_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// resolveModel maps a friendly model name to a provider model ID. An
// unrecognized name is passed through unchanged so new models work
// without a code change.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
