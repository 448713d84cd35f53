package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware (caller → retry → logging → base).
func NewProvider(ctx context.Context, cfg Config, recorder EventRecorder, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	case "":
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("no collaborator configured")}
	default:
		return nil, fmt.Errorf("unknown collaborator provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, recorder, log)
	return WithRetry(logged, cfg.Retry), nil
}
