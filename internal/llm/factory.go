package llm

import (
	"context"
	"fmt"

	"github.com/example/lingua/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware. A nil events repo skips the logging layer
// (useful for tests and one-off tooling).
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base, so each retry
	// attempt lands in the event log.
	if events != nil {
		base = WithLogging(base, events)
	}
	return WithRetry(base, cfg.Retry), nil
}
