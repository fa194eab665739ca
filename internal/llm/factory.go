package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/acumen/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// retry and event-logging middleware.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

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
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from ACUMEN_* env vars, falling
// back to probing the standard provider API key variables.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set ACUMEN_LLM_PROVIDER or a provider API key")
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events)
}
