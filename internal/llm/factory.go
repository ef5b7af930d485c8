package llm

import (
	"context"
	"fmt"

	"github.com/baish/quirkeval/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging and, when retries are enabled, retry middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var p Provider = WithLogging(base, eventRepo)
	if cfg.Retry.MaxAttempts > 1 {
		p = WithRetry(p, cfg.Retry)
	}
	return p, nil
}

// NewJudgeProvider creates the Provider used for judge calls. It shares
// credentials and backend with the target config; only the model differs
// when JudgeModel is set.
func NewJudgeProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if cfg.JudgeModel != "" {
		cfg = cfg.WithModel(cfg.JudgeModel)
	}
	return NewProvider(ctx, cfg, eventRepo)
}
