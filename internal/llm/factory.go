package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/wisdomquest/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry,
// per-attempt timeout and event logging middleware. eventRepo may be nil to skip event recording.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	log.Info("llm provider ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", base.ModelID()))

	// caller → retry → timeout → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo, log)
	return WithRetry(WithAttemptTimeout(logged, cfg.Timeout), cfg.Retry, log), nil
}
