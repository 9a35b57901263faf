package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"codeberg.org/snonux/htmltrans/internal/config"
)

// ErrEmptyResponse is returned when the API answers without any translated text
var ErrEmptyResponse = errors.New("no translation returned")

// Client translates a whole document into the named target language
type Client interface {
	// Translate returns the translated document or an error; it never returns
	// an empty string without an error
	Translate(ctx context.Context, content, language string) (string, error)

	// Name returns the backend name
	Name() string
}

// NewClient creates the translation client configured by cfg, wrapped in a
// circuit breaker when cfg.BreakerThreshold is positive
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w for provider %s", config.ErrMissingCredential, cfg.Provider)
	}

	var client Client
	var err error
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err = NewGeminiClient(ctx, &GeminiConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
	case config.ProviderOpenAI:
		client, err = NewOpenAIClient(&OpenAIConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if cfg.BreakerThreshold > 0 {
		client = NewBreaker(client, cfg.BreakerThreshold, cfg.BreakerCooldown, func(name, from, to string) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
		})
	}
	return client, nil
}
