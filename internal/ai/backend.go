package ai

import (
	"context"
	"github.com/myrjola/smartcop/internal/config"
	"github.com/myrjola/smartcop/internal/errors"
	"net/http"
)

// Backend is implemented by every language model client.
type Backend interface {
	Completer
	Chatter
}

// NewBackend returns the language model selected with SMARTCOP_LLM_PROVIDER and a func releasing it.
//
// OpenRouter without an API key and the "none" provider yield [Disabled] so that callers fall back to their
// offline behavior. The OpenAI-compatible backend is a [*Client], which also synthesizes speech.
func NewBackend(ctx context.Context, cfg *config.Config, httpClient *http.Client) (Backend, func(), error) {
	noop := func() {}
	switch cfg.LLMProvider {
	case config.LLMProviderGemini:
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, errors.Wrap(err, "new gemini client")
		}
		return client, func() { _ = client.Close() }, nil
	case config.LLMProviderOpenRouter:
		if cfg.LLMAPIKey == "" {
			return Disabled{}, noop, nil
		}
		return NewClient(Options{
			APIKey:     cfg.LLMAPIKey,
			BaseURL:    cfg.LLMBaseURL,
			Model:      cfg.LLMModel,
			TTSModel:   cfg.TTSModel,
			Referer:    cfg.AppReferer,
			Title:      cfg.AppTitle,
			HTTPClient: httpClient,
		}), noop, nil
	default:
		return Disabled{}, noop, nil
	}
}
