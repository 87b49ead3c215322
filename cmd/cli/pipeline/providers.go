// Package pipeline has commands that run a single stage of the drafting pipeline against the configured providers.
package pipeline

import (
	"context"
	"github.com/myrjola/smartcop/internal/ai"
	"github.com/myrjola/smartcop/internal/bhashini"
	"github.com/myrjola/smartcop/internal/config"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/logging"
	"github.com/myrjola/smartcop/internal/speech"
	"github.com/myrjola/smartcop/internal/translate"
	"github.com/spf13/cobra"
	"log/slog"
	"net/http"
	"os"
)

var Group = &cobra.Group{
	ID:    "pipeline",
	Title: "Pipeline stages",
}

// providers are the collaborators built from the SMARTCOP_* environment.
type providers struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpClient *http.Client
	llm        ai.Backend
	release    func()
	bhashini   *bhashini.Client
}

func newProviders(cmd *cobra.Command) (*providers, error) {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, errors.Wrap(err, "verbose flag")
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})))
	httpClient := &http.Client{Timeout: cfg.ProviderTimeout} //nolint:exhaustruct // defaults are fine
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	llm, release, err := ai.NewBackend(ctx, cfg, httpClient)
	if err != nil {
		return nil, errors.Wrap(err, "configure language model")
	}
	return &providers{
		cfg:        cfg,
		logger:     logger,
		httpClient: httpClient,
		llm:        llm,
		release:    release,
		bhashini:   bhashini.New(cfg.BhashiniURL, cfg.BhashiniUser, cfg.BhashiniKey, httpClient),
	}, nil
}

func (p *providers) close() {
	p.release()
}

// relay builds the translation relay in the same provider order as the server.
func (p *providers) relay() *translate.Relay {
	chain := []translate.Provider{translate.NewLLMProvider(p.llm)}
	if p.cfg.BhashiniEnabled() {
		chain = append(chain, translate.NewBhashiniProvider(p.bhashini))
	}
	chain = append(chain, translate.NewMyMemoryProvider(p.cfg.MyMemoryURL, p.cfg.MyMemoryEmail, p.httpClient))
	return translate.NewRelay(p.logger, p.cfg.ProviderTimeout, chain...)
}

func (p *providers) synthesizer() *speech.Chain {
	chain := speech.NewChain(p.logger, p.cfg.ProviderTimeout)
	if openAI, ok := p.llm.(*ai.Client); ok {
		chain.With("openai", speech.NewOpenAISynthesizer(openAI))
	}
	if p.cfg.BhashiniEnabled() {
		chain.With("bhashini", speech.NewBhashiniSynthesizer(p.bhashini))
	}
	return chain
}

func init() {
	for _, cmd := range []*cobra.Command{Translate, Speak} {
		cmd.Flags().BoolP("verbose", "v", false, "log provider attempts to stderr")
	}
}
