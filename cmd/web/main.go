package main

import (
	"context"
	"encoding/gob"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/myrjola/smartcop/internal/ai"
	"github.com/myrjola/smartcop/internal/bhashini"
	"github.com/myrjola/smartcop/internal/broker"
	"github.com/myrjola/smartcop/internal/chatbot"
	"github.com/myrjola/smartcop/internal/config"
	"github.com/myrjola/smartcop/internal/drafting"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/extract"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/logging"
	"github.com/myrjola/smartcop/internal/models"
	"github.com/myrjola/smartcop/internal/pprofserver"
	"github.com/myrjola/smartcop/internal/repositories"
	"github.com/myrjola/smartcop/internal/speech"
	"github.com/myrjola/smartcop/internal/sqlite"
	"github.com/myrjola/smartcop/internal/telemetry"
	"github.com/myrjola/smartcop/internal/translate"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"
)

type application struct {
	logger         *slog.Logger
	cfg            *config.Config
	registry       *fields.Registry
	drafts         *drafting.Service
	firs           *repositories.FIRRepository
	activities     *repositories.ActivityRepository
	events         *broker.Broker[models.FIR]
	chatbot        *chatbot.Bot
	sessionManager *scs.SessionManager
}

func init() {
	gob.Register([]ai.Message{})
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	cfg, err := config.Load(lookupEnv)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	var traceSink io.Writer
	if cfg.TraceStdout {
		traceSink = os.Stdout
	}
	var shutdownTracer func(context.Context) error
	if shutdownTracer, err = telemetry.InitTracer(ctx, "smartcop", traceSink, logger); err != nil {
		return errors.Wrap(err, "init tracer")
	}
	defer func() {
		if shutdownErr := shutdownTracer(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "failed to shut down tracer", errors.SlogError(shutdownErr))
		}
	}()

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(ctx, cfg.PprofAddr, logger)

	var registry *fields.Registry
	if registry, err = fields.Load(cfg.FieldsFile); err != nil {
		return errors.Wrap(err, "load field registry")
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, cfg.SqliteURL, logger); err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "failed to close database", errors.SlogError(closeErr))
		}
	}()

	events := broker.NewBroker[models.FIR](16) //nolint:mnd // a few saves per listener in flight
	go events.Start()
	defer events.Stop()

	firs := repositories.NewFIRRepository(db, events, logger)
	activities := repositories.NewActivityRepository(db, logger)

	httpClient := &http.Client{ //nolint:exhaustruct // provider calls are bounded by contexts
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	llm, closeLLM, err := ai.NewBackend(ctx, cfg, httpClient)
	if err != nil {
		return errors.Wrap(err, "configure language model")
	}
	defer closeLLM()
	bhashiniClient := bhashini.New(cfg.BhashiniURL, cfg.BhashiniUser, cfg.BhashiniKey, httpClient)

	providers := []translate.Provider{translate.NewLLMProvider(llm)}
	if cfg.BhashiniEnabled() {
		providers = append(providers, translate.NewBhashiniProvider(bhashiniClient))
	}
	providers = append(providers, translate.NewMyMemoryProvider(cfg.MyMemoryURL, cfg.MyMemoryEmail, httpClient))
	relay := translate.NewRelay(logger, cfg.ProviderTimeout, providers...)

	synthesizer := speech.NewChain(logger, cfg.ProviderTimeout)
	if openAI, ok := llm.(*ai.Client); ok {
		synthesizer.With("openai", speech.NewOpenAISynthesizer(openAI))
	}
	if cfg.BhashiniEnabled() {
		synthesizer.With("bhashini", speech.NewBhashiniSynthesizer(bhashiniClient))
	}

	drafts := drafting.NewService(drafting.Dependencies{
		Engine:      extract.New(registry),
		Translator:  relay,
		Store:       firs,
		Journal:     activities,
		Recognizer:  speech.NewBhashiniRecognizer(bhashiniClient, logger),
		Synthesizer: synthesizer,
		Logger:      logger,
		Now:         time.Now,
	}, cfg.SessionTTL)
	go drafts.StartJanitor(ctx)

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour) //nolint:mnd // daily
	sessionManager.Lifetime = cfg.SessionTTL
	sessionManager.Cookie.Name = "smartcop_session"
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	app := application{
		logger:         logger,
		cfg:            cfg,
		registry:       registry,
		drafts:         drafts,
		firs:           firs,
		activities:     activities,
		events:         events,
		chatbot:        chatbot.New(llm, logger),
		sessionManager: sessionManager,
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "configured providers",
		slog.String("llm", cfg.LLMProvider),
		slog.Any("translation", relay.Providers()),
		slog.Bool("bhashini", cfg.BhashiniEnabled()))

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       logging.ParseLevel(os.Getenv("SMARTCOP_LOG_LEVEL")),
		ReplaceAttr: nil,
	})))

	// A missing .env file is fine, the environment may be configured otherwise.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failed to load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
