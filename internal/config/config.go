// Package config holds the runtime configuration shared by the SmartCop binaries.
package config

import (
	"github.com/myrjola/smartcop/internal/envstruct"
	"github.com/myrjola/smartcop/internal/errors"
	"time"
)

// LLM providers selectable with SMARTCOP_LLM_PROVIDER.
const (
	LLMProviderOpenRouter = "openrouter"
	LLMProviderGemini     = "gemini"
	LLMProviderNone       = "none"
)

type Config struct {
	// Addr is the address the HTTP server listens on. Use port 0 for a random port.
	Addr string `env:"SMARTCOP_ADDR" envDefault:"localhost:4000"`
	// PprofAddr enables the pprof server on the loopback interface when set, e.g. ":6060".
	PprofAddr string `env:"SMARTCOP_PPROF_ADDR" envDefault:""`
	// SqliteURL is the path to the SQLite database or ":memory:".
	SqliteURL string `env:"SMARTCOP_SQLITE_URL" envDefault:"./smartcop.sqlite3"`
	LogLevel  string `env:"SMARTCOP_LOG_LEVEL" envDefault:"info"`

	LLMProvider string `env:"SMARTCOP_LLM_PROVIDER" envDefault:"openrouter"`
	// LLMBaseURL points the OpenAI-compatible client at OpenRouter by default.
	LLMBaseURL    string `env:"SMARTCOP_LLM_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	LLMModel      string `env:"SMARTCOP_LLM_MODEL" envDefault:"openai/gpt-4o"`
	LLMAPIKey     string `env:"SMARTCOP_OPENROUTER_API_KEY" envDefault:""`
	GeminiAPIKey  string `env:"SMARTCOP_GEMINI_API_KEY" envDefault:""`
	GeminiModel   string `env:"SMARTCOP_GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	TTSModel      string `env:"SMARTCOP_TTS_MODEL" envDefault:"openai/tts-1-hd"`
	AppReferer    string `env:"SMARTCOP_APP_REFERER" envDefault:"http://localhost:4000"`
	AppTitle      string `env:"SMARTCOP_APP_TITLE" envDefault:"SmartCop AI"`
	BhashiniURL   string `env:"SMARTCOP_BHASHINI_URL" envDefault:"https://meity-auth.ulcacontrib.org"`
	BhashiniUser  string `env:"SMARTCOP_BHASHINI_USER_ID" envDefault:""`
	BhashiniKey   string `env:"SMARTCOP_BHASHINI_API_KEY" envDefault:""`
	MyMemoryURL   string `env:"SMARTCOP_MYMEMORY_URL" envDefault:"https://api.mymemory.translated.net"`
	FieldsFile    string `env:"SMARTCOP_FIELDS_FILE" envDefault:""`
	TraceStdout   bool   `env:"SMARTCOP_TRACE_STDOUT" envDefault:"false"`
	MyMemoryEmail string `env:"SMARTCOP_MYMEMORY_EMAIL" envDefault:""`

	// ProviderTimeout bounds every individual call to a translation, speech or LLM provider.
	ProviderTimeout time.Duration `env:"SMARTCOP_PROVIDER_TIMEOUT" envDefault:"8s"`
	// SessionTTL evicts drafting sessions that have been idle for longer.
	SessionTTL time.Duration `env:"SMARTCOP_SESSION_TTL" envDefault:"12h"`
}

// Load reads the configuration with lookupEnv, which has the same signature as [os.LookupEnv].
func Load(lookupEnv func(string) (string, bool)) (*Config, error) {
	var cfg Config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return nil, errors.Wrap(err, "populate config")
	}
	switch cfg.LLMProvider {
	case LLMProviderOpenRouter, LLMProviderGemini, LLMProviderNone:
	default:
		return nil, errors.Wrap(envstruct.ErrInvalidValue, "unknown LLM provider")
	}
	return &cfg, nil
}

// BhashiniEnabled reports whether Bhashini credentials are configured.
func (c *Config) BhashiniEnabled() bool {
	return c.BhashiniUser != "" && c.BhashiniKey != ""
}
