package speech

import (
	"context"
	"fmt"
	"github.com/myrjola/smartcop/internal/ai"
	"github.com/myrjola/smartcop/internal/bhashini"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/locale"
	"github.com/sashabaranov/go-openai"
	"log/slog"
	"strings"
	"time"
)

// Audio is synthesised speech. When Fallback is set Data is empty and the client speaks Text itself with its own
// speech synthesis using the Lang speech tag.
type Audio struct {
	Data        []byte `json:"-"`
	ContentType string `json:"contentType,omitempty"`
	Provider    string `json:"provider"`
	Text        string `json:"text"`
	Lang        string `json:"lang"`
	Fallback    bool   `json:"fallback"`
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, locale string) (Audio, error)
}

var errEmptyAudio = errors.NewSentinel("empty audio")

// OpenAISynthesizer uses an OpenAI-compatible text-to-speech model.
type OpenAISynthesizer struct {
	client *ai.Client
}

func NewOpenAISynthesizer(client *ai.Client) *OpenAISynthesizer {
	return &OpenAISynthesizer{client: client}
}

// Voice picks the voice for a locale.
func Voice(loc string) openai.SpeechVoice {
	if loc == "hi" {
		return openai.VoiceNova
	}
	return openai.VoiceAlloy
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text, loc string) (Audio, error) {
	data, err := s.client.Speech(ctx, text, Voice(loc))
	if err != nil {
		return Audio{}, errors.Wrap(err, "openai speech") //nolint:exhaustruct // zero on error
	}
	return Audio{
		Data:        data,
		ContentType: "audio/mpeg",
		Provider:    "openai",
		Text:        text,
		Lang:        locale.SpeechTag(loc),
		Fallback:    false,
	}, nil
}

// BhashiniSynthesizer uses Bhashini TTS, which covers the Indian languages.
type BhashiniSynthesizer struct {
	client *bhashini.Client
}

func NewBhashiniSynthesizer(client *bhashini.Client) *BhashiniSynthesizer {
	return &BhashiniSynthesizer{client: client}
}

func (s *BhashiniSynthesizer) Synthesize(ctx context.Context, text, loc string) (Audio, error) {
	data, err := s.client.Synthesize(ctx, text, loc)
	if err != nil {
		return Audio{}, errors.Wrap(err, "bhashini speech") //nolint:exhaustruct // zero on error
	}
	return Audio{
		Data:        data,
		ContentType: "audio/wav",
		Provider:    "bhashini",
		Text:        text,
		Lang:        locale.SpeechTag(loc),
		Fallback:    false,
	}, nil
}

// Local instructs the client to use its own speech synthesis. It never fails.
func Local(text, loc string) Audio {
	return Audio{
		Data:        nil,
		ContentType: "",
		Provider:    "local",
		Text:        text,
		Lang:        locale.SpeechTag(loc),
		Fallback:    true,
	}
}

type namedSynthesizer struct {
	name  string
	synth Synthesizer
}

// Chain tries synthesizers in order and falls back to [Local].
type Chain struct {
	synths  []namedSynthesizer
	timeout time.Duration
	logger  *slog.Logger
}

func NewChain(logger *slog.Logger, timeout time.Duration) *Chain {
	return &Chain{
		synths:  nil,
		timeout: timeout,
		logger:  logger.With("source", "SpeechChain"),
	}
}

// With appends a synthesizer to the chain.
func (c *Chain) With(name string, s Synthesizer) *Chain {
	c.synths = append(c.synths, namedSynthesizer{name: name, synth: s})
	return c
}

// Synthesize implements [Synthesizer]. The error is always nil.
func (c *Chain) Synthesize(ctx context.Context, text, loc string) (Audio, error) {
	if strings.TrimSpace(text) == "" {
		return Local(text, loc), nil
	}
	for _, s := range c.synths {
		audio, err := c.attempt(ctx, s.synth, text, loc)
		if err == nil {
			return audio, nil
		}
		c.logger.LogAttrs(ctx, slog.LevelDebug, "speech synthesizer failed",
			slog.String("synthesizer", s.name), errors.SlogError(err))
	}
	return Local(text, loc), nil
}

func (c *Chain) attempt(ctx context.Context, s Synthesizer, text, loc string) (_ Audio, err error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.New("synthesizer panicked", slog.String("panic", fmt.Sprint(rec)))
		}
	}()
	var audio Audio
	if audio, err = s.Synthesize(ctx, text, loc); err != nil {
		return Audio{}, err //nolint:exhaustruct // zero on error
	}
	if len(audio.Data) == 0 && !audio.Fallback {
		return Audio{}, errEmptyAudio //nolint:exhaustruct // zero on error
	}
	return audio, nil
}
