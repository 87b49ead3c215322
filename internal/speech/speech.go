// Package speech recognises and synthesises speech in the supported locales.
package speech

import (
	"context"
	"github.com/myrjola/smartcop/internal/bhashini"
	"github.com/myrjola/smartcop/internal/errors"
	"log/slog"
	"strings"
)

// Result is a single recognition event. Interim results may be revised later; only final results are committed.
type Result struct {
	Transcript string         `json:"transcript"`
	Final      bool           `json:"final"`
	Err        *ProviderError `json:"error,omitempty"`
}

// Recognizer streams recognition results for a recording. The channel is closed when recognition ends.
type Recognizer interface {
	Recognize(ctx context.Context, audio []byte, locale string) (<-chan Result, error)
}

// BhashiniRecognizer runs Bhashini ASR over a complete recording and emits one final result.
type BhashiniRecognizer struct {
	client *bhashini.Client
	logger *slog.Logger
}

func NewBhashiniRecognizer(client *bhashini.Client, logger *slog.Logger) *BhashiniRecognizer {
	return &BhashiniRecognizer{client: client, logger: logger.With("source", "BhashiniRecognizer")}
}

func (r *BhashiniRecognizer) Recognize(ctx context.Context, audio []byte, locale string) (<-chan Result, error) {
	if !r.client.Enabled() {
		return nil, errors.Wrap(bhashini.ErrNotConfigured, "recognize")
	}
	if len(audio) == 0 {
		return nil, &ProviderError{Kind: KindNoSpeech, Code: "empty-audio"}
	}
	results := make(chan Result, 1)
	go func() {
		defer close(results)
		transcript, err := r.client.Transcribe(ctx, audio, locale)
		var result Result
		switch {
		case err != nil:
			r.logger.LogAttrs(ctx, slog.LevelWarn, "speech recognition failed", errors.SlogError(err))
			result = Result{Transcript: "", Final: true, Err: &ProviderError{Kind: KindNetwork, Code: "bhashini"}}
		case strings.TrimSpace(transcript) == "":
			result = Result{Transcript: "", Final: true, Err: &ProviderError{Kind: KindNoSpeech, Code: "no-speech"}}
		default:
			result = Result{Transcript: strings.TrimSpace(transcript), Final: true, Err: nil}
		}
		select {
		case results <- result:
		case <-ctx.Done():
		}
	}()
	return results, nil
}
