// Package translate normalises field values into a canonical locale through an ordered chain of translation
// providers.
//
// The relay never fails. When every provider fails the original text is returned and marked degraded.
package translate

import (
	"context"
	"fmt"
	"github.com/myrjola/smartcop/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"log/slog"
	"strings"
	"time"
)

var (
	// ErrUnavailable is logged when every provider has failed.
	ErrUnavailable = errors.NewSentinel("translation unavailable")
	// ErrEmptyTranslation counts an empty provider result as a failure.
	ErrEmptyTranslation = errors.NewSentinel("empty translation")
	errPanic            = errors.NewSentinel("provider panicked")
)

// Provider translates text between two locale codes.
type Provider interface {
	Name() string
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Translation is the outcome of a relay call.
type Translation struct {
	Text string `json:"text"`
	// Provider names the provider that produced Text. Empty when no provider was consulted or all failed.
	Provider string `json:"provider,omitempty"`
	Degraded bool   `json:"degraded"`
}

type Relay struct {
	providers []Provider
	timeout   time.Duration
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewRelay creates a relay trying providers in the given order. Each provider call is bounded by timeout when it
// is positive.
func NewRelay(logger *slog.Logger, timeout time.Duration, providers ...Provider) *Relay {
	return &Relay{
		providers: providers,
		timeout:   timeout,
		logger:    logger.With("source", "TranslationRelay"),
		tracer:    otel.Tracer("github.com/myrjola/smartcop/internal/translate"),
	}
}

// Providers lists the configured provider names in order.
func (r *Relay) Providers() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	return names
}

// Translate translates text from source to target.
func (r *Relay) Translate(ctx context.Context, text, source, target string) Translation {
	if source == target || strings.TrimSpace(text) == "" {
		return Translation{Text: text, Provider: "", Degraded: false}
	}

	ctx, span := r.tracer.Start(ctx, "translate", trace.WithAttributes(
		attribute.String("translate.source", source),
		attribute.String("translate.target", target),
	))
	defer span.End()

	var errs []error
	for _, p := range r.providers {
		translated, err := r.attempt(ctx, p, text, source, target)
		if err != nil {
			r.logger.LogAttrs(ctx, slog.LevelDebug, "translation provider failed",
				slog.String("provider", p.Name()), errors.SlogError(err))
			errs = append(errs, err)
			continue
		}
		span.SetAttributes(attribute.String("translate.provider", p.Name()))
		return Translation{Text: translated, Provider: p.Name(), Degraded: false}
	}

	err := errors.Wrap(ErrUnavailable, "all providers failed",
		slog.String("from", source), slog.String("to", target), slog.Int("providers", len(r.providers)))
	if joined := errors.Join(errs...); joined != nil {
		err = errors.Join(err, joined)
	}
	span.SetStatus(codes.Error, ErrUnavailable.Error())
	r.logger.LogAttrs(ctx, slog.LevelWarn, "translation degraded to original text", errors.SlogError(err))
	return Translation{Text: text, Provider: "", Degraded: true}
}

// attempt isolates a single provider call so that errors, empty results and panics never escape the relay.
func (r *Relay) attempt(ctx context.Context, p Provider, text, source, target string) (_ string, err error) {
	ctx, span := r.tracer.Start(ctx, "translate."+p.Name())
	defer span.End()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Wrap(errPanic, "recover", slog.String("provider", p.Name()),
				slog.String("panic", fmt.Sprint(rec)))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "provider failed")
		}
	}()

	var translated string
	if translated, err = p.Translate(ctx, text, source, target); err != nil {
		return "", errors.Wrap(err, "translate", slog.String("provider", p.Name()))
	}
	if translated = strings.TrimSpace(translated); translated == "" {
		return "", errors.Wrap(ErrEmptyTranslation, "translate", slog.String("provider", p.Name()))
	}
	return translated, nil
}
