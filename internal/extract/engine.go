// Package extract pulls field values out of free-form utterances using the patterns of the field registry.
package extract

import (
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/fields"
	"log/slog"
	"strings"
	"unicode"
)

// ErrNoMatch is returned when a non-empty utterance yields no value for the field.
var ErrNoMatch = errors.NewSentinel("no match extracted")

// Engine extracts values for the fields of a registry. It has no mutable state and is safe for concurrent use.
type Engine struct {
	registry *fields.Registry
}

func New(registry *fields.Registry) *Engine {
	return &Engine{registry: registry}
}

// Registry returns the field registry the engine extracts with.
func (e *Engine) Registry() *fields.Registry {
	return e.registry
}

// ExtractField extracts the value for key from rawText.
//
// An empty or blank rawText yields "" and no error, meaning there is nothing to update. When the field pattern does
// not match a structured field, leading possessive and copula words are stripped and the remainder is used.
// A non-empty rawText that still yields nothing returns [ErrNoMatch].
func (e *Engine) ExtractField(rawText string, key fields.Key) (string, error) {
	def, err := e.registry.Lookup(key)
	if err != nil {
		return "", err //nolint:wrapcheck // callers match on the registry error
	}
	text := strings.TrimSpace(rawText)
	if text == "" {
		return "", nil
	}

	if key == fields.Witnesses && isNegativeOnly(text) {
		return noWitnesses, nil
	}

	var candidate string
	if m := def.Pattern.FindStringSubmatch(text); m != nil {
		if candidate = strings.TrimSpace(m[1]); candidate == "" {
			return "", errors.Wrap(ErrNoMatch, "empty capture", slog.String("field", string(key)))
		}
	} else if !def.FreeText {
		candidate = stripFillers(text)
	}

	value := refine(key, candidate, text)
	if value == "" {
		return "", errors.Wrap(ErrNoMatch, "nothing left after refinement", slog.String("field", string(key)))
	}
	return value, nil
}

// Extraction is the result of full-text extraction.
type Extraction struct {
	Fields map[fields.Key]string `json:"fields"`
	Count  int                   `json:"count"`
}

// ExtractAll runs every structured field pattern independently over rawText.
//
// Free-text fields are skipped because their pattern matches any input. Matches may overlap. Each captured value is
// refined on its own, without looking at the rest of the text.
func (e *Engine) ExtractAll(rawText string) Extraction {
	result := Extraction{Fields: map[fields.Key]string{}, Count: 0}
	text := strings.TrimSpace(rawText)
	if text == "" {
		return result
	}
	for _, def := range e.registry.Definitions() {
		if def.FreeText {
			continue
		}
		m := def.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		captured := strings.TrimSpace(m[1])
		if value := refine(def.Key, captured, captured); value != "" {
			result.Fields[def.Key] = value
		}
	}
	result.Count = len(result.Fields)
	return result
}

// fillers are leading possessive and copula words dropped when a structured pattern does not match.
var fillers = map[string]struct{}{
	"my": {}, "the": {}, "is": {}, "it": {}, "mera": {}, "meri": {}, "mere": {},
	"मेरा": {}, "मेरी": {}, "मेरे": {}, "यह": {}, "है": {},
	"আমার": {}, "నా": {}, "माझे": {}, "माझा": {}, "माझी": {}, "என்": {}, "என்னுடைய": {},
	"મારું": {}, "મારી": {}, "મારો": {}, "میرا": {}, "میری": {}, "ہے": {}, "ನನ್ನ": {}, "എന്റെ": {},
	"ମୋର": {}, "ਮੇਰਾ": {}, "ਮੇਰੀ": {}, "ਹੈ": {}, "মোৰ": {},
}

// stripFillers repeatedly removes leading filler words. A filler only counts as a whole word.
func stripFillers(text string) string {
	s := text
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		first := s
		if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
			first = s[:i]
		}
		if first == "" {
			return ""
		}
		if _, ok := fillers[strings.ToLower(first)]; !ok {
			return strings.TrimSpace(s)
		}
		s = s[len(first):]
	}
}
