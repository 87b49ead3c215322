// Package fields is the registry of FIR form fields: their localized labels, prompt questions and the patterns used
// to extract a value for the field from a free-form utterance.
package fields

import (
	"fmt"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/locale"
	"log/slog"
	"regexp"
)

// Key is the stable ASCII identifier of a field. Keys are used in storage and on the wire.
type Key string

const (
	FullName              Key = "fullName"
	Age                   Key = "age"
	Address               Key = "address"
	DateOfBirth           Key = "dateOfBirth"
	IncidentType          Key = "incidentType"
	IncidentDescription   Key = "incidentDescription"
	LocationOfIncident    Key = "locationOfIncident"
	DateTimeOfIncident    Key = "dateTimeOfIncident"
	Witnesses             Key = "witnesses"
	AdditionalInformation Key = "additionalInformation"
)

var (
	ErrUnknownField      = errors.NewSentinel("unknown field")
	ErrInvalidDefinition = errors.NewSentinel("invalid field definition")
)

// UnknownFieldError is returned when a key is not registered. It matches [ErrUnknownField] with errors.Is.
type UnknownFieldError struct {
	Key Key
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", string(e.Key))
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// Spec is the declarative form of a field definition, before its pattern is compiled.
type Spec struct {
	Key       Key
	Labels    map[string]string
	Questions map[string]string
	// Pattern must contain exactly one capture group.
	Pattern string
	// FreeText marks narrative fields whose pattern captures the whole utterance.
	FreeText bool
}

// Definition is a validated field with a compiled pattern.
type Definition struct {
	Key       Key
	Labels    map[string]string
	Questions map[string]string
	Pattern   *regexp.Regexp
	FreeText  bool
}

// Registry holds the field definitions in the order the guided session asks for them.
//
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	defs  []Definition
	index map[Key]int
}

// NewRegistry validates specs and builds a registry that preserves their order.
func NewRegistry(specs []Spec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, errors.Wrap(ErrInvalidDefinition, "no fields")
	}
	r := Registry{
		defs:  make([]Definition, 0, len(specs)),
		index: make(map[Key]int, len(specs)),
	}
	for _, s := range specs {
		if _, ok := r.index[s.Key]; ok {
			return nil, errors.Wrap(ErrInvalidDefinition, "duplicate key", slog.String("key", string(s.Key)))
		}
		if s.Labels[locale.English] == "" || s.Questions[locale.English] == "" {
			return nil, errors.Wrap(ErrInvalidDefinition, "missing English label or question",
				slog.String("key", string(s.Key)))
		}
		pattern, err := compilePattern(s.Key, s.Pattern)
		if err != nil {
			return nil, err
		}
		r.index[s.Key] = len(r.defs)
		r.defs = append(r.defs, Definition{
			Key:       s.Key,
			Labels:    copyMap(s.Labels),
			Questions: copyMap(s.Questions),
			Pattern:   pattern,
			FreeText:  s.FreeText,
		})
	}
	return &r, nil
}

// Default returns the registry of the ten FIR fields.
func Default() *Registry {
	r, err := NewRegistry(defaultSpecs)
	if err != nil {
		panic(fmt.Sprintf("default field registry: %v", err))
	}
	return r
}

func compilePattern(key Key, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidDefinition, "compile pattern",
			slog.String("key", string(key)), slog.String("error", err.Error()))
	}
	if re.NumSubexp() != 1 {
		return nil, errors.Wrap(ErrInvalidDefinition, "pattern must have exactly one capture group",
			slog.String("key", string(key)), slog.Int("groups", re.NumSubexp()))
	}
	return re, nil
}

func copyMap(m map[string]string) map[string]string {
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Len returns the number of registered fields.
func (r *Registry) Len() int {
	return len(r.defs)
}

// At returns the definition at position i in question order.
func (r *Registry) At(i int) Definition {
	return r.defs[i]
}

// Keys returns the field keys in question order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, len(r.defs))
	for i, d := range r.defs {
		keys[i] = d.Key
	}
	return keys
}

// Definitions returns the definitions in question order.
func (r *Registry) Definitions() []Definition {
	return append([]Definition(nil), r.defs...)
}

// Lookup returns the definition for key.
func (r *Registry) Lookup(key Key) (Definition, error) {
	i, ok := r.index[key]
	if !ok {
		return Definition{}, &UnknownFieldError{Key: key} //nolint:exhaustruct // zero value on error
	}
	return r.defs[i], nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key Key) bool {
	_, ok := r.index[key]
	return ok
}

// Pattern returns the extraction pattern for key.
func (r *Registry) Pattern(key Key) (*regexp.Regexp, error) {
	def, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	return def.Pattern, nil
}

// Question returns the prompt for key in the given locale, falling back to English and then to the key itself.
func (r *Registry) Question(key Key, loc string) string {
	def, err := r.Lookup(key)
	if err != nil {
		return string(key)
	}
	return localized(def.Questions, loc, string(key))
}

// Label returns the form label for key in the given locale with the same fallbacks as [Registry.Question].
func (r *Registry) Label(key Key, loc string) string {
	def, err := r.Lookup(key)
	if err != nil {
		return string(key)
	}
	return localized(def.Labels, loc, string(key))
}

func localized(m map[string]string, loc, fallback string) string {
	if s := m[loc]; s != "" {
		return s
	}
	if s := m[locale.English]; s != "" {
		return s
	}
	return fallback
}
