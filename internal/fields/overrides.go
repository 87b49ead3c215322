package fields

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/myrjola/smartcop/internal/errors"
	"log/slog"
)

// Override extends a field with additional locales or replaces its pattern.
type Override struct {
	Labels    map[string]string `koanf:"labels"`
	Questions map[string]string `koanf:"questions"`
	Pattern   string            `koanf:"pattern"`
}

// LoadOverrides reads field overrides from a YAML file of the form
//
//	fields:
//	  fullName:
//	    labels: { sd: "پورو نالو" }
//	    pattern: '(?i)(?:name|نالو)\s*([^,.\n]+)'
func LoadOverrides(path string) (map[Key]Override, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, "load fields file", slog.String("path", path))
	}
	var doc struct {
		Fields map[string]Override `koanf:"fields"`
	}
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal fields file", slog.String("path", path))
	}
	overrides := make(map[Key]Override, len(doc.Fields))
	for key, o := range doc.Fields {
		overrides[Key(key)] = o
	}
	return overrides, nil
}

// WithOverrides returns a new registry where the overrides are merged on top of r. The receiver is not modified.
func (r *Registry) WithOverrides(overrides map[Key]Override) (*Registry, error) {
	specs := make([]Spec, len(r.defs))
	for i, d := range r.defs {
		specs[i] = Spec{
			Key:       d.Key,
			Labels:    copyMap(d.Labels),
			Questions: copyMap(d.Questions),
			Pattern:   d.Pattern.String(),
			FreeText:  d.FreeText,
		}
	}
	for key, o := range overrides {
		i, ok := r.index[key]
		if !ok {
			return nil, &UnknownFieldError{Key: key}
		}
		for loc, label := range o.Labels {
			specs[i].Labels[loc] = label
		}
		for loc, question := range o.Questions {
			specs[i].Questions[loc] = question
		}
		if o.Pattern != "" {
			specs[i].Pattern = o.Pattern
		}
	}
	return NewRegistry(specs)
}

// Load returns the default registry extended with the overrides in path. An empty path yields [Default].
func Load(path string) (*Registry, error) {
	registry := Default()
	if path == "" {
		return registry, nil
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	if registry, err = registry.WithOverrides(overrides); err != nil {
		return nil, errors.Wrap(err, "apply field overrides", slog.String("path", path))
	}
	return registry, nil
}
