package wordformat

import (
	"fmt"

	"github.com/erraggy/wordfmt/wferrors"
)

// Converter converts declared values, such as enumeration constant names,
// into target formats. Overrides registered for a (value, target) pair are
// returned verbatim and skip the conversion algorithm entirely.
//
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	source    Format
	overrides OverrideLookup
}

// Option is a function that configures a Converter.
type Option func(*converterConfig) error

// converterConfig holds configuration collected from options.
type converterConfig struct {
	source        Format
	overrides     OverrideLookup
	overridesFile *string
}

// NewConverter creates a Converter. Values are assumed to be declared in
// UPPER_UNDERSCORE unless WithSource says otherwise.
//
// Example:
//
//	c, err := wordformat.NewConverter(
//	    wordformat.WithSource(wordformat.UpperUnderscore),
//	    wordformat.WithOverridesFile("labels.yaml"),
//	)
//	label, err := c.Value("DARK_RED", wordformat.Phrase)
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := &converterConfig{source: UpperUnderscore}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.overridesFile != nil {
		if cfg.overrides != nil {
			return nil, &wferrors.ConfigError{Option: "overrides", Message: "use either WithOverrides or WithOverridesFile, not both"}
		}
		table, err := LoadOverridesFile(*cfg.overridesFile)
		if err != nil {
			return nil, &wferrors.ConfigError{Option: "overrides file", Value: *cfg.overridesFile, Cause: err}
		}
		cfg.overrides = table
	}

	return &Converter{source: cfg.source, overrides: cfg.overrides}, nil
}

// WithSource sets the format values are declared in.
func WithSource(f Format) Option {
	return func(cfg *converterConfig) error {
		if !f.IsValid() {
			return &wferrors.ConfigError{Option: "source", Value: f, Message: "unknown format"}
		}
		cfg.source = f
		return nil
	}
}

// WithOverrides sets the override lookup consulted before converting.
// A nil lookup disables overrides.
func WithOverrides(o OverrideLookup) Option {
	return func(cfg *converterConfig) error {
		cfg.overrides = o
		return nil
	}
}

// WithOverridesFile loads the override table from a YAML or JSON file.
func WithOverridesFile(path string) Option {
	return func(cfg *converterConfig) error {
		if path == "" {
			return &wferrors.ConfigError{Option: "overrides file", Message: "path must not be empty"}
		}
		cfg.overridesFile = &path
		return nil
	}
}

// Source returns the format values are declared in.
func (c *Converter) Source() Format {
	return c.source
}

// Value converts a declared value into target. An override registered for
// (value, target) takes precedence over the computed conversion.
func (c *Converter) Value(value string, target Format) (string, error) {
	text, _, err := c.Lookup(value, target)
	return text, err
}

// Lookup is like Value and also reports whether the text came from an
// override.
func (c *Converter) Lookup(value string, target Format) (text string, overridden bool, err error) {
	if !target.IsValid() {
		return "", false, &wferrors.ArgumentError{Argument: "target", Value: target, Message: "a valid target format is required"}
	}
	if c.overrides != nil {
		if text, ok := c.overrides.LookupOverride(value, target); ok {
			return text, true, nil
		}
	}
	return convert(c.source, target, value), false, nil
}

// Values converts every value into target, preserving order.
func (c *Converter) Values(values []string, target Format) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		text, err := c.Value(v, target)
		if err != nil {
			return nil, fmt.Errorf("wordformat: converting %q: %w", v, err)
		}
		out = append(out, text)
	}
	return out, nil
}
