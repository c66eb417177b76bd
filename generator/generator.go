package generator

import (
	"fmt"
	"go/token"
	"slices"
	"time"

	"github.com/erraggy/wordfmt/wferrors"
	"github.com/erraggy/wordfmt/wordformat"
)

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "color_labels.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating an enum label table
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// PackageName is the Go package name used in generation
	PackageName string
	// TypeName is the name of the generated enum type
	TypeName string
	// Source is the format the values were declared in
	Source wordformat.Format
	// Targets are the formats a label table was generated for
	Targets []wordformat.Format
	// ValueCount is the number of enum constants generated
	ValueCount int
	// OverriddenCount is the number of labels taken from overrides
	OverriddenCount int
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator renders Go enum types whose constants carry precomputed labels
type Generator struct {
	// PackageName is the Go package name for generated code.
	// If empty, defaults to "enums"
	PackageName string

	// TypeName is the name of the generated enum type. Required.
	TypeName string

	// Source is the format the values are declared in.
	// Default: wordformat.UpperUnderscore
	Source wordformat.Format

	// Targets are the formats to precompute labels for.
	// Default: every format
	Targets []wordformat.Format

	// Overrides supplies literal labels that win over computed ones
	Overrides wordformat.OverrideLookup
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		PackageName: "enums",
		Source:      wordformat.UpperUnderscore,
		Targets:     wordformat.Formats(),
	}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	values        []string
	packageName   string
	typeName      string
	source        wordformat.Format
	targets       []wordformat.Format
	overrides     wordformat.OverrideLookup
	overridesFile *string
}

// GenerateWithOptions generates an enum label table using functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithTypeName("Color"),
//	    generator.WithPackageName("colors"),
//	    generator.WithValues("RED", "DARK_GREEN"),
//	    generator.WithTargets(wordformat.Phrase, wordformat.LowerHyphen),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	overrides := cfg.overrides
	if cfg.overridesFile != nil {
		table, err := wordformat.LoadOverridesFile(*cfg.overridesFile)
		if err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
		overrides = table
	}

	g := &Generator{
		PackageName: cfg.packageName,
		TypeName:    cfg.typeName,
		Source:      cfg.source,
		Targets:     cfg.targets,
		Overrides:   overrides,
	}
	return g.Generate(cfg.values)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName: "enums",
		source:      wordformat.UpperUnderscore,
		targets:     wordformat.Formats(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.typeName == "" {
		return nil, &wferrors.ConfigError{Option: "type name", Message: "must be specified (use WithTypeName)"}
	}
	if cfg.overrides != nil && cfg.overridesFile != nil {
		return nil, &wferrors.ConfigError{Option: "overrides", Message: "use either WithOverrides or WithOverridesFile, not both"}
	}

	return cfg, nil
}

// WithTypeName specifies the name of the generated enum type
func WithTypeName(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.typeName = name
		return nil
	}
}

// WithPackageName specifies the Go package name for generated code
// Default: "enums"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return &wferrors.ConfigError{Option: "package name", Message: "cannot be empty"}
		}
		cfg.packageName = name
		return nil
	}
}

// WithSource specifies the format the values are declared in
// Default: wordformat.UpperUnderscore
func WithSource(f wordformat.Format) Option {
	return func(cfg *generateConfig) error {
		if !f.IsValid() {
			return &wferrors.ConfigError{Option: "source", Value: f, Message: "unknown format"}
		}
		cfg.source = f
		return nil
	}
}

// WithTargets specifies the formats to precompute labels for
// Default: every format
func WithTargets(targets ...wordformat.Format) Option {
	return func(cfg *generateConfig) error {
		if len(targets) == 0 {
			return &wferrors.ConfigError{Option: "targets", Message: "at least one target format is required"}
		}
		for _, f := range targets {
			if !f.IsValid() {
				return &wferrors.ConfigError{Option: "targets", Value: f, Message: "unknown format"}
			}
		}
		cfg.targets = slices.Clone(targets)
		return nil
	}
}

// WithValues appends declared values, in constant order
func WithValues(values ...string) Option {
	return func(cfg *generateConfig) error {
		cfg.values = append(cfg.values, values...)
		return nil
	}
}

// WithOverrides specifies literal labels that win over computed ones
func WithOverrides(o wordformat.OverrideLookup) Option {
	return func(cfg *generateConfig) error {
		cfg.overrides = o
		return nil
	}
}

// WithOverridesFile loads overrides from a YAML or JSON file at generation time
func WithOverridesFile(path string) Option {
	return func(cfg *generateConfig) error {
		if path == "" {
			return &wferrors.ConfigError{Option: "overrides file", Message: "path must not be empty"}
		}
		cfg.overridesFile = &path
		return nil
	}
}

// Generate renders the enum type for values, declared in g.Source.
// Constants are numbered from zero in the order given.
func (g *Generator) Generate(values []string) (*GenerateResult, error) {
	start := time.Now()

	if err := g.validate(values); err != nil {
		return nil, err
	}

	converter, err := wordformat.NewConverter(
		wordformat.WithSource(g.Source),
		wordformat.WithOverrides(g.Overrides),
	)
	if err != nil {
		return nil, &wferrors.GenerateError{TypeName: g.TypeName, Message: "creating converter", Cause: err}
	}

	data, overridden, err := g.buildTemplateData(converter, values)
	if err != nil {
		return nil, err
	}

	content, err := executeTemplate("labels.go.tmpl", data)
	if err != nil {
		return nil, &wferrors.GenerateError{TypeName: g.TypeName, Message: "rendering source", Cause: err}
	}

	return &GenerateResult{
		Files:           []GeneratedFile{{Name: fileName(g.TypeName), Content: content}},
		PackageName:     g.packageName(),
		TypeName:        g.TypeName,
		Source:          g.Source,
		Targets:         slices.Clone(g.targets()),
		ValueCount:      len(values),
		OverriddenCount: overridden,
		GenerateTime:    time.Since(start),
	}, nil
}

func (g *Generator) validate(values []string) error {
	if !token.IsIdentifier(g.TypeName) {
		return &wferrors.GenerateError{TypeName: g.TypeName, Message: "type name is not a valid Go identifier"}
	}
	if !token.IsIdentifier(g.packageName()) {
		return &wferrors.GenerateError{TypeName: g.TypeName, Message: fmt.Sprintf("package name %q is not a valid Go identifier", g.packageName())}
	}
	if !g.Source.IsValid() {
		return &wferrors.GenerateError{TypeName: g.TypeName, Message: "source format is invalid", Cause: &wferrors.ArgumentError{Argument: "source", Value: g.Source}}
	}
	for _, f := range g.targets() {
		if !f.IsValid() {
			return &wferrors.GenerateError{TypeName: g.TypeName, Message: "target format is invalid", Cause: &wferrors.ArgumentError{Argument: "target", Value: f}}
		}
	}
	if len(values) == 0 {
		return &wferrors.GenerateError{TypeName: g.TypeName, Message: "at least one value is required"}
	}
	return nil
}

func (g *Generator) packageName() string {
	if g.PackageName == "" {
		return "enums"
	}
	return g.PackageName
}

func (g *Generator) targets() []wordformat.Format {
	if len(g.Targets) == 0 {
		return wordformat.Formats()
	}
	return g.Targets
}
