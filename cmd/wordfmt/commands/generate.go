package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/wordfmt"
	"github.com/erraggy/wordfmt/generator"
	"github.com/erraggy/wordfmt/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	TypeName    string
	PackageName string
	From        string
	To          string
	Overrides   string
	Output      string
	Quiet       bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.TypeName, "type", "", "name of the generated enum type (required)")
	fs.StringVar(&flags.PackageName, "p", "enums", "Go package name for generated code")
	fs.StringVar(&flags.PackageName, "package", "enums", "Go package name for generated code")
	fs.StringVar(&flags.From, "from", "UPPER_UNDERSCORE", "format the values are declared in")
	fs.StringVar(&flags.To, "to", "", "comma-separated target formats (default: all)")
	fs.StringVar(&flags.Overrides, "overrides", "", "YAML or JSON override table")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress the summary on stderr")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress the summary on stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordfmt generate -type NAME [flags] <VALUE...|->\n\n")
		cliutil.Writef(fs.Output(), "Generate a Go enum type whose values carry precomputed labels.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  wordfmt generate -type Color -p colors RED DARK_GREEN LIGHT_BLUE\n")
		cliutil.Writef(fs.Output(), "  wordfmt generate -type Color -to PHRASE,kebab -o colors/color_labels.go RED DARK_GREEN\n")
		cliutil.Writef(fs.Output(), "  wordfmt generate -type Setting -from camel maxRetries timeout\n")
		cliutil.Writef(fs.Output(), "  wordfmt generate -type Status --overrides labels.yaml - < statuses.txt\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Constants are named after the type followed by the value in UpperCamel\n")
		cliutil.Writef(fs.Output(), "  - Overrides win over computed labels\n")
		cliutil.Writef(fs.Output(), "  - Output files are written with mode 0644\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	return runGenerate(args, osStdio())
}

func runGenerate(args []string, std stdio) error {
	fs, flags := SetupGenerateFlags()
	fs.SetOutput(std.err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("generate command requires at least one value or '-' for stdin")
	}
	if flags.TypeName == "" {
		fs.Usage()
		return fmt.Errorf("type name is required (use -type)")
	}

	source, err := ParseFormatFlag("from", flags.From)
	if err != nil {
		return err
	}
	targets, err := ParseFormatList("to", flags.To)
	if err != nil {
		return err
	}
	values, err := cliutil.InputArgs(fs.Args(), std.in)
	if err != nil {
		return err
	}

	opts := []generator.Option{
		generator.WithTypeName(flags.TypeName),
		generator.WithPackageName(flags.PackageName),
		generator.WithSource(source),
		generator.WithTargets(targets...),
		generator.WithValues(values...),
	}
	if flags.Overrides != "" {
		opts = append(opts, generator.WithOverridesFile(flags.Overrides))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return err
	}
	file := result.Files[0]

	if flags.Output == "" {
		if _, err := std.out.Write(file.Content); err != nil {
			return fmt.Errorf("writing generated code to stdout: %w", err)
		}
		return nil
	}

	path := filepath.Clean(flags.Output)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, file.Name)
	}
	if err := file.WriteFile(path); err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Writef(std.err, "wordfmt version: %s\n", wordfmt.Version())
		cliutil.Writef(std.err, "Generated: %s\n", path)
		cliutil.Writef(std.err, "Type: %s (package %s)\n", result.TypeName, result.PackageName)
		cliutil.Writef(std.err, "Values: %d\n", result.ValueCount)
		cliutil.Writef(std.err, "Targets: %d\n", len(result.Targets))
		cliutil.Writef(std.err, "Overridden labels: %d\n", result.OverriddenCount)
		cliutil.Writef(std.err, "Generate Time: %v\n", result.GenerateTime)
	}
	return nil
}
