package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/template"

	"github.com/erraggy/wordfmt/internal/cliutil"
	"github.com/erraggy/wordfmt/wordformat"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	From      string
	To        string
	Overrides string
	Template  string
	Format    string
	Quiet     bool
}

// convertRecord is one converted input, as rendered by -template and the
// structured output formats.
type convertRecord struct {
	Input      string `json:"input"      yaml:"input"`
	Result     string `json:"result"     yaml:"result"`
	From       string `json:"from"       yaml:"from"`
	To         string `json:"to"         yaml:"to"`
	Overridden bool   `json:"overridden" yaml:"overridden"`
}

// convertReport is the structured output of the convert command.
type convertReport struct {
	From    string          `json:"from"    yaml:"from"`
	To      string          `json:"to"      yaml:"to"`
	Results []convertRecord `json:"results" yaml:"results"`
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.From, "f", "", "source format (required)")
	fs.StringVar(&flags.From, "from", "", "source format (required)")
	fs.StringVar(&flags.To, "t", "", "target format (required)")
	fs.StringVar(&flags.To, "to", "", "target format (required)")
	fs.StringVar(&flags.Overrides, "overrides", "", "YAML or JSON override table consulted before converting")
	fs.StringVar(&flags.Template, "template", "", "text/template rendered for each result (fields: .Input .Result .From .To .Overridden)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress notes on stderr")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress notes on stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordfmt convert -from FORMAT -to FORMAT [flags] <text...|->\n\n")
		cliutil.Writef(fs.Output(), "Convert identifiers or phrases from one naming format to another.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nFormats:\n")
		for _, f := range wordformat.Formats() {
			cliutil.Writef(fs.Output(), "  %-20s %s\n", f.String(), f.Example())
		}
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  wordfmt convert -from UPPER_UNDERSCORE -to PHRASE DARK_RED LIGHT_BLUE\n")
		cliutil.Writef(fs.Output(), "  wordfmt convert -f camel -t kebab maxRetryCount\n")
		cliutil.Writef(fs.Output(), "  wordfmt convert -f constant -t sentence --overrides labels.yaml HTTP_URL\n")
		cliutil.Writef(fs.Output(), "  wordfmt convert -f snake -t pascal --format json user_id created_at\n")
		cliutil.Writef(fs.Output(), "  wordfmt convert -f constant -t kebab --template '{{.Input}}={{.Result}}' RED\n")
		cliutil.Writef(fs.Output(), "  cat values.txt | wordfmt convert -f constant -t phrase -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Format names are matched loosely; run 'wordfmt formats' for the full list\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the only argument to convert each line of stdin\n")
		cliutil.Writef(fs.Output(), "  - Phrase-to-phrase conversions lose the original capitalization\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(args, osStdio())
}

func runConvert(args []string, std stdio) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(std.err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one text argument or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	source, err := ParseFormatFlag("from", flags.From)
	if err != nil {
		return err
	}
	target, err := ParseFormatFlag("to", flags.To)
	if err != nil {
		return err
	}

	var tmpl *template.Template
	if flags.Template != "" {
		if flags.Format != FormatText {
			return fmt.Errorf("--template cannot be combined with --format %s", flags.Format)
		}
		tmpl, err = template.New("convert").Funcs(wordformat.TemplateFuncs()).Parse(flags.Template)
		if err != nil {
			return fmt.Errorf("parsing template: %w", err)
		}
	}

	opts := []wordformat.Option{wordformat.WithSource(source)}
	if flags.Overrides != "" {
		opts = append(opts, wordformat.WithOverridesFile(flags.Overrides))
	}
	converter, err := wordformat.NewConverter(opts...)
	if err != nil {
		return err
	}

	inputs, err := cliutil.InputArgs(fs.Args(), std.in)
	if err != nil {
		return err
	}

	report := convertReport{
		From:    source.String(),
		To:      target.String(),
		Results: make([]convertRecord, 0, len(inputs)),
	}
	overridden := 0
	for _, input := range inputs {
		text, fromOverride, err := converter.Lookup(input, target)
		if err != nil {
			return fmt.Errorf("converting %q: %w", input, err)
		}
		if fromOverride {
			overridden++
		}
		report.Results = append(report.Results, convertRecord{
			Input:      input,
			Result:     text,
			From:       report.From,
			To:         report.To,
			Overridden: fromOverride,
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(std.out, report, flags.Format)
	}

	for _, rec := range report.Results {
		if tmpl == nil {
			cliutil.Writef(std.out, "%s\n", rec.Result)
			continue
		}
		var sb strings.Builder
		if err := tmpl.Execute(&sb, rec); err != nil {
			return fmt.Errorf("executing template for %q: %w", rec.Input, err)
		}
		cliutil.Writef(std.out, "%s\n", sb.String())
	}

	if overridden > 0 && !flags.Quiet {
		cliutil.Writef(std.err, "Note: %d of %d value(s) taken from %s\n", overridden, len(inputs), flags.Overrides)
	}
	return nil
}
