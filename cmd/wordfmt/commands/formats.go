package commands

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/erraggy/wordfmt/internal/cliutil"
	"github.com/erraggy/wordfmt/wordformat"
)

// FormatsFlags contains flags for the formats command
type FormatsFlags struct {
	Format string
}

// formatInfo describes one format in structured output.
type formatInfo struct {
	Name    string `json:"name"    yaml:"name"`
	GoName  string `json:"goName"  yaml:"goName"`
	Kind    string `json:"kind"    yaml:"kind"`
	Example string `json:"example" yaml:"example"`
}

// SetupFormatsFlags creates and configures a FlagSet for the formats command.
func SetupFormatsFlags() (*flag.FlagSet, *FormatsFlags) {
	fs := flag.NewFlagSet("formats", flag.ContinueOnError)
	flags := &FormatsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordfmt formats [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the supported naming formats with their kind and an example.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  wordfmt formats\n")
		cliutil.Writef(fs.Output(), "  wordfmt formats --format json\n")
	}

	return fs, flags
}

// HandleFormats executes the formats command
func HandleFormats(args []string) error {
	return runFormats(args, osStdio())
}

func runFormats(args []string, std stdio) error {
	fs, flags := SetupFormatsFlags()
	fs.SetOutput(std.err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("formats command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	formats := wordformat.Formats()
	infos := make([]formatInfo, 0, len(formats))
	for _, f := range formats {
		infos = append(infos, formatInfo{
			Name:    f.String(),
			GoName:  f.GoName(),
			Kind:    f.Kind().String(),
			Example: f.Example(),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(std.out, infos, flags.Format)
	}

	tw := tabwriter.NewWriter(std.out, 0, 4, 2, ' ', 0)
	cliutil.Writef(tw, "NAME\tKIND\tEXAMPLE\n")
	for _, info := range infos {
		cliutil.Writef(tw, "%s\t%s\t%s\n", info.Name, info.Kind, info.Example)
	}
	return tw.Flush()
}
