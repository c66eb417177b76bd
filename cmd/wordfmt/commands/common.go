// Package commands provides CLI command handlers for wordfmt.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/wordfmt/internal/cliutil"
	"github.com/erraggy/wordfmt/wordformat"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// ParseFormatFlag resolves a format flag value, naming the flag in errors.
func ParseFormatFlag(flagName, value string) (wordformat.Format, error) {
	if value == "" {
		return wordformat.Unknown, fmt.Errorf("-%s is required. Valid formats: %s", flagName, strings.Join(wordformat.FormatNames(), ", "))
	}
	f, err := wordformat.ParseFormat(value)
	if err != nil {
		return wordformat.Unknown, fmt.Errorf("invalid -%s: %w", flagName, err)
	}
	return f, nil
}

// ParseFormatList resolves a comma-separated list of format names.
// An empty value selects every format.
func ParseFormatList(flagName, value string) ([]wordformat.Format, error) {
	names := cliutil.SplitList(value)
	if len(names) == 0 {
		return wordformat.Formats(), nil
	}
	formats := make([]wordformat.Format, 0, len(names))
	for _, name := range names {
		f, err := ParseFormatFlag(flagName, name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// stdio bundles the streams a command reads and writes, so tests can
// substitute buffers.
type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func osStdio() stdio {
	return stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}
