// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinArg is the argument that selects standard input.
const StdinArg = "-"

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ReadLines returns every line of r without its line terminator.
// A trailing "\r" is dropped so CRLF input behaves like LF input.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// InputArgs returns args, or the lines of stdin when args is exactly StdinArg.
func InputArgs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) == 1 && args[0] == StdinArg {
		return ReadLines(stdin)
	}
	return args, nil
}

// SplitList splits a comma-separated flag value, trimming blanks and
// dropping empty items.
// Example: "PHRASE, kebab,," -> ["PHRASE", "kebab"]
func SplitList(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
