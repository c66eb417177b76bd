package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/wordfmt"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"conert", "convert"},
		{"convrt", "convert"},
		{"covnert", "convert"},
		{"fromats", "formats"},
		{"format", "formats"},
		{"genrate", "generate"},
		{"generae", "generate"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"transliterate", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"mcp", "mcp", 0},
		{"kitten", "sitting", 3},
		{"convert", "conert", 1},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)

	out := buf.String()
	if out != wordfmt.BuildInfo()+"\n" {
		t.Errorf("printVersion wrote %q, want BuildInfo followed by a newline", out)
	}
	if !strings.Contains(out, "Version: "+wordfmt.Version()) {
		t.Errorf("printVersion output %q is missing the version line", out)
	}
}
