package main

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/wordfmt"
	"github.com/erraggy/wordfmt/cmd/wordfmt/commands"
)

// commandNames lists every top-level command, used for typo suggestions.
var commandNames = []string{"convert", "formats", "generate", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		printVersion(os.Stdout)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "convert":
		err = commands.HandleConvert(args)
	case "formats":
		err = commands.HandleFormats(args)
	case "generate":
		err = commands.HandleGenerate(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to input by edit distance, or
// the empty string when none is within distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// printVersion writes the build metadata reported by the version command.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintln(w, wordfmt.BuildInfo())
}

func printUsage() {
	fmt.Println(`wordfmt - Naming Format Conversion Tools

Usage:
  wordfmt <command> [options]

Commands:
  convert     Convert identifiers between naming formats
  formats     List the supported naming formats
  generate    Generate a Go enum type with precomputed labels
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  wordfmt convert -from UPPER_UNDERSCORE -to PHRASE DARK_RED LIGHT_BLUE
  wordfmt convert -f camel -t kebab maxRetryCount
  wordfmt formats --format json
  wordfmt generate -type Color -p colors RED DARK_GREEN
  wordfmt mcp

Run 'wordfmt <command> --help' for more information on a command.`)
}
