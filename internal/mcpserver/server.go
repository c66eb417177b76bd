// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes wordfmt conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/erraggy/wordfmt"
	"github.com/erraggy/wordfmt/wordformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `wordfmt MCP server: converts identifiers between naming conventions (lower-hyphen, lower_underscore, lowerCamel, UpperCamel, UPPER_UNDERSCORE, CAPITALIZED_WORDS, UNCAPITALIZED_WORDS, PHRASE).

Configuration: All defaults are configurable via WORDFMT_* environment variables set in your MCP client config.

Key settings:
- WORDFMT_DEFAULT_SOURCE (default: UPPER_UNDERSCORE) - source format when "from" is omitted
- WORDFMT_OVERRIDES_FILE - YAML override table consulted by every conversion
- WORDFMT_MAX_BATCH (default: 1000) - maximum texts per convert_batch call
- WORDFMT_MAX_INPUT_SIZE (default: 65536) - maximum bytes per text

Format names are matched loosely: "kebab", "snake", "camel", "pascal", "constant", "title", "words" and "sentence" are accepted aliases. Call list_formats to see every format with an example.`

// fileOverrides is the table loaded from cfg.OverridesFile by Run.
var fileOverrides wordformat.OverrideLookup

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.OverridesFile != "" {
		table, err := wordformat.LoadOverridesFile(cfg.OverridesFile)
		if err != nil {
			return fmt.Errorf("mcpserver: loading WORDFMT_OVERRIDES_FILE: %w", err)
		}
		fileOverrides = table
		slog.Debug("loaded override table", "path", cfg.OverridesFile, "entries", table.Len())
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "wordfmt", Version: wordfmt.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)

	slog.Debug("mcp server starting", "version", wordfmt.Version())
	err := server.Run(ctx, &mcp.StdioTransport{})
	slog.Debug("mcp server stopped", "error", err)
	return err
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert one identifier or phrase from a source naming format to a target format, e.g. DARK_RED (UPPER_UNDERSCORE) to \"Dark red\" (PHRASE). Optional overrides map input text to literal results that win over the conversion. The source defaults to WORDFMT_DEFAULT_SOURCE.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_batch",
		Description: "Convert many identifiers from the same source format to the same target format in one call. Results are returned in input order. The batch size is capped by WORDFMT_MAX_BATCH.",
	}, handleConvertBatch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_formats",
		Description: "List every supported naming format with its kind (case or phrase) and an example of the words \"upper word name\" rendered in it.",
	}, handleListFormats)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
