package mcpserver

import (
	"context"

	"github.com/erraggy/wordfmt/wordformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listFormatsInput struct{}

type formatSummary struct {
	Name    string `json:"name"`
	GoName  string `json:"go_name"`
	Kind    string `json:"kind"`
	Example string `json:"example"`
}

type listFormatsOutput struct {
	DefaultSource string          `json:"default_source"`
	Formats       []formatSummary `json:"formats"`
}

func handleListFormats(_ context.Context, _ *mcp.CallToolRequest, _ listFormatsInput) (*mcp.CallToolResult, listFormatsOutput, error) {
	formats := wordformat.Formats()
	output := listFormatsOutput{
		DefaultSource: cfg.DefaultSource.String(),
		Formats:       make([]formatSummary, 0, len(formats)),
	}
	for _, f := range formats {
		output.Formats = append(output.Formats, formatSummary{
			Name:    f.String(),
			GoName:  f.GoName(),
			Kind:    f.Kind().String(),
			Example: f.Example(),
		})
	}
	return nil, output, nil
}
