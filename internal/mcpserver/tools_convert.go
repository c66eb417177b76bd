package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/wordfmt/wordformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Text      string            `json:"text"                jsonschema:"The identifier or phrase to convert"`
	From      string            `json:"from,omitempty"      jsonschema:"Source format name or alias. Defaults to WORDFMT_DEFAULT_SOURCE."`
	To        string            `json:"to"                  jsonschema:"Target format name or alias"`
	Overrides map[string]string `json:"overrides,omitempty" jsonschema:"Literal results keyed by input text. A matching entry is returned instead of the conversion."`
}

type convertOutput struct {
	Result     string `json:"result"`
	From       string `json:"from"`
	To         string `json:"to"`
	Overridden bool   `json:"overridden"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := checkInputSize(input.Text); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	source, target, err := resolveFormats(input.From, input.To)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	var lookups overrideChain
	if len(input.Overrides) > 0 {
		entries := make([]wordformat.OverrideEntry, 0, len(input.Overrides))
		for value, text := range input.Overrides {
			entries = append(entries, wordformat.OverrideEntry{Value: value, Target: target, Text: text})
		}
		table, err := wordformat.NewOverrides(entries...)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		lookups = append(lookups, table)
	}
	if fileOverrides != nil {
		lookups = append(lookups, fileOverrides)
	}

	converter, err := newConverter(source, lookups)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	text, overridden, err := converter.Lookup(input.Text, target)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		Result:     text,
		From:       source.String(),
		To:         target.String(),
		Overridden: overridden,
	}, nil
}

type convertBatchInput struct {
	Texts []string `json:"texts"          jsonschema:"The identifiers or phrases to convert"`
	From  string   `json:"from,omitempty" jsonschema:"Source format name or alias. Defaults to WORDFMT_DEFAULT_SOURCE."`
	To    string   `json:"to"             jsonschema:"Target format name or alias"`
}

type convertBatchOutput struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Count   int      `json:"count"`
	Results []string `json:"results"`
}

func handleConvertBatch(_ context.Context, _ *mcp.CallToolRequest, input convertBatchInput) (*mcp.CallToolResult, convertBatchOutput, error) {
	if len(input.Texts) == 0 {
		return errResult(fmt.Errorf("texts must contain at least one entry")), convertBatchOutput{}, nil
	}
	if len(input.Texts) > cfg.MaxBatch {
		return errResult(fmt.Errorf("too many texts: %d exceeds the limit of %d (WORDFMT_MAX_BATCH)", len(input.Texts), cfg.MaxBatch)), convertBatchOutput{}, nil
	}
	for _, text := range input.Texts {
		if err := checkInputSize(text); err != nil {
			return errResult(err), convertBatchOutput{}, nil
		}
	}

	source, target, err := resolveFormats(input.From, input.To)
	if err != nil {
		return errResult(err), convertBatchOutput{}, nil
	}

	var lookups overrideChain
	if fileOverrides != nil {
		lookups = append(lookups, fileOverrides)
	}
	converter, err := newConverter(source, lookups)
	if err != nil {
		return errResult(err), convertBatchOutput{}, nil
	}

	results, err := converter.Values(input.Texts, target)
	if err != nil {
		return errResult(err), convertBatchOutput{}, nil
	}

	return nil, convertBatchOutput{
		From:    source.String(),
		To:      target.String(),
		Count:   len(results),
		Results: results,
	}, nil
}

// resolveFormats parses the from/to arguments. An empty from selects
// cfg.DefaultSource; to is required.
func resolveFormats(from, to string) (source, target wordformat.Format, err error) {
	if to == "" {
		return wordformat.Unknown, wordformat.Unknown, fmt.Errorf("to is required; valid formats: %v", wordformat.FormatNames())
	}
	if target, err = wordformat.ParseFormat(to); err != nil {
		return wordformat.Unknown, wordformat.Unknown, err
	}

	source = cfg.DefaultSource
	if from != "" {
		if source, err = wordformat.ParseFormat(from); err != nil {
			return wordformat.Unknown, wordformat.Unknown, err
		}
	}
	return source, target, nil
}

func checkInputSize(text string) error {
	if len(text) > cfg.MaxInputSize {
		return fmt.Errorf("text is %d bytes, exceeding the limit of %d (WORDFMT_MAX_INPUT_SIZE)", len(text), cfg.MaxInputSize)
	}
	return nil
}

func newConverter(source wordformat.Format, lookups overrideChain) (*wordformat.Converter, error) {
	opts := []wordformat.Option{wordformat.WithSource(source)}
	if len(lookups) > 0 {
		opts = append(opts, wordformat.WithOverrides(lookups))
	}
	return wordformat.NewConverter(opts...)
}

// overrideChain consults each lookup in order and returns the first hit.
type overrideChain []wordformat.OverrideLookup

func (c overrideChain) LookupOverride(value string, target wordformat.Format) (string, bool) {
	for _, lookup := range c {
		if text, ok := lookup.LookupOverride(value, target); ok {
			return text, true
		}
	}
	return "", false
}
