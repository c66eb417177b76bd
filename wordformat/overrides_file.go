package wordformat

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/wordfmt/wferrors"
	"go.yaml.in/yaml/v4"
)

// LoadOverrides reads an override table from a YAML (or JSON) document:
//
//	overrides:
//	  HTTP_URL:
//	    PHRASE: HTTP URL
//	    CAPITALIZED_WORDS: HTTP URL
//	  DARK_RED:
//	    lowerCamel: crimson
//
// Format keys accept every spelling ParseFormat does. An empty document
// yields an empty table.
func LoadOverrides(r io.Reader) (*Overrides, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &wferrors.ParseError{Message: "reading overrides", Cause: err}
	}
	return parseOverrides(data, "")
}

// LoadOverridesFile reads an override table from the file at path.
func LoadOverridesFile(path string) (*Overrides, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is provided by the caller
	if err != nil {
		return nil, &wferrors.ParseError{Path: path, Message: "reading overrides", Cause: err}
	}
	return parseOverrides(data, path)
}

func parseOverrides(data []byte, path string) (*Overrides, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &wferrors.ParseError{Path: path, Message: "invalid YAML", Cause: err}
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return NewOverrides()
		}
		doc = doc.Content[0]
	}
	if doc.Kind == 0 || isNull(doc) {
		return NewOverrides()
	}
	if doc.Kind != yaml.MappingNode {
		return nil, &wferrors.ParseError{Path: path, Line: doc.Line, Message: "expected a mapping with an 'overrides' key"}
	}

	var table *yaml.Node
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		if key.Value != "overrides" {
			return nil, &wferrors.ParseError{Path: path, Line: key.Line, Message: fmt.Sprintf("unknown key %q", key.Value)}
		}
		table = doc.Content[i+1]
	}
	if table == nil || isNull(table) {
		return NewOverrides()
	}
	if table.Kind != yaml.MappingNode {
		return nil, &wferrors.ParseError{Path: path, Line: table.Line, Message: "'overrides' must map values to formats"}
	}

	var entries []OverrideEntry
	for i := 0; i+1 < len(table.Content); i += 2 {
		valueNode := table.Content[i]
		formats := table.Content[i+1]
		if formats.Kind != yaml.MappingNode {
			return nil, &wferrors.ParseError{
				Path:    path,
				Line:    formats.Line,
				Message: fmt.Sprintf("value %q: expected a mapping of format to text", valueNode.Value),
			}
		}

		for j := 0; j+1 < len(formats.Content); j += 2 {
			formatNode := formats.Content[j]
			textNode := formats.Content[j+1]

			target, err := ParseFormat(formatNode.Value)
			if err != nil {
				return nil, &wferrors.ParseError{
					Path:    path,
					Line:    formatNode.Line,
					Message: fmt.Sprintf("value %q: unknown format %q", valueNode.Value, formatNode.Value),
					Cause:   err,
				}
			}
			if textNode.Kind != yaml.ScalarNode {
				return nil, &wferrors.ParseError{
					Path:    path,
					Line:    textNode.Line,
					Message: fmt.Sprintf("value %q, format %s: text must be a string", valueNode.Value, target),
				}
			}

			entries = append(entries, OverrideEntry{Value: valueNode.Value, Target: target, Text: textNode.Value})
		}
	}

	return NewOverrides(entries...)
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
