package generator

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/erraggy/wordfmt/internal/naming"
	"github.com/erraggy/wordfmt/wferrors"
	"github.com/erraggy/wordfmt/wordformat"
)

// templateData is passed to labels.go.tmpl
type templateData struct {
	PackageName string
	TypeName    string
	// Prefix is prepended to the package-level tables, e.g. "_Color"
	Prefix string
	Source wordformat.Format
	Values []valueData
	Tables []tableData
}

// valueData describes one enum constant
type valueData struct {
	Ident string
	Name  string
}

// tableData holds the labels of every value in one format
type tableData struct {
	Format wordformat.Format
	Labels []labelData
}

// labelData is a single label, keyed by constant
type labelData struct {
	Ident string
	Text  string
}

// buildTemplateData converts every value and reports how many labels came
// from overrides.
func (g *Generator) buildTemplateData(c *wordformat.Converter, values []string) (*templateData, int, error) {
	data := &templateData{
		PackageName: g.packageName(),
		TypeName:    g.TypeName,
		Prefix:      "_" + g.TypeName,
		Source:      g.Source,
		Values:      make([]valueData, 0, len(values)),
	}

	seenValues := make(map[string]bool, len(values))
	seenIdents := make(map[string]string, len(values))
	reserved := g.TypeName + "Values"
	for _, v := range values {
		if seenValues[v] {
			return nil, 0, &wferrors.GenerateError{TypeName: g.TypeName, Message: fmt.Sprintf("duplicate value %q", v)}
		}
		seenValues[v] = true

		ident, err := constantName(g.TypeName, g.Source, v)
		if err != nil {
			return nil, 0, &wferrors.GenerateError{TypeName: g.TypeName, Message: fmt.Sprintf("value %q", v), Cause: err}
		}
		if ident == reserved {
			return nil, 0, &wferrors.GenerateError{TypeName: g.TypeName, Message: fmt.Sprintf("value %q collides with the generated function %s", v, reserved)}
		}
		if prev, ok := seenIdents[ident]; ok {
			return nil, 0, &wferrors.GenerateError{
				TypeName: g.TypeName,
				Message:  fmt.Sprintf("values %q and %q both map to constant %s", prev, v, ident),
			}
		}
		seenIdents[ident] = v

		data.Values = append(data.Values, valueData{Ident: ident, Name: v})
	}

	overridden := 0
	seenTargets := make(map[wordformat.Format]bool)
	for _, target := range g.targets() {
		if seenTargets[target] {
			continue
		}
		seenTargets[target] = true

		table := tableData{Format: target, Labels: make([]labelData, 0, len(values))}
		for _, v := range data.Values {
			text, fromOverride, err := c.Lookup(v.Name, target)
			if err != nil {
				return nil, 0, &wferrors.GenerateError{TypeName: g.TypeName, Message: fmt.Sprintf("labelling %q", v.Name), Cause: err}
			}
			if fromOverride {
				overridden++
			}
			table.Labels = append(table.Labels, labelData{Ident: v.Ident, Text: text})
		}
		data.Tables = append(data.Tables, table)
	}

	return data, overridden, nil
}

// constantName returns the Go constant for value: the type name followed by
// the value in UpperCamel.
// Example: ("Color", UpperUnderscore, "DARK_RED") -> "ColorDarkRed"
func constantName(typeName string, source wordformat.Format, value string) (string, error) {
	suffix, err := wordformat.Convert(source, wordformat.UpperCamel, value)
	if err != nil {
		return "", err
	}
	if suffix == "" {
		return "", errors.New("converts to an empty identifier")
	}
	ident := typeName + suffix
	if !token.IsIdentifier(ident) {
		return "", fmt.Errorf("constant %q is not a valid Go identifier", ident)
	}
	return ident, nil
}

// fileName returns the generated file name for typeName.
// Example: "HttpStatus" -> "http_status_labels.go"
func fileName(typeName string) string {
	base := naming.ToSnakeCase(typeName)
	if base == "" {
		base = "enum"
	}
	return base + "_labels.go"
}
