package wordformat

import (
	"strings"
	"text/template"

	"github.com/erraggy/wordfmt/internal/naming"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplateFuncs returns text/template functions for rendering identifiers.
//
// Each format has a function named after its Go constant in lowerCamel
// ("lowerHyphen", "upperCamel", "phrase", ...) that converts a case-style
// argument into that format. Unlike Convert there is no identity shortcut, so
// {{ lowerCamel "one_two" }} renders "oneTwo". "capitalize" applies
// Capitalize, and "title", "upper" and "lower" case the whole string.
//
// Example:
//
//	tmpl := template.Must(template.New("label").
//	    Funcs(wordformat.TemplateFuncs()).
//	    Parse(`{{ phrase . }} ({{ lowerHyphen . }})`))
func TemplateFuncs() template.FuncMap {
	// Use golang.org/x/text/cases for proper title casing (strings.Title is deprecated)
	titleCaser := cases.Title(language.English)

	funcs := template.FuncMap{
		"capitalize": Capitalize,
		"title":      titleCaser.String,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
	}
	for _, f := range Formats() {
		target := f
		funcs[templateFuncName(f)] = func(s string) string {
			return render(naming.Split(s), target)
		}
	}
	return funcs
}

// templateFuncName returns the template function name for f, e.g. "lowerHyphen".
func templateFuncName(f Format) string {
	return convert(UpperCamel, LowerCamel, f.GoName())
}
