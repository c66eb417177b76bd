package generator

import (
	"bytes"
	"embed"
	"maps"
	"strconv"
	"text/template"

	"github.com/erraggy/wordfmt/wordformat"
	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs()).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs adds Go-source helpers to the wordformat conversions
func templateFuncs() template.FuncMap {
	funcs := wordformat.TemplateFuncs()
	maps.Copy(funcs, template.FuncMap{
		"quote":  strconv.Quote,
		"goName": func(f wordformat.Format) string { return f.GoName() },
	})
	return funcs
}

// executeTemplate executes a template by name and returns the formatted bytes
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return formatAndFixImports("generated.go", buf.Bytes())
}

// formatAndFixImports formats Go source and drops unused imports.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
