package generator

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/erraggy/wordfmt/wferrors"
	"github.com/erraggy/wordfmt/wordformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()

	require.NotNil(t, g, "New() should not return nil")
	assert.Equal(t, "enums", g.PackageName)
	assert.Equal(t, wordformat.UpperUnderscore, g.Source)
	assert.Equal(t, wordformat.Formats(), g.Targets)
	assert.Nil(t, g.Overrides)
}

func TestGenerate(t *testing.T) {
	g := New()
	g.TypeName = "Color"
	g.PackageName = "colors"
	g.Targets = []wordformat.Format{wordformat.Phrase, wordformat.LowerHyphen}

	result, err := g.Generate([]string{"RED", "DARK_GREEN", "LIGHT_SKY_BLUE"})
	require.NoError(t, err)

	assert.Equal(t, "colors", result.PackageName)
	assert.Equal(t, "Color", result.TypeName)
	assert.Equal(t, wordformat.UpperUnderscore, result.Source)
	assert.Equal(t, 3, result.ValueCount)
	assert.Equal(t, 0, result.OverriddenCount)
	require.Len(t, result.Files, 1)

	file := result.GetFile("color_labels.go")
	require.NotNil(t, file)
	src := string(file.Content)

	assert.Contains(t, src, "// Code generated by wordfmt generate; DO NOT EDIT.")
	assert.Contains(t, src, "package colors")
	assert.Regexp(t, regexp.MustCompile(`ColorRed\s+Color = iota`), src)
	for _, want := range []string{
		"ColorDarkGreen", "ColorLightSkyBlue",
		`"RED"`, `"DARK_GREEN"`, `"LIGHT_SKY_BLUE"`,
		`"Red"`, `"Dark green"`, `"Light sky blue"`,
		`"red"`, `"dark-green"`, `"light-sky-blue"`,
		"wordformat.Phrase:", "wordformat.LowerHyphen:",
		"func (v Color) String() string",
		"func (v Color) Label(f wordformat.Format) string",
		"func ColorValues() []Color",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "wordformat.UpperCamel:")

	assertParses(t, file)
}

func TestGenerate_Overrides(t *testing.T) {
	overrides, err := wordformat.NewOverrides(
		wordformat.OverrideEntry{Value: "HTTP_URL", Target: wordformat.Phrase, Text: "HTTP URL"},
		wordformat.OverrideEntry{Value: "HTTP_URL", Target: wordformat.UpperUnderscore, Text: "HTTP_URL (legacy)"},
	)
	require.NoError(t, err)

	g := New()
	g.TypeName = "Link"
	g.Overrides = overrides

	result, err := g.Generate([]string{"HTTP_URL", "FILE_PATH"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.OverriddenCount)

	src := string(result.Files[0].Content)
	assert.Contains(t, src, `"HTTP URL"`)
	assert.Contains(t, src, `"HTTP_URL (legacy)"`)
	assert.Contains(t, src, `"Http Url"`)
	assert.Contains(t, src, `"File path"`)
	assertParses(t, &result.Files[0])
}

func TestGenerate_SourceFormat(t *testing.T) {
	g := New()
	g.TypeName = "Setting"
	g.Source = wordformat.LowerCamel
	g.Targets = []wordformat.Format{wordformat.UpperUnderscore}

	result, err := g.Generate([]string{"maxRetries", "timeout"})
	require.NoError(t, err)

	src := string(result.Files[0].Content)
	assert.Contains(t, src, "SettingMaxRetries")
	assert.Contains(t, src, "SettingTimeout")
	assert.Contains(t, src, `"MAX_RETRIES"`)
	assert.Equal(t, "setting_labels.go", result.Files[0].Name)
}

func TestGenerate_DuplicateTargets(t *testing.T) {
	g := New()
	g.TypeName = "Color"
	g.Targets = []wordformat.Format{wordformat.Phrase, wordformat.Phrase}

	result, err := g.Generate([]string{"RED"})
	require.NoError(t, err)
	assertParses(t, &result.Files[0])
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		pkg      string
		values   []string
		wantMsg  string
	}{
		{name: "no values", typeName: "Color", values: nil, wantMsg: "at least one value"},
		{name: "duplicate value", typeName: "Color", values: []string{"RED", "RED"}, wantMsg: `duplicate value "RED"`},
		{name: "colliding constants", typeName: "Color", values: []string{"DARK_RED", "DARK__RED"}, wantMsg: "both map to constant ColorDarkRed"},
		{name: "invalid identifier", typeName: "Color", values: []string{"DARK RED"}, wantMsg: "not a valid Go identifier"},
		{name: "empty identifier", typeName: "Color", values: []string{"_"}, wantMsg: "empty identifier"},
		{name: "reserved name", typeName: "Color", values: []string{"VALUES"}, wantMsg: "collides with the generated function ColorValues"},
		{name: "invalid type name", typeName: "my-type", values: []string{"RED"}, wantMsg: "type name is not a valid Go identifier"},
		{name: "keyword type name", typeName: "type", values: []string{"RED"}, wantMsg: "type name is not a valid Go identifier"},
		{name: "invalid package", typeName: "Color", pkg: "my-pkg", values: []string{"RED"}, wantMsg: `package name "my-pkg"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.TypeName = tt.typeName
			if tt.pkg != "" {
				g.PackageName = tt.pkg
			}

			_, err := g.Generate(tt.values)
			require.Error(t, err)
			assert.ErrorIs(t, err, wferrors.ErrGenerate)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var genErr *wferrors.GenerateError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tt.typeName, genErr.TypeName)
		})
	}
}

func TestGenerate_InvalidTarget(t *testing.T) {
	g := New()
	g.TypeName = "Color"
	g.Targets = []wordformat.Format{wordformat.Unknown}

	_, err := g.Generate([]string{"RED"})
	assert.ErrorIs(t, err, wferrors.ErrGenerate)
	assert.ErrorIs(t, err, wferrors.ErrInvalidArgument)
}

func TestGenerateWithOptions(t *testing.T) {
	result, err := GenerateWithOptions(
		WithTypeName("Color"),
		WithPackageName("colors"),
		WithValues("RED", "HTTP_BLUE"),
		WithTargets(wordformat.Phrase),
		WithOverridesFile("testdata/labels.yaml"),
	)
	require.NoError(t, err)

	assert.Equal(t, []wordformat.Format{wordformat.Phrase}, result.Targets)
	assert.Equal(t, 1, result.OverriddenCount)
	assert.Contains(t, string(result.Files[0].Content), `"HTTP blue"`)
}

func TestGenerateWithOptions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name:    "missing type name",
			opts:    []Option{WithValues("RED")},
			wantErr: wferrors.ErrConfig,
		},
		{
			name:    "empty package name",
			opts:    []Option{WithTypeName("Color"), WithPackageName("")},
			wantErr: wferrors.ErrConfig,
		},
		{
			name:    "invalid source",
			opts:    []Option{WithTypeName("Color"), WithSource(wordformat.Unknown)},
			wantErr: wferrors.ErrConfig,
		},
		{
			name:    "no targets",
			opts:    []Option{WithTypeName("Color"), WithTargets()},
			wantErr: wferrors.ErrConfig,
		},
		{
			name:    "invalid target",
			opts:    []Option{WithTypeName("Color"), WithTargets(wordformat.Format(42))},
			wantErr: wferrors.ErrConfig,
		},
		{
			name:    "empty overrides file",
			opts:    []Option{WithTypeName("Color"), WithOverridesFile("")},
			wantErr: wferrors.ErrConfig,
		},
		{
			name: "both override sources",
			opts: []Option{
				WithTypeName("Color"),
				WithOverrides(&wordformat.Overrides{}),
				WithOverridesFile("testdata/labels.yaml"),
			},
			wantErr: wferrors.ErrConfig,
		},
		{
			name:    "missing overrides file",
			opts:    []Option{WithTypeName("Color"), WithValues("RED"), WithOverridesFile("testdata/missing.yaml")},
			wantErr: wferrors.ErrParse,
		},
		{
			name:    "no values",
			opts:    []Option{WithTypeName("Color")},
			wantErr: wferrors.ErrGenerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWriteFiles(t *testing.T) {
	result, err := GenerateWithOptions(WithTypeName("Color"), WithValues("RED"))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, result.WriteFiles(dir))

	content, err := os.ReadFile(filepath.Join(dir, "color_labels.go"))
	require.NoError(t, err)
	assert.Equal(t, result.Files[0].Content, content)
}

func TestWriteFiles_RejectsPathSeparators(t *testing.T) {
	result := &GenerateResult{Files: []GeneratedFile{{Name: "../escape.go", Content: []byte("package x\n")}}}
	err := result.WriteFiles(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain path separators")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "color_labels.go", fileName("Color"))
	assert.Equal(t, "http_status_labels.go", fileName("HttpStatus"))
	assert.Equal(t, "color_labels.go", fileName("color"))
	assert.Equal(t, "log_level_labels.go", fileName("log_Level"))
	assert.Equal(t, "enum_labels.go", fileName(""))
}

// assertParses checks that the generated file is syntactically valid Go and
// declares the expected methods.
func assertParses(t *testing.T, file *GeneratedFile) {
	t.Helper()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file.Name, file.Content, parser.ParseComments)
	require.NoError(t, err, "generated code does not parse:\n%s", file.Content)

	var methods []string
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv != nil {
			methods = append(methods, fn.Name.Name)
		}
	}
	assert.ElementsMatch(t, []string{"String", "Label"}, methods)
}
