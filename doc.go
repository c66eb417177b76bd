// Package wordfmt converts identifiers between naming conventions.
//
// wordfmt translates machine-style identifiers such as configuration keys and
// enumeration constants into human-readable labels and back. The heavy lifting
// lives in sub-packages:
//
//   - wordformat: the eight supported formats, the conversion algorithm,
//     the capitalizer and the per-value override table
//   - wferrors: structured error types for errors.Is and errors.As
//   - generator: Go code generation for enum label tables
//
// # Supported Formats
//
//	lower-hyphen         lower-hyphen
//	lower_underscore     lower_underscore
//	lowerCamel           lowerCamel
//	UpperCamel           UpperCamel
//	UPPER_UNDERSCORE     UPPER_UNDERSCORE
//	CAPITALIZED_WORDS    Upper Word Name
//	UNCAPITALIZED_WORDS  upper word name
//	PHRASE               Upper word name
//
// # Quick Start
//
//	import "github.com/erraggy/wordfmt/wordformat"
//
//	label, err := wordformat.Convert(wordformat.UpperUnderscore, wordformat.Phrase, "ONE_TWO_THREE")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(label) // One two three
//
// Conversions are pure functions and safe for concurrent use.
//
// # Overrides
//
// Some values read badly when converted mechanically ("HTTP_URL" becomes
// "Http url"). An override table maps a declared value and a target format to
// literal text that wins over the computed conversion:
//
//	overrides, err := wordformat.NewOverrides(
//		wordformat.OverrideEntry{Value: "HTTP_URL", Target: wordformat.Phrase, Text: "HTTP URL"},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, _ := wordformat.NewConverter(wordformat.WithOverrides(overrides))
//	label, _ := c.Value("HTTP_URL", wordformat.Phrase) // HTTP URL
//
// # Command Line
//
// The wordfmt command exposes conversion, format listing, code generation and
// an MCP server:
//
//	wordfmt convert -from UPPER_UNDERSCORE -to PHRASE DARK_RED LIGHT_BLUE
//	wordfmt formats
//	wordfmt generate -type Color -package colors RED DARK_GREEN
//	wordfmt mcp
package wordfmt
