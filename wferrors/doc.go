// Package wferrors provides structured error types for the wordfmt library.
//
// Import path: github.com/erraggy/wordfmt/wferrors
//
// # Error Types
//
//   - [ArgumentError]: missing or invalid source/target format arguments
//   - [ParseError]: malformed override files and unknown format names in them
//   - [ConfigError]: invalid options passed to constructors
//   - [GenerateError]: enum label code generation failures
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidArgument]: Matches any [ArgumentError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrGenerate]: Matches any [GenerateError]
//
// # Usage Examples
//
//	_, err := wordformat.Convert(wordformat.LowerCamel, wordformat.Unknown, "oneTwo")
//	if errors.Is(err, wferrors.ErrInvalidArgument) {
//	    // Handle the missing target format
//	}
//
// Extract details with errors.As():
//
//	var parseErr *wferrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("override file %s, line %d\n", parseErr.Path, parseErr.Line)
//	}
package wferrors
