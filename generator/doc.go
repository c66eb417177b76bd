// Package generator renders Go enumeration types with precomputed labels.
//
// Given a type name and the values of an enumeration as they are declared
// (typically UPPER_UNDERSCORE constant names), the generator emits a Go file
// holding one constant per value, a String method that returns the declared
// name and a Label method that returns the value in any requested
// wordformat.Format. Labels are computed once at generation time, and
// overrides take precedence over the computed text.
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithTypeName("Color"),
//		generator.WithPackageName("colors"),
//		generator.WithValues("RED", "DARK_GREEN", "HTTP_BLUE"),
//		generator.WithTargets(wordformat.Phrase, wordformat.LowerHyphen),
//		generator.WithOverridesFile("labels.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./colors"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.TypeName = "Color"
//	g.PackageName = "colors"
//	result, _ := g.Generate([]string{"RED", "DARK_GREEN"})
//
// # Generated Code
//
// For the values RED and DARK_GREEN the output looks like:
//
//	type Color int
//
//	const (
//		ColorRed Color = iota
//		ColorDarkGreen
//	)
//
//	func (v Color) String() string                      // "DARK_GREEN"
//	func (v Color) Label(f wordformat.Format) string    // "Dark green" for Phrase
//	func ColorValues() []Color
//
// Label returns the empty string for formats that were not generated.
// Constant names are the type name followed by the value in UpperCamel, so
// values must convert to valid and distinct Go identifiers.
//
// # Errors
//
// Invalid input fails with a *wferrors.GenerateError (matching
// wferrors.ErrGenerate): an empty value list, duplicate values, values whose
// constants collide or are not valid identifiers, and invalid type or package
// names. Option misuse fails with a *wferrors.ConfigError.
package generator
