// Package wordformat converts identifiers between naming conventions.
//
// Import path: github.com/erraggy/wordfmt/wordformat
//
// # Formats
//
// [Format] is a closed set of eight conventions in two kinds. Case-style
// formats mark word boundaries with a separator rune or a case change:
//
//	LowerHyphen       lower-hyphen
//	LowerUnderscore   lower_underscore
//	LowerCamel        lowerCamel
//	UpperCamel        UpperCamel
//	UpperUnderscore   UPPER_UNDERSCORE
//
// Phrase-style formats separate words with blanks and differ only in
// capitalization:
//
//	CapitalizedWords    Upper Word Name
//	UncapitalizedWords  upper word name
//	Phrase              Upper word name
//
// # Conversion
//
// [Convert] (or [Format.To]) splits case-style input into lowercase words,
// starting a new word after '-' or '_' and at every lowercase-to-uppercase
// transition, then joins the words in the target convention. Phrase-style
// input is first uppercased with blanks turned into underscores and converted
// as UPPER_UNDERSCORE. Converting a format to itself returns the input
// unchanged.
//
//	s, _ := wordformat.Convert(wordformat.LowerCamel, wordformat.LowerHyphen, "oneTwoThree")
//	// s == "one-two-three"
//
// Conversion is best effort: input that does not follow its declared format
// still converts deterministically.
//
// # Overrides
//
// A [Converter] consults an [OverrideLookup] before converting a declared
// value. [Overrides] is the built-in implementation, constructed from
// entries, a map, or a YAML file via [LoadOverridesFile].
//
// # Concurrency
//
// Formats, Overrides and Converters are immutable. Every function in this
// package is safe for concurrent use.
package wordformat
