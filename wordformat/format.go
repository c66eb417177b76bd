package wordformat

import (
	"fmt"
	"strings"

	"github.com/erraggy/wordfmt/internal/naming"
	"github.com/erraggy/wordfmt/wferrors"
)

// Format identifies a naming convention for multi-word identifiers.
// The zero value is Unknown and is not a valid format.
type Format int

const (
	// Unknown is the zero value and never a valid conversion argument.
	Unknown Format = iota

	// LowerHyphen is the hyphenated variable naming convention, e.g. "lower-hyphen".
	LowerHyphen

	// LowerUnderscore is the C++ variable naming convention, e.g. "lower_underscore".
	LowerUnderscore

	// LowerCamel is the Java variable naming convention, e.g. "lowerCamel".
	LowerCamel

	// UpperCamel is the Java and Go type naming convention, e.g. "UpperCamel".
	UpperCamel

	// UpperUnderscore is the constant naming convention, e.g. "UPPER_UNDERSCORE".
	UpperUnderscore

	// CapitalizedWords is blank-separated words, each capitalized, e.g. "Upper Word Name".
	CapitalizedWords

	// UncapitalizedWords is blank-separated lowercase words, e.g. "upper word name".
	UncapitalizedWords

	// Phrase is blank-separated lowercase words with the first one capitalized,
	// e.g. "Upper word name".
	Phrase
)

// Kind partitions formats by how they mark word boundaries.
type Kind int

const (
	// KindUnknown is reported for invalid formats.
	KindUnknown Kind = iota
	// KindCase formats mark boundaries with a separator rune or a case change.
	KindCase
	// KindPhrase formats separate words with blanks and differ in capitalization.
	KindPhrase
)

// String returns "case", "phrase" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindCase:
		return "case"
	case KindPhrase:
		return "phrase"
	default:
		return "unknown"
	}
}

// capitalization is the policy a phrase format applies to its words.
type capitalization int

const (
	capitalizeNone capitalization = iota
	capitalizeEvery
	capitalizeFirst
)

type descriptor struct {
	name    string
	goName  string
	kind    Kind
	example string
	// join renders lowercase words in a case-style format.
	join func(words []string) string
	// policy is the capitalization of a phrase-style format.
	policy capitalization
}

var descriptors = [...]descriptor{
	Unknown: {},
	LowerHyphen: {
		name: "lower-hyphen", goName: "LowerHyphen", kind: KindCase,
		example: "lower-hyphen", join: naming.JoinKebab,
	},
	LowerUnderscore: {
		name: "lower_underscore", goName: "LowerUnderscore", kind: KindCase,
		example: "lower_underscore", join: naming.JoinSnake,
	},
	LowerCamel: {
		name: "lowerCamel", goName: "LowerCamel", kind: KindCase,
		example: "lowerCamel", join: naming.JoinCamel,
	},
	UpperCamel: {
		name: "UpperCamel", goName: "UpperCamel", kind: KindCase,
		example: "UpperCamel", join: naming.JoinPascal,
	},
	UpperUnderscore: {
		name: "UPPER_UNDERSCORE", goName: "UpperUnderscore", kind: KindCase,
		example: "UPPER_UNDERSCORE", join: naming.JoinScreamingSnake,
	},
	CapitalizedWords: {
		name: "CAPITALIZED_WORDS", goName: "CapitalizedWords", kind: KindPhrase,
		example: "Upper Word Name", policy: capitalizeEvery,
	},
	UncapitalizedWords: {
		name: "UNCAPITALIZED_WORDS", goName: "UncapitalizedWords", kind: KindPhrase,
		example: "upper word name", policy: capitalizeNone,
	},
	Phrase: {
		name: "PHRASE", goName: "Phrase", kind: KindPhrase,
		example: "Upper word name", policy: capitalizeFirst,
	},
}

// Formats returns every valid format in declaration order.
func Formats() []Format {
	return []Format{
		LowerHyphen,
		LowerUnderscore,
		LowerCamel,
		UpperCamel,
		UpperUnderscore,
		CapitalizedWords,
		UncapitalizedWords,
		Phrase,
	}
}

// IsValid reports whether f is one of the eight supported formats.
func (f Format) IsValid() bool {
	return f > Unknown && int(f) < len(descriptors)
}

// Kind returns whether f is a case-style or phrase-style format.
func (f Format) Kind() Kind {
	if !f.IsValid() {
		return KindUnknown
	}
	return descriptors[f].kind
}

// IsPhrase reports whether f separates words with blanks.
func (f Format) IsPhrase() bool {
	return f.Kind() == KindPhrase
}

// IsCase reports whether f marks words with separators or case changes.
func (f Format) IsCase() bool {
	return f.Kind() == KindCase
}

// String returns the conventional name of the format, such as "lowerCamel"
// or "UPPER_UNDERSCORE". Invalid formats render as "Format(n)".
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return descriptors[f].name
}

// GoName returns the name of the Go constant for f, such as "LowerCamel".
func (f Format) GoName() string {
	if !f.IsValid() {
		return ""
	}
	return descriptors[f].goName
}

// Example returns a sample identifier written in f.
func (f Format) Example() string {
	if !f.IsValid() {
		return ""
	}
	return descriptors[f].example
}

// aliases maps normalized spellings to formats.
// Keys are lowercase with separators and blanks removed.
var aliases = map[string]Format{
	"lowerhyphen":        LowerHyphen,
	"kebab":              LowerHyphen,
	"kebabcase":          LowerHyphen,
	"lowerunderscore":    LowerUnderscore,
	"snake":              LowerUnderscore,
	"snakecase":          LowerUnderscore,
	"lowercamel":         LowerCamel,
	"camel":              LowerCamel,
	"camelcase":          LowerCamel,
	"uppercamel":         UpperCamel,
	"pascal":             UpperCamel,
	"pascalcase":         UpperCamel,
	"upperunderscore":    UpperUnderscore,
	"constant":           UpperUnderscore,
	"screamingsnake":     UpperUnderscore,
	"screamingsnakecase": UpperUnderscore,
	"capitalizedwords":   CapitalizedWords,
	"title":              CapitalizedWords,
	"titlecase":          CapitalizedWords,
	"uncapitalizedwords": UncapitalizedWords,
	"words":              UncapitalizedWords,
	"lowerwords":         UncapitalizedWords,
	"phrase":             Phrase,
	"sentence":           Phrase,
	"sentencecase":       Phrase,
}

// ParseFormat resolves a format name. It accepts the names returned by
// String, the Go constant names and common aliases such as "kebab", "snake",
// "camel", "pascal", "constant", "title", "words" and "sentence". Matching
// ignores case, hyphens, underscores and blanks.
func ParseFormat(name string) (Format, error) {
	key := strings.Map(func(r rune) rune {
		if naming.IsSeparator(r) || r == ' ' {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	if f, ok := aliases[key]; ok {
		return f, nil
	}
	return Unknown, &wferrors.ArgumentError{
		Argument: "format",
		Value:    name,
		Message:  "unknown format; valid formats: " + strings.Join(FormatNames(), ", "),
	}
}

// MustParseFormat is like ParseFormat but panics on unknown names.
// It is intended for package-level variables and tests.
func MustParseFormat(name string) Format {
	f, err := ParseFormat(name)
	if err != nil {
		panic(err)
	}
	return f
}

// FormatNames returns the String form of every valid format.
func FormatNames() []string {
	formats := Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, f.String())
	}
	return names
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, &wferrors.ArgumentError{Argument: "format", Value: int(f), Message: "cannot marshal invalid format"}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseFormat.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
