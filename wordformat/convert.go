package wordformat

import (
	"strings"

	"github.com/erraggy/wordfmt/internal/naming"
	"github.com/erraggy/wordfmt/wferrors"
)

// Convert converts s from the source format to the target format.
//
// A best-effort approach is taken: if s does not conform to source, the
// result is still deterministic but carries no correctness guarantee.
// Converting a format to itself returns s unchanged.
//
// Phrase-style input is first normalized to UPPER_UNDERSCORE (uppercased,
// blanks replaced by underscores) and converted from there, so conversions
// between two different phrase formats lose the original capitalization.
//
// The only errors are *wferrors.ArgumentError values for an invalid source
// or target format.
//
// Example:
//
//	label, err := wordformat.Convert(wordformat.UpperUnderscore, wordformat.Phrase, "ONE_TWO_THREE")
//	// label == "One two three"
func Convert(source, target Format, s string) (string, error) {
	if !target.IsValid() {
		return "", &wferrors.ArgumentError{Argument: "target", Value: target, Message: "a valid target format is required"}
	}
	if !source.IsValid() {
		return "", &wferrors.ArgumentError{Argument: "source", Value: source, Message: "a valid source format is required"}
	}
	return convert(source, target, s), nil
}

// To converts s from f to target. It is equivalent to Convert(f, target, s).
func (f Format) To(target Format, s string) (string, error) {
	return Convert(f, target, s)
}

// convert assumes both formats are valid.
func convert(source, target Format, s string) string {
	if source == target {
		return s
	}
	if source.IsPhrase() {
		pivot := strings.ToUpper(strings.ReplaceAll(s, " ", "_"))
		return convert(UpperUnderscore, target, pivot)
	}

	return render(naming.Split(s), target)
}

// render joins lowercase words in target.
func render(words []string, target Format) string {
	d := descriptors[target]
	if d.kind == KindCase {
		return d.join(words)
	}

	text := naming.JoinWords(words)
	switch d.policy {
	case capitalizeEvery:
		return naming.TitleWords(text)
	case capitalizeFirst:
		return Capitalize(text)
	default:
		return text
	}
}
