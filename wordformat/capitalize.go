package wordformat

import "github.com/erraggy/wordfmt/internal/naming"

// Capitalize changes the first rune of s to title case; no other runes are
// changed.
//
//	Capitalize("")    = ""
//	Capitalize("cat") = "Cat"
//	Capitalize("cAt") = "CAt"
func Capitalize(s string) string {
	return naming.ToTitleCase(s)
}

// CapitalizePtr is Capitalize for optional strings: a nil input yields nil.
func CapitalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Capitalize(*s)
	return &out
}
