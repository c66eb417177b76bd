package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsSeparator reports whether r separates words in a case-style identifier.
func IsSeparator(r rune) bool {
	return r == '-' || r == '_'
}

// Split breaks s into lowercase words.
// A new word starts after a separator rune, which is dropped, or where a
// lowercase rune is followed by an uppercase one.
// Consecutive separators yield empty words, and the empty string yields a
// single empty word, so joining the result with the original separator
// reproduces s for lowercase separator-delimited input.
// Invalid UTF-8 bytes are decoded as U+FFFD and written out as such.
// Example: "oneTwo_three" -> ["one", "two", "three"]
// Example: "aBC" -> ["a", "bc"]
func Split(s string) []string {
	words := make([]string, 0, 4)
	var word strings.Builder
	prevLower := false

	for _, r := range s {
		if IsSeparator(r) {
			words = append(words, word.String())
			word.Reset()
			prevLower = false
			continue
		}
		if prevLower && unicode.IsUpper(r) {
			words = append(words, word.String())
			word.Reset()
		}
		word.WriteRune(unicode.ToLower(r))
		prevLower = unicode.IsLower(r)
	}

	return append(words, word.String())
}

// JoinKebab joins words with hyphens, lowercase.
// Example: ["user", "profile"] -> "user-profile"
func JoinKebab(words []string) string {
	return joinCased(words, "-", strings.ToLower)
}

// JoinSnake joins words with underscores, lowercase.
// Example: ["user", "profile"] -> "user_profile"
func JoinSnake(words []string) string {
	return joinCased(words, "_", strings.ToLower)
}

// JoinScreamingSnake joins words with underscores, uppercase.
// Example: ["user", "profile"] -> "USER_PROFILE"
func JoinScreamingSnake(words []string) string {
	return joinCased(words, "_", strings.ToUpper)
}

// JoinWords joins words with single blanks, lowercase.
// Example: ["user", "profile"] -> "user profile"
func JoinWords(words []string) string {
	return joinCased(words, " ", strings.ToLower)
}

// JoinPascal concatenates words, each one capitalized.
// Example: ["user", "profile"] -> "UserProfile"
func JoinPascal(words []string) string {
	return joinCamel(words, true)
}

// JoinCamel concatenates words, the first lowercase and the rest capitalized.
// Example: ["user", "profile"] -> "userProfile"
func JoinCamel(words []string) string {
	return joinCamel(words, false)
}

func joinCased(words []string, sep string, caseFn func(string) string) string {
	var result strings.Builder
	for i, w := range words {
		if i > 0 {
			result.WriteString(sep)
		}
		result.WriteString(caseFn(w))
	}
	return result.String()
}

func joinCamel(words []string, upperFirst bool) string {
	var result strings.Builder
	for i, w := range words {
		w = strings.ToLower(w)
		if i > 0 || upperFirst {
			w = ToTitleCase(w)
		}
		result.WriteString(w)
	}
	return result.String()
}

// ToSnakeCase converts a case-style identifier to snake_case.
// Example: "UserProfile" -> "user_profile"
func ToSnakeCase(s string) string {
	return JoinSnake(Split(s))
}

// ToTitleCase converts the first rune to title case and leaves the rest alone.
// Invalid UTF-8 at the start of s is returned unchanged.
// Example: "hello" -> "Hello"
// Example: "cAt" -> "CAt"
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}

// TitleWords title-cases the first rune of every blank-separated word,
// leaving all other runes and the whitespace itself untouched.
// Example: "one two  three" -> "One Two  Three"
func TitleWords(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	startOfWord := true

	for _, r := range s {
		if unicode.IsSpace(r) {
			result.WriteRune(r)
			startOfWord = true
			continue
		}
		if startOfWord {
			r = unicode.ToTitle(r)
			startOfWord = false
		}
		result.WriteRune(r)
	}

	return result.String()
}
