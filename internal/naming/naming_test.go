package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		// Empty and single characters
		{name: "empty string", input: "", want: []string{""}},
		{name: "single lowercase letter", input: "a", want: []string{"a"}},
		{name: "single uppercase letter", input: "A", want: []string{"a"}},
		{name: "single digit", input: "1", want: []string{"1"}},

		// Separators
		{name: "hyphen", input: "one-two-three", want: []string{"one", "two", "three"}},
		{name: "underscore", input: "one_two_three", want: []string{"one", "two", "three"}},
		{name: "upper underscore", input: "ONE_TWO_THREE", want: []string{"one", "two", "three"}},
		{name: "mixed separators", input: "one-two_three", want: []string{"one", "two", "three"}},
		{name: "double underscore keeps empty word", input: "a__b", want: []string{"a", "", "b"}},
		{name: "leading underscore", input: "_private", want: []string{"", "private"}},
		{name: "trailing hyphen", input: "value-", want: []string{"value", ""}},

		// Case transitions
		{name: "lowerCamel", input: "oneTwoThree", want: []string{"one", "two", "three"}},
		{name: "UpperCamel", input: "OneTwoThree", want: []string{"one", "two", "three"}},
		{name: "ambiguous casing", input: "aBC", want: []string{"a", "bc"}},
		{name: "all caps has no transition", input: "API", want: []string{"api"}},
		{name: "acronym prefix", input: "HTTPServer", want: []string{"httpserver"}},
		{name: "digit does not end a word", input: "v2Api", want: []string{"v2api"}},
		{name: "separator resets transition", input: "a_B", want: []string{"a", "b"}},

		// Unicode characters
		{name: "unicode camel", input: "überUser", want: []string{"über", "user"}},
		{name: "invalid utf8 becomes replacement rune", input: "\xff\xfeabc", want: []string{"\uFFFD\uFFFDabc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			assert.Equal(t, tt.want, got, "Split(%q)", tt.input)
		})
	}
}

func TestJoin(t *testing.T) {
	words := []string{"one", "two", "three"}

	assert.Equal(t, "one-two-three", JoinKebab(words))
	assert.Equal(t, "one_two_three", JoinSnake(words))
	assert.Equal(t, "ONE_TWO_THREE", JoinScreamingSnake(words))
	assert.Equal(t, "one two three", JoinWords(words))
	assert.Equal(t, "OneTwoThree", JoinPascal(words))
	assert.Equal(t, "oneTwoThree", JoinCamel(words))

	t.Run("mixed case words are normalized", func(t *testing.T) {
		mixed := []string{"ONE", "tWo"}
		assert.Equal(t, "one-two", JoinKebab(mixed))
		assert.Equal(t, "oneTwo", JoinCamel(mixed))
		assert.Equal(t, "OneTwo", JoinPascal(mixed))
	})

	t.Run("empty word list", func(t *testing.T) {
		assert.Equal(t, "", JoinKebab(nil))
		assert.Equal(t, "", JoinCamel(nil))
	})

	t.Run("single empty word", func(t *testing.T) {
		assert.Equal(t, "", JoinScreamingSnake([]string{""}))
		assert.Equal(t, "", JoinPascal([]string{""}))
	})
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"UserProfile", "user_profile"},
		{"api-client", "api_client"},
		{"getUserById", "get_user_by_id"},
		{"HttpStatus", "http_status"},
		{"a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.input), "ToSnakeCase(%q)", tt.input)
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "lowercase word", input: "cat", want: "Cat"},
		{name: "rest untouched", input: "cAt", want: "CAt"},
		{name: "already title", input: "Cat", want: "Cat"},
		{name: "leading digit", input: "1st", want: "1st"},
		{name: "leading space", input: " cat", want: " cat"},
		{name: "whitespace only", input: "   ", want: "   "},
		{name: "unicode", input: "über", want: "Über"},
		{name: "title case digraph", input: "ǆemal", want: "ǅemal"},
		{name: "invalid utf8", input: "\xffabc", want: "\xffabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTitleCase(tt.input), "ToTitleCase(%q)", tt.input)
		})
	}
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"one two three", "One Two Three"},
		{"one  two", "One  Two"},
		{" leading", " Leading"},
		{"tab\tseparated", "Tab\tSeparated"},
		{"keep REST", "Keep REST"},
		{"2fa code", "2fa Code"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleWords(tt.input), "TitleWords(%q)", tt.input)
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		join  func([]string) string
	}{
		{"alpha-beta", JoinKebab},
		{"alpha--beta", JoinKebab},
		{"-lead", JoinKebab},
		{"trail-", JoinKebab},
		{"alpha__beta", JoinSnake},
		{"_private", JoinSnake},
		{"ALPHA__BETA", JoinScreamingSnake},
		{"x", JoinSnake},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.input, tt.join(Split(tt.input)), "round trip of %q", tt.input)
	}
}
