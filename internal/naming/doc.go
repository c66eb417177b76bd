// Package naming provides the word segmentation and joining primitives behind
// wordfmt's case-style formats.
//
// Split breaks an identifier into lowercase words at separator runes ('-' and
// '_') and at lowercase-to-uppercase transitions. The Join* functions render a
// word list in one convention each: kebab, snake, screaming snake, camel,
// Pascal and blank-separated words. The To* functions combine both steps for
// callers that hold a single string.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
