// Package tokenizer turns raw review text into normalized word tokens.
// The pipeline is: printable-ASCII pre-filter, boundary split, lowercase,
// word-shape filter, stop-word filter. Output order follows source order so
// repeated runs over the same input are byte-identical.
package tokenizer

import (
	"regexp"
	"strings"
)

// boundaryRegex splits candidate tokens on whitespace/punctuation boundaries.
// Hyphens and apostrophes stay inside candidates so the shape filter can see
// them ("it's" must reach the filter intact, not as "it" + "s").
var boundaryRegex = regexp.MustCompile(`[^a-zA-Z0-9'-]+`)

// shapeRegex accepts one alphabetic segment, optionally two joined by a
// single hyphen. Digits, inner apostrophes, and chained hyphens all fail.
var shapeRegex = regexp.MustCompile(`^[a-z]+(-[a-z]+)?$`)

// Tokenize converts raw text into a slice of normalized tokens.
// It strips non-ASCII bytes, splits on word boundaries, lowercases, applies
// the word-shape filter, and drops members of stops. A nil stops set
// disables stop-word filtering. Empty or fully non-ASCII input yields an
// empty slice, never an error.
func Tokenize(text string, stops StopwordSet) []string {
	cleaned := stripNonASCII(text)
	lowerText := strings.ToLower(cleaned)

	split := boundaryRegex.Split(lowerText, -1)

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, s := range split {
		token := strings.Trim(s, "'-") // shed surrounding quotes/dashes, keep inner ones
		if token == "" {
			continue
		}
		if !shapeRegex.MatchString(token) {
			continue
		}
		if stops.Contains(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// stripNonASCII removes every byte outside the printable ASCII range before
// tokenization. Tab, newline, and carriage return survive as boundaries;
// everything else outside 0x20-0x7E is dropped, irreversibly.
func stripNonASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= 0x20 && c <= 0x7E) || c == '\t' || c == '\n' || c == '\r' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
