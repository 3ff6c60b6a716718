// Package activation implements the prompt-to-skills matching pipeline:
// normalize the prompt, extract lexical signals, score them against manifest
// triggers, rank the results, and format the winners for context injection.
// Every step is a pure function of its inputs, so a given prompt and manifest
// always produce identical output.
package activation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Normalize canonicalizes prompt text for matching: Unicode case folding,
// then stripping every rune that is not a letter, digit, space, dot, or
// slash, then collapsing whitespace runs to single spaces. Dots and slashes
// survive so file paths and extensions stay recognizable. Normalize is
// idempotent and never fails; empty input yields empty output.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	folded := cases.Fold().String(s)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == '/':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
