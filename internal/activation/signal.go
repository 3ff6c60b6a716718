package activation

import (
	"regexp"
	"strings"
)

// extensionPattern captures a trailing file extension: a non-empty stem, a
// dot, then 1-10 alphanumerics. Bare dotfiles like ".env" have no stem and
// yield no extension signal.
var extensionPattern = regexp.MustCompile(`^.+\.([a-z0-9]{1,10})$`)

// SignalSet holds the lexical signals extracted from one normalized prompt.
// Text keeps the full normalized prompt so phrase triggers can match across
// token boundaries. A SignalSet is built once per prompt and then read-only.
type SignalSet struct {
	Text       string
	Keywords   map[string]bool
	Paths      map[string]bool
	Extensions map[string]bool
}

// ExtractSignals tokenizes a normalized prompt and classifies each token.
// Every token is a keyword signal; tokens containing a slash are also path
// signals; tokens ending in a file extension also yield the extension
// (stored without the dot). Trailing dots are sentence punctuation and are
// trimmed before classification.
func ExtractSignals(normalized string) SignalSet {
	sig := SignalSet{
		Text:       normalized,
		Keywords:   make(map[string]bool),
		Paths:      make(map[string]bool),
		Extensions: make(map[string]bool),
	}

	for _, token := range strings.Fields(normalized) {
		token = strings.TrimRight(token, ".")
		if token == "" {
			continue
		}

		sig.Keywords[token] = true

		if strings.Contains(token, "/") {
			sig.Paths[token] = true
		}

		if m := extensionPattern.FindStringSubmatch(token); m != nil {
			sig.Extensions[m[1]] = true
		}
	}

	return sig
}

// HasKeyword reports whether the prompt contained the given token.
func (s SignalSet) HasKeyword(term string) bool {
	return s.Keywords[term]
}

// HasExtension reports whether the prompt mentioned a file with the given
// extension (without the dot).
func (s SignalSet) HasExtension(ext string) bool {
	return s.Extensions[ext]
}

// ContainsPhrase reports whether the normalized prompt contains the phrase
// as a substring. Empty phrases never match.
func (s SignalSet) ContainsPhrase(phrase string) bool {
	return phrase != "" && strings.Contains(s.Text, phrase)
}
