// Package moderation pre-screens submissions against a blocklist
// before any classifier call is spent on them. Matching is resistant
// to casing, punctuation noise and common leet-speak substitutions.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Screener struct {
	matcher *goahocorasick.Machine
}

// NewScreener initializes the Aho-Corasick automaton with a normalized
// version of the provided blocklist. An empty blocklist yields a
// screener that never matches.
func NewScreener(blockedWords []string) (Screener, error) {
	if len(blockedWords) == 0 {
		return Screener{}, nil
	}

	patterns := make([][]rune, len(blockedWords))
	for i, word := range blockedWords {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Screener{}, err
	}
	return Screener{matcher: m}, nil
}

// Screen returns the blocklist terms found in the text, in normalized
// form. An empty result means the text may proceed to classification.
func (s *Screener) Screen(text string) []string {
	if s.matcher == nil {
		return nil
	}

	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return nil
	}

	spans := s.matcher.MultiPatternSearch(normalized, false)
	found := make([]string, 0, len(spans))
	for _, span := range spans {
		found = append(found, string(span.Word))
	}
	return found
}

// normalizeRunes applies simplification and noise removal to a slice of runes.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common Leet speak characters back to their standard alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
