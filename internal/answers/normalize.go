package answers

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Normalize canonicalizes free-text input for comparison.
//
// Rules:
// - Surrounding whitespace is trimmed
// - Text is casefolded (Unicode-aware, so "Straße" and "STRASSE" agree)
// - Every rune that is not a letter, digit, or whitespace becomes a space,
//   except an apostrophe sitting between two word characters ("don't")
// - Runs of whitespace collapse to a single space
//
// Empty input yields empty output. Normalize never fails.
func Normalize(text string) string {
	folded := cases.Fold().String(strings.TrimSpace(text))
	runes := []rune(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case isApostrophe(r) && isWordRune(runes, i-1) && isWordRune(runes, i+1):
			// Keep contractions intact so "don't" does not match "dont".
			// Curly apostrophes fold to the straight form so both spellings
			// compare equal.
			b.WriteRune('\'')
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isWordRune(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return false
	}
	return unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])
}
