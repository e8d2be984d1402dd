// Package language guesses a review's language. The result is advisory
// metadata only; no engine branches on it.
package language

import (
	"strings"

	"github.com/spacesedan/revi/internal/lexicon"
)

const (
	English  = "en"
	Romanian = "ro"
)

// Detect returns "ro" when Romanian diacritics or common Romanian words are
// present, and "en" otherwise. Diacritic-free Romanian written with common
// English-looking words will be misdetected, which is acceptable for a hint.
func Detect(text string) string {
	for _, r := range text {
		for _, d := range lexicon.RomanianDiacritics {
			if r == d {
				return Romanian
			}
		}
	}

	lower := strings.ToLower(text)
	for _, word := range lexicon.RomanianWords {
		if strings.Contains(lower, word) {
			return Romanian
		}
	}
	return English
}
