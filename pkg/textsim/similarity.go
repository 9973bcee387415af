// Package textsim provides string similarity scoring and loose normalization
// for noisy OCR/LLM-extracted text. Similarity is Levenshtein-based over
// Unicode code points; normalization folds full-width characters and drops
// whitespace and punctuation so that cosmetic differences between two
// extractions of the same exam do not read as disagreements.
package textsim

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/width"
)

// Similarity returns a score in [0, 1] where 1 means identical.
// The score is 1 - editDistance(a, b) / max(len(a), len(b)), with lengths
// and edit operations measured in code points, not bytes or grapheme
// clusters. Two empty strings are identical; one empty string scores 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	lenA := utf8Len(a)
	lenB := utf8Len(b)
	if lenA == 0 || lenB == 0 {
		return 0
	}

	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}

	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

// NormalizeLoose reduces a string to a loose comparison key: full-width
// characters are folded to their half-width forms, whitespace and Unicode
// punctuation are removed, and the remainder is lowercased. Two strings with
// equal loose keys differ only cosmetically.
func NormalizeLoose(s string) string {
	folded := width.Fold.String(s)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// utf8Len counts code points without allocating a rune slice.
func utf8Len(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
