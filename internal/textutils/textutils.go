// Package textutils provides text normalization helpers for content
// extracted from statement PDFs.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases and strips diacritics so "Libellé" compares equal to
// "libelle". Header keywords and extracted header cells go through the
// same folding before matching.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// CollapseSpaces trims a string and squeezes internal whitespace runs to
// a single space. Labels reassembled from positioned glyph runs often
// carry doubled spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
