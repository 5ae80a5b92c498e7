// Package textutil provides text folding for the product search column.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain decomposes, strips combining marks and recomposes.
// "Café Señor" -> "Cafe Senor" before lowercasing.
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s, strips diacritics and collapses runs of whitespace.
// Products store Fold(name + " " + description) in search_text so that free-text
// queries match regardless of case or accents.
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		// Fold is best-effort: a transform failure falls back to the raw input.
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
