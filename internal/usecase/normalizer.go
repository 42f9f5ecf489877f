package usecase

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// stopWords are tokens excluded from matching because they carry no
// discriminative meaning in this domain. The same set applies to query terms
// and catalog titles; normalization on both sides must stay identical or the
// matching contract breaks.
var stopWords = map[string]struct{}{
	"green": {},
	"fresh": {},
	"for":   {},
	"with":  {},
	"on":    {},
	"in":    {},
	"and":   {},
}

// Normalize turns raw text into its canonical token sequence: split on runs
// of non-word characters, lowercase, drop stop words, stem to a root form.
// Empty input yields an empty (nil) sequence. Pure: identical input always
// yields identical output.
func Normalize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var tokens []string
	for _, field := range fields {
		token := strings.ToLower(field)
		if _, ok := stopWords[token]; ok {
			continue
		}
		tokens = append(tokens, snowballeng.Stem(token, false))
	}

	return tokens
}

// NormalizeAll normalizes every term and concatenates the results in order.
func NormalizeAll(terms []string) []string {
	var tokens []string
	for _, term := range terms {
		tokens = append(tokens, Normalize(term)...)
	}
	return tokens
}
