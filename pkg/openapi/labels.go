package openapi

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label turns a field name into a property title. Words are split on
// punctuation, lower-to-upper transitions, letter/digit transitions and the
// end of an acronym, so "userID" becomes "User ID" and "HTTPServer" becomes
// "HTTP Server". Acronyms keep their case.
func Label(name string) string {
	words := splitWords(name)
	titler := cases.Title(language.Und, cases.NoLower)
	for i, word := range words {
		words[i] = titler.String(word)
	}
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	runes := []rune(name)
	var words []string
	start := -1
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if wordBreak(runes, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

func wordBreak(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) != unicode.IsLetter(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur):
		// last capital of an acronym followed by a lowercase word
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	}
	return false
}
