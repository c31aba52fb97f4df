// SPDX-License-Identifier: MIT

package piglatin

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	vowelSuffix     = "hay"
	consonantSuffix = "ay"
)

// Words splits s into alternating runs of letters and non-letters.
// Joining the result reproduces s exactly.
func Words(s string) []string {
	var out []string
	start := 0
	inWord := false
	for i, r := range s {
		letter := unicode.IsLetter(r)
		if i == 0 {
			inWord = letter
			continue
		}
		if letter != inWord {
			out = append(out, s[start:i])
			start = i
			inWord = letter
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}

	return out
}

// ConvertWord applies the pig-latin rule to a single word.
// The empty string converts to itself.
func ConvertWord(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	if isVowel(first) {
		return word + vowelSuffix
	}

	return word[size:] + string(first) + consonantSuffix
}

// Convert rewrites every word of s and keeps the separators in place.
func Convert(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for _, tok := range Words(s) {
		r, _ := utf8.DecodeRuneInString(tok)
		if unicode.IsLetter(r) {
			b.WriteString(ConvertWord(tok))
		} else {
			b.WriteString(tok)
		}
	}

	return b.String()
}

// isVowel matches lowercase vowels only, so capitalised words take the
// consonant rule.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
}
