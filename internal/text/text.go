// Package text provides tokenization, normalization and character n-gram helpers.
package text

import (
	"strings"
	"unicode/utf8"
)

// punctuation is the ASCII punctuation set: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func isPunctOrDigit(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return r < utf8.RuneSelf && strings.ContainsRune(punctuation, r)
}

// Normalize lowercases s, replaces ASCII punctuation and digits with spaces
// and splits the result on whitespace.
func Normalize(s string) []string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if isPunctOrDigit(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Fields(s)
}

// WordFrequency counts lowercased whitespace-separated words.
func WordFrequency(s string) map[string]int {
	freq := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		freq[w]++
	}
	return freq
}

// CountVowels counts the ASCII vowels in s, either case.
func CountVowels(s string) int {
	count := 0
	for _, r := range s {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			count++
		}
	}
	return count
}
