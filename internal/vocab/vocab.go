// Package vocab builds word→index vocabularies and bag-of-words vectors.
package vocab

import (
	"sort"
	"strings"
)

// Vocabulary maps each known word to its column index.
type Vocabulary map[string]int

// Build collects the distinct whitespace-separated words of sentences and
// numbers them 0..k-1 in lexicographic order. Words are case-sensitive.
func Build(sentences []string) Vocabulary {
	seen := make(map[string]struct{})
	for _, s := range sentences {
		for _, w := range strings.Fields(s) {
			seen[w] = struct{}{}
		}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)

	v := make(Vocabulary, len(words))
	for i, w := range words {
		v[w] = i
	}
	return v
}

// Words returns the vocabulary in index order.
func (v Vocabulary) Words() []string {
	words := make([]string, len(v))
	for w, i := range v {
		words[i] = w
	}
	return words
}

// Vectorize counts how many times each vocabulary word occurs in sentence.
// Words outside the vocabulary are ignored.
func (v Vocabulary) Vectorize(sentence string) []int {
	vec := make([]int, len(v))
	for _, w := range strings.Fields(sentence) {
		if i, ok := v[w]; ok {
			vec[i]++
		}
	}
	return vec
}
