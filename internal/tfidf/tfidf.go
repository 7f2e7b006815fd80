// Package tfidf computes TF-IDF term weights over small document collections.
//
// TF(t, d)  = count(t in d) / len(d)
// IDF(t)    = ln(N / df(t))
// score     = TF × IDF
//
// Documents are tokenized on whitespace with no further normalization.
package tfidf

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/rcliao/mlprimer/internal/dataset"
)

// TermFrequency returns count/len for every word of doc.
func TermFrequency(doc string) map[string]float64 {
	words := strings.Fields(doc)
	tf := make(map[string]float64)
	for _, w := range words {
		tf[w]++
	}
	total := float64(len(words))
	for w, c := range tf {
		tf[w] = c / total
	}
	return tf
}

// InverseDocumentFrequency returns ln(N/df) for every word in docs, where df
// counts the documents containing the word at least once.
func InverseDocumentFrequency(docs []string) map[string]float64 {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, w := range strings.Fields(doc) {
			if !seen[w] {
				seen[w] = true
				df[w]++
			}
		}
	}
	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for w, c := range df {
		idf[w] = math.Log(n / float64(c))
	}
	return idf
}

// Matrix holds one row of scores per document and one column per term.
type Matrix struct {
	Terms  []string    `json:"terms"`
	Docs   []string    `json:"docs"`
	Scores [][]float64 `json:"scores"`

	index map[string]int
}

// Compute builds the TF-IDF matrix of docs. Terms are sorted
// lexicographically and rows are labelled doc_0, doc_1, ...
func Compute(docs []string) *Matrix {
	idf := InverseDocumentFrequency(docs)

	terms := make([]string, 0, len(idf))
	for w := range idf {
		terms = append(terms, w)
	}
	sort.Strings(terms)

	m := &Matrix{
		Terms:  terms,
		Docs:   make([]string, len(docs)),
		Scores: make([][]float64, len(docs)),
		index:  make(map[string]int, len(terms)),
	}
	for j, w := range terms {
		m.index[w] = j
	}

	for i, doc := range docs {
		m.Docs[i] = fmt.Sprintf("doc_%d", i)
		row := make([]float64, len(terms))
		for w, tf := range TermFrequency(doc) {
			row[m.index[w]] = tf * idf[w]
		}
		m.Scores[i] = row
	}
	return m
}

// Score returns the weight of term in document doc, 0 if the term is unknown.
func (m *Matrix) Score(doc int, term string) float64 {
	j, ok := m.index[term]
	if !ok {
		return 0
	}
	return m.Scores[doc][j]
}

// TermScore pairs a term with its weight.
type TermScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Top returns the k highest-weighted terms of document doc, skipping zero
// scores. Ties keep column order. k <= 0 returns all non-zero terms.
func (m *Matrix) Top(doc, k int) []TermScore {
	var out []TermScore
	for j, s := range m.Scores[doc] {
		if s != 0 {
			out = append(out, TermScore{Term: m.Terms[j], Score: s})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// FromColumn computes TF-IDF over the named column of a CSV table.
func FromColumn(r io.Reader, column string) (*Matrix, error) {
	docs, err := dataset.ReadColumn(r, column)
	if err != nil {
		return nil, err
	}
	return Compute(docs), nil
}
