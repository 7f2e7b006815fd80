// Package model defines the stored data types.
package model

import "time"

// DefaultNS is the namespace used when none is given.
const DefaultNS = "default"

// Embedding is a word vector stored in a named table (namespace).
type Embedding struct {
	ID        string    `json:"id"`
	NS        string    `json:"ns"`
	Word      string    `json:"word"`
	Vector    []float64 `json:"vector"`
	Dims      int       `json:"dims"`
	CreatedAt time.Time `json:"created_at"`
}

// Neighbor is a stored word ranked by similarity to a query word.
type Neighbor struct {
	Word       string  `json:"word"`
	Similarity float64 `json:"similarity"`
}
