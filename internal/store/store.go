// Package store provides the embedding table interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/mlprimer/internal/model"
)

// ErrNotFound is returned when a word has no stored vector.
var ErrNotFound = errors.New("word not found")

// PutParams holds parameters for storing a word vector.
type PutParams struct {
	NS     string
	Word   string
	Vector []float64
}

// ListParams holds parameters for listing stored vectors.
type ListParams struct {
	NS    string
	Limit int
}

// NearestParams holds parameters for a nearest-neighbour lookup.
type NearestParams struct {
	NS    string
	Word  string
	Limit int
}

// Store defines the embedding table interface.
type Store interface {
	// Put stores or replaces the vector for a word.
	Put(ctx context.Context, p PutParams) (*model.Embedding, error)

	// Get retrieves the vector for a word. Wraps ErrNotFound when absent.
	Get(ctx context.Context, ns, word string) (*model.Embedding, error)

	// List lists stored vectors ordered by word.
	List(ctx context.Context, p ListParams) ([]model.Embedding, error)

	// Rm deletes a word.
	Rm(ctx context.Context, ns, word string) error

	// Similarity returns the cosine similarity of two stored words.
	Similarity(ctx context.Context, ns, a, b string) (float64, error)

	// Nearest ranks the other words of a namespace by similarity to p.Word.
	Nearest(ctx context.Context, p NearestParams) ([]model.Neighbor, error)

	// Close closes the store.
	Close() error
}

func nsOrDefault(ns string) string {
	if ns == "" {
		return model.DefaultNS
	}
	return ns
}
