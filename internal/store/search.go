package store

import (
	"context"
	"sort"

	"github.com/rcliao/mlprimer/internal/model"
	"github.com/rcliao/mlprimer/internal/vecmath"
)

// Similarity returns the cosine similarity between the stored vectors of a and b.
func (s *SQLiteStore) Similarity(ctx context.Context, ns, a, b string) (float64, error) {
	ea, err := s.Get(ctx, ns, a)
	if err != nil {
		return 0, err
	}
	eb, err := s.Get(ctx, ns, b)
	if err != nil {
		return 0, err
	}
	return vecmath.CosineSimilarity(ea.Vector, eb.Vector), nil
}

// Nearest ranks every other word in the namespace by cosine similarity to
// p.Word, most similar first. Ties are broken by word.
func (s *SQLiteStore) Nearest(ctx context.Context, p NearestParams) ([]model.Neighbor, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}

	target, err := s.Get(ctx, p.NS, p.Word)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ns, word, vector, dims, created_at FROM embeddings WHERE ns = ? AND word != ?`,
		target.NS, target.Word)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Neighbor
	for rows.Next() {
		e, err := scanEmbedding(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, model.Neighbor{
			Word:       e.Word,
			Similarity: vecmath.CosineSimilarity(target.Vector, e.Vector),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].Word < results[j].Word
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
