package store

import (
	"context"

	"github.com/rcliao/mlprimer/internal/model"
)

// Import stores every embedding under ns. An embedding's own NS wins when set.
// Returns the number stored before the first failure.
func (s *SQLiteStore) Import(ctx context.Context, ns string, embeddings []model.Embedding) (int, error) {
	imported := 0
	for _, e := range embeddings {
		target := e.NS
		if target == "" {
			target = ns
		}
		if _, err := s.Put(ctx, PutParams{NS: target, Word: e.Word, Vector: e.Vector}); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// ExportAll returns every stored embedding, optionally filtered by namespace.
func (s *SQLiteStore) ExportAll(ctx context.Context, ns string) ([]model.Embedding, error) {
	query := `SELECT id, ns, word, vector, dims, created_at FROM embeddings`
	var args []any
	if ns != "" {
		query += ` WHERE ns = ?`
		args = append(args, ns)
	}
	query += ` ORDER BY ns, word`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Embedding
	for rows.Next() {
		e, err := scanEmbedding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
