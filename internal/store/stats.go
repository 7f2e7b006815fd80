package store

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string           `json:"db_path"`
	DBSizeBytes int64            `json:"db_size_bytes"`
	DBSize      string           `json:"db_size"`
	TotalWords  int              `json:"total_words"`
	Namespaces  []NamespaceStats `json:"namespaces"`
}

// NamespaceStats holds per-namespace counts.
type NamespaceStats struct {
	NS    string `json:"ns"`
	Words int    `json:"words"`
	Dims  int    `json:"dims"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}
	st.DBSize = humanize.Bytes(uint64(st.DBSizeBytes))

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM embeddings`).Scan(&st.TotalWords); err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT ns, COUNT(*) AS cnt, MAX(dims)
		FROM embeddings
		GROUP BY ns ORDER BY cnt DESC, ns`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ns NamespaceStats
		if err := rows.Scan(&ns.NS, &ns.Words, &ns.Dims); err != nil {
			return st, err
		}
		st.Namespaces = append(st.Namespaces, ns)
	}
	return st, rows.Err()
}
