package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/mlprimer/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS embeddings (
		id          TEXT PRIMARY KEY,
		ns          TEXT NOT NULL,
		word        TEXT NOT NULL,
		vector      TEXT NOT NULL,
		dims        INTEGER NOT NULL,
		created_at  TEXT NOT NULL,
		UNIQUE (ns, word)
	);
	CREATE INDEX IF NOT EXISTS idx_embeddings_ns_word ON embeddings(ns, word);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.Embedding, error) {
	word := strings.TrimSpace(p.Word)
	if word == "" {
		return nil, fmt.Errorf("word is required")
	}
	if len(p.Vector) == 0 {
		return nil, fmt.Errorf("vector for %q is empty", word)
	}
	ns := nsOrDefault(p.NS)
	now := time.Now().UTC()

	vec, err := json.Marshal(p.Vector)
	if err != nil {
		return nil, fmt.Errorf("encode vector: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Replacing a word keeps its id
	id := s.newID()
	var prevID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM embeddings WHERE ns = ? AND word = ?`, ns, word).Scan(&prevID)
	switch {
	case err == nil:
		id = prevID
		_, err = tx.ExecContext(ctx,
			`UPDATE embeddings SET vector = ?, dims = ?, created_at = ? WHERE id = ?`,
			string(vec), len(p.Vector), now.Format(time.RFC3339), id)
		if err != nil {
			return nil, fmt.Errorf("update embedding: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx,
			`INSERT INTO embeddings (id, ns, word, vector, dims, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			id, ns, word, string(vec), len(p.Vector), now.Format(time.RFC3339))
		if err != nil {
			return nil, fmt.Errorf("insert embedding: %w", err)
		}
	default:
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Embedding{
		ID:        id,
		NS:        ns,
		Word:      word,
		Vector:    p.Vector,
		Dims:      len(p.Vector),
		CreatedAt: now.Truncate(time.Second),
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, ns, word string) (*model.Embedding, error) {
	ns = nsOrDefault(ns)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, ns, word, vector, dims, created_at FROM embeddings WHERE ns = ? AND word = ?`,
		ns, word)
	e, err := scanEmbedding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, ns, word)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Embedding, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ns, word, vector, dims, created_at FROM embeddings
		 WHERE ns = ? ORDER BY word LIMIT ?`, nsOrDefault(p.NS), limit)
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

func (s *SQLiteStore) Rm(ctx context.Context, ns, word string) error {
	ns = nsOrDefault(ns)
	res, err := s.db.ExecContext(ctx, `DELETE FROM embeddings WHERE ns = ? AND word = ?`, ns, word)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, ns, word)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmbedding(row scanner) (model.Embedding, error) {
	var e model.Embedding
	var vec, createdAt string
	if err := row.Scan(&e.ID, &e.NS, &e.Word, &vec, &e.Dims, &createdAt); err != nil {
		return e, err
	}
	if err := json.Unmarshal([]byte(vec), &e.Vector); err != nil {
		return e, fmt.Errorf("decode vector for %q: %w", e.Word, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}
