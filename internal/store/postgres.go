package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"versematch/internal/corpus"
	"versematch/internal/logging"
)

// PostgresStore keeps corpora in a PostgreSQL database.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

// OpenPostgres connects to dsn and ensures the schema exists.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	s := &PostgresStore{Pool: pool}
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS corpora (
	key TEXT PRIMARY KEY,
	metadata JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS verses (
	corpus_key TEXT NOT NULL REFERENCES corpora(key) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	verse_number TEXT NOT NULL,
	verse TEXT NOT NULL,
	meaning TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	english_meaning TEXT NOT NULL DEFAULT '',
	chapter TEXT NOT NULL DEFAULT '',
	section TEXT NOT NULL DEFAULT '',
	characters TEXT[] NOT NULL DEFAULT '{}',
	author TEXT NOT NULL DEFAULT '',
	theme TEXT NOT NULL DEFAULT '',
	moral TEXT NOT NULL DEFAULT '',
	book_name TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (corpus_key, position)
);
CREATE INDEX IF NOT EXISTS idx_verses_number ON verses(corpus_key, verse_number);
`

// EnsureSchema creates the corpus tables if they are missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.Pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("ensure postgres schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Name() string { return "postgres" }

// Load reads the corpus stored under key.
func (s *PostgresStore) Load(ctx context.Context, key string) (corpus.Document, error) {
	var doc corpus.Document

	var meta []byte
	err := s.Pool.QueryRow(ctx, `SELECT metadata FROM corpora WHERE key = $1`, key).Scan(&meta)
	if errors.Is(err, pgx.ErrNoRows) {
		return doc, fmt.Errorf("%s in postgres: %w", key, ErrCorpusNotFound)
	}
	if err != nil {
		return doc, fmt.Errorf("get corpus %s: %w", key, err)
	}
	if err := json.Unmarshal(meta, &doc.Metadata); err != nil {
		return doc, fmt.Errorf("decode metadata of %s: %w", key, err)
	}

	rows, err := s.Pool.Query(ctx, `
SELECT verse_number, verse, meaning, summary, english_meaning, chapter, section,
       characters, author, theme, moral, book_name
FROM verses WHERE corpus_key = $1 ORDER BY position ASC`, key)
	if err != nil {
		return doc, fmt.Errorf("list verses of %s: %w", key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v corpus.VerseRecord
		if err := rows.Scan(&v.VerseNumber, &v.Text, &v.Meaning, &v.Summary, &v.EnglishMeaning,
			&v.Chapter, &v.Section, &v.Characters, &v.Author, &v.Theme, &v.Moral, &v.BookName); err != nil {
			return doc, fmt.Errorf("scan verse of %s: %w", key, err)
		}
		if len(v.Characters) == 0 {
			v.Characters = nil
		}
		doc.Verses = append(doc.Verses, v)
	}
	if err := rows.Err(); err != nil {
		return doc, fmt.Errorf("iterate verses of %s: %w", key, err)
	}
	return doc, nil
}

// Save replaces the corpus stored under key in one transaction.
func (s *PostgresStore) Save(ctx context.Context, key string, doc corpus.Document) error {
	meta, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata of %s: %w", key, err)
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx save corpus: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `
INSERT INTO corpora (key, metadata, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET metadata = EXCLUDED.metadata, updated_at = now()`,
		key, meta); err != nil {
		return fmt.Errorf("upsert corpus %s: %w", key, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM verses WHERE corpus_key = $1`, key); err != nil {
		return fmt.Errorf("clear verses of %s: %w", key, err)
	}

	batch := &pgx.Batch{}
	for i, v := range doc.Verses {
		chars := v.Characters
		if chars == nil {
			chars = []string{}
		}
		batch.Queue(`
INSERT INTO verses (corpus_key, position, verse_number, verse, meaning, summary, english_meaning,
                    chapter, section, characters, author, theme, moral, book_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			key, i, v.VerseNumber, v.Text, v.Meaning, v.Summary, v.EnglishMeaning,
			v.Chapter, v.Section, chars, v.Author, v.Theme, v.Moral, v.BookName)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert verses of %s: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit corpus %s: %w", key, err)
	}
	logging.Store("saved corpus %s (%d verses) to postgres", key, len(doc.Verses))
	return nil
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	if s != nil && s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}
