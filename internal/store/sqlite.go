package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"versematch/internal/corpus"
	"versematch/internal/logging"
)

// SQLiteStore keeps corpora in a single SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	timer := logging.StartTimer(logging.CategoryStore, "OpenSQLite")
	defer timer.Stop()

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite synchronous=NORMAL: %v", err)
	}

	s := &SQLiteStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logging.Store("SQLite corpus store ready at %s", path)
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return runSQLiteMigrations(s.db)
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS corpora (
	key TEXT PRIMARY KEY,
	metadata TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS verses (
	corpus_key TEXT NOT NULL REFERENCES corpora(key) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	verse_number TEXT NOT NULL,
	verse TEXT NOT NULL,
	meaning TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	chapter TEXT NOT NULL DEFAULT '',
	section TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (corpus_key, position)
);
CREATE INDEX IF NOT EXISTS idx_verses_number ON verses(corpus_key, verse_number);
`

func (s *SQLiteStore) Name() string { return "sqlite:" + s.dbPath }

// Load reads the corpus stored under key.
func (s *SQLiteStore) Load(ctx context.Context, key string) (corpus.Document, error) {
	var doc corpus.Document

	var meta string
	err := s.db.QueryRowContext(ctx, `SELECT metadata FROM corpora WHERE key = ?`, key).Scan(&meta)
	if err == sql.ErrNoRows {
		return doc, fmt.Errorf("%s in %s: %w", key, s.dbPath, ErrCorpusNotFound)
	}
	if err != nil {
		return doc, fmt.Errorf("load corpus %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(meta), &doc.Metadata); err != nil {
		return doc, fmt.Errorf("decode metadata of %s: %w", key, err)
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT verse_number, verse, meaning, summary, english_meaning, chapter, section,
       characters, author, theme, moral, book_name
FROM verses WHERE corpus_key = ? ORDER BY position ASC`, key)
	if err != nil {
		return doc, fmt.Errorf("list verses of %s: %w", key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v corpus.VerseRecord
		var chars string
		if err := rows.Scan(&v.VerseNumber, &v.Text, &v.Meaning, &v.Summary, &v.EnglishMeaning,
			&v.Chapter, &v.Section, &chars, &v.Author, &v.Theme, &v.Moral, &v.BookName); err != nil {
			return doc, fmt.Errorf("scan verse of %s: %w", key, err)
		}
		if v.Characters, err = decodeCharacters(chars); err != nil {
			return doc, fmt.Errorf("decode characters of %s/%s: %w", key, v.VerseNumber, err)
		}
		doc.Verses = append(doc.Verses, v)
	}
	if err := rows.Err(); err != nil {
		return doc, fmt.Errorf("iterate verses of %s: %w", key, err)
	}
	return doc, nil
}

// Save replaces the corpus stored under key.
func (s *SQLiteStore) Save(ctx context.Context, key string, doc corpus.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata of %s: %w", key, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save corpus: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM verses WHERE corpus_key = ?`, key); err != nil {
		return fmt.Errorf("clear verses of %s: %w", key, err)
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO corpora (key, metadata, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET metadata = excluded.metadata, updated_at = CURRENT_TIMESTAMP`,
		key, string(meta)); err != nil {
		return fmt.Errorf("upsert corpus %s: %w", key, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO verses (corpus_key, position, verse_number, verse, meaning, summary, english_meaning,
                    chapter, section, characters, author, theme, moral, book_name)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare verse insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range doc.Verses {
		chars, err := encodeCharacters(v.Characters)
		if err != nil {
			return fmt.Errorf("encode characters of %s/%s: %w", key, v.VerseNumber, err)
		}
		if _, err := stmt.ExecContext(ctx, key, i, v.VerseNumber, v.Text, v.Meaning, v.Summary,
			v.EnglishMeaning, v.Chapter, v.Section, chars, v.Author, v.Theme, v.Moral, v.BookName); err != nil {
			return fmt.Errorf("insert verse %s/%s: %w", key, v.VerseNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit corpus %s: %w", key, err)
	}
	logging.Store("saved corpus %s (%d verses) to %s", key, len(doc.Verses), s.dbPath)
	return nil
}

// Keys lists the stored corpus keys.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM corpora ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list corpora: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan corpus key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func encodeCharacters(chars []string) (string, error) {
	if len(chars) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(chars)
	return string(data), err
}

func decodeCharacters(s string) ([]string, error) {
	if s == "" || s == "[]" {
		return nil, nil
	}
	var chars []string
	if err := json.Unmarshal([]byte(s), &chars); err != nil {
		return nil, err
	}
	return chars, nil
}
