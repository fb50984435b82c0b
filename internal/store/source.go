// Package store persists verse corpora and loads them into a corpus.Library.
//
// Four backends are supported: plain JSON documents, SQLite, PostgreSQL and
// bbolt. Every backend stores the same corpus.Document, so a corpus can be
// imported from one into another without loss.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"versematch/internal/corpus"
	"versematch/internal/logging"
)

var (
	// ErrCorpusNotFound is returned when a source holds no corpus under a key.
	ErrCorpusNotFound = errors.New("corpus not found")
	// ErrUnknownSource is returned for an unsupported source name.
	ErrUnknownSource = errors.New("unknown corpus source")
	// ErrInvalidDSN is returned when the postgres DSN cannot be parsed.
	ErrInvalidDSN = errors.New("invalid postgres dsn")
)

// Source reads one corpus document by key.
type Source interface {
	Name() string
	Load(ctx context.Context, key string) (corpus.Document, error)
}

// Writer persists a corpus document under a key, replacing any previous one.
type Writer interface {
	Save(ctx context.Context, key string, doc corpus.Document) error
}

// JSONFile is a corpus stored as a single JSON document on disk.
type JSONFile struct {
	Path string
}

func (f JSONFile) Name() string { return "json:" + f.Path }

// Load reads and parses the file. A missing file is ErrCorpusNotFound.
func (f JSONFile) Load(ctx context.Context, key string) (corpus.Document, error) {
	if err := ctx.Err(); err != nil {
		return corpus.Document{}, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return corpus.Document{}, fmt.Errorf("%s at %s: %w", key, f.Path, ErrCorpusNotFound)
		}
		return corpus.Document{}, fmt.Errorf("failed to read corpus file: %w", err)
	}
	logging.StoreDebug("read %d bytes for corpus %s from %s", len(data), key, f.Path)
	return corpus.ParseDocument(data)
}

// Save writes doc as indented JSON, creating parent directories.
func (f JSONFile) Save(ctx context.Context, key string, doc corpus.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("failed to create corpus directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal corpus %s: %w", key, err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write corpus file: %w", err)
	}
	logging.Store("wrote corpus %s (%d verses) to %s", key, len(doc.Verses), f.Path)
	return nil
}
