package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"versematch/internal/config"
	"versematch/internal/corpus"
	"versematch/internal/logging"
)

// maxParallelLoads bounds concurrent corpus reads at startup.
const maxParallelLoads = 4

// Spec binds a corpus key to the source it is read from.
type Spec struct {
	Key    string
	Shape  corpus.Shape
	Title  string // fills empty stored metadata
	Author string // fills empty stored metadata
	Source Source
}

// LoadLibrary reads every spec in parallel and builds the library in spec
// order. A corpus whose source fails is logged and kept as an empty corpus,
// so the library always holds one corpus per spec.
func LoadLibrary(ctx context.Context, specs []Spec) *corpus.Library {
	timer := logging.StartTimer(logging.CategoryStore, "LoadLibrary")
	defer timer.Stop()

	loaded := make([]*corpus.Corpus, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)

	for i, spec := range specs {
		g.Go(func() error {
			loaded[i] = loadOne(gctx, spec)
			return nil
		})
	}
	_ = g.Wait()

	return corpus.NewLibrary(loaded...)
}

func loadOne(ctx context.Context, spec Spec) *corpus.Corpus {
	start := time.Now()
	fallbackMeta := corpus.Metadata{Title: spec.Title, Author: spec.Author}

	if spec.Source == nil {
		err := fmt.Errorf("corpus %s has no source", spec.Key)
		logging.StoreWarn("%v", err)
		logging.Audit().CorpusDegraded(spec.Key, err)
		return corpus.Empty(spec.Key, spec.Shape, fallbackMeta)
	}

	doc, err := spec.Source.Load(ctx, spec.Key)
	if err != nil {
		logging.StoreWarn("corpus %s unavailable from %s, continuing empty: %v", spec.Key, spec.Source.Name(), err)
		logging.Audit().CorpusDegraded(spec.Key, err)
		return corpus.Empty(spec.Key, spec.Shape, fallbackMeta)
	}

	meta := doc.Metadata
	if meta.Title == "" {
		meta.Title = spec.Title
	}
	if meta.Author == "" {
		meta.Author = spec.Author
	}
	c := corpus.New(spec.Key, spec.Shape, meta, doc.Verses)
	logging.Audit().CorpusLoaded(spec.Key, c.Len(), time.Since(start))
	logging.Store("loaded corpus %s: %d verses from %s", spec.Key, c.Len(), spec.Source.Name())
	return c
}

// Set is the sources resolved from a configuration together with the
// database handles they share.
type Set struct {
	Specs []Spec

	sqlite   *SQLiteStore
	postgres *PostgresStore
	bolt     *BoltStore

	// Open failures per backend, so every corpus on a dead backend
	// degrades without redialing it.
	down map[string]error
}

// Open resolves every configured corpus to a source. Database-backed sources
// share one handle per backend. A backend that cannot be reached leaves its
// corpora unavailable; only configuration mistakes fail Open. The caller
// must Close the set.
func Open(ctx context.Context, cfg *config.Config) (*Set, error) {
	s := &Set{down: make(map[string]error)}
	for _, cc := range cfg.Corpora {
		src, err := s.source(ctx, cfg, cc)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("corpus %s: %w", cc.Key, err)
		}
		s.Specs = append(s.Specs, Spec{
			Key:    cc.Key,
			Shape:  corpus.ParseShape(cc.Shape),
			Title:  cc.Title,
			Author: cc.Author,
			Source: src,
		})
	}
	return s, nil
}

func (s *Set) source(ctx context.Context, cfg *config.Config, cc config.CorpusConfig) (Source, error) {
	switch cc.Source {
	case config.SourceJSON, "":
		path := cc.Path
		if path == "" {
			path = filepath.Join(cfg.Storage.DataDir, cc.Key+".json")
		}
		return JSONFile{Path: path}, nil
	case config.SourceSQLite:
		if s.sqlite == nil {
			if err := s.reach(cc, func() (err error) {
				s.sqlite, err = OpenSQLite(cfg.Storage.SQLitePath)
				return err
			}); err != nil {
				return unavailable{name: cc.Source, err: err}, nil
			}
		}
		return s.sqlite, nil
	case config.SourcePostgres:
		if cfg.Storage.PostgresDSN == "" {
			return nil, errors.New("postgres source requires storage.postgres_dsn")
		}
		if s.postgres == nil {
			err := s.reach(cc, func() (err error) {
				s.postgres, err = OpenPostgres(ctx, cfg.Storage.PostgresDSN)
				return err
			})
			if errors.Is(err, ErrInvalidDSN) {
				return nil, err
			}
			if err != nil {
				return unavailable{name: cc.Source, err: err}, nil
			}
		}
		return s.postgres, nil
	case config.SourceBolt:
		if s.bolt == nil {
			if err := s.reach(cc, func() (err error) {
				s.bolt, err = OpenBolt(cfg.Storage.BoltPath)
				return err
			}); err != nil {
				return unavailable{name: cc.Source, err: err}, nil
			}
		}
		return s.bolt, nil
	default:
		return nil, fmt.Errorf("%q: %w", cc.Source, ErrUnknownSource)
	}
}

// reach opens a backend once. A failure is remembered and logged so the
// corpora bound to it load empty.
func (s *Set) reach(cc config.CorpusConfig, open func() error) error {
	if err, ok := s.down[cc.Source]; ok {
		return err
	}
	err := open()
	if err == nil || errors.Is(err, ErrInvalidDSN) {
		return err
	}
	s.down[cc.Source] = err
	logging.StoreWarn("%s backend unavailable, its corpora will load empty: %v", cc.Source, err)
	return err
}

// unavailable stands in for a backend that could not be opened.
type unavailable struct {
	name string
	err  error
}

func (u unavailable) Name() string { return u.name }

func (u unavailable) Load(context.Context, string) (corpus.Document, error) {
	return corpus.Document{}, u.err
}

// Load builds the library from the set's sources, bounded by timeout when it
// is positive.
func (s *Set) Load(ctx context.Context, timeout time.Duration) *corpus.Library {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return LoadLibrary(ctx, s.Specs)
}

// Close releases every database handle the set opened.
func (s *Set) Close() error {
	var errs []error
	if s.sqlite != nil {
		errs = append(errs, s.sqlite.Close())
		s.sqlite = nil
	}
	if s.postgres != nil {
		errs = append(errs, s.postgres.Close())
		s.postgres = nil
	}
	if s.bolt != nil {
		errs = append(errs, s.bolt.Close())
		s.bolt = nil
	}
	return errors.Join(errs...)
}

// OpenWriter opens the named database backend for writing.
func OpenWriter(ctx context.Context, cfg *config.Config, name string) (Writer, func() error, error) {
	switch name {
	case config.SourceSQLite:
		db, err := OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case config.SourcePostgres:
		if cfg.Storage.PostgresDSN == "" {
			return nil, nil, errors.New("postgres target requires storage.postgres_dsn")
		}
		db, err := OpenPostgres(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case config.SourceBolt:
		db, err := OpenBolt(cfg.Storage.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("%q: %w", name, ErrUnknownSource)
	}
}

// ImportResult counts what one Import call copied.
type ImportResult struct {
	Key    string
	Verses int
}

// Import copies each spec's corpus from its source into to. The first
// failure stops the import.
func Import(ctx context.Context, specs []Spec, to Writer) ([]ImportResult, error) {
	var results []ImportResult
	for _, spec := range specs {
		if spec.Source == nil {
			return results, fmt.Errorf("corpus %s has no source", spec.Key)
		}
		doc, err := spec.Source.Load(ctx, spec.Key)
		if err != nil {
			return results, fmt.Errorf("import %s: %w", spec.Key, err)
		}
		if doc.Metadata.Title == "" {
			doc.Metadata.Title = spec.Title
		}
		if doc.Metadata.Author == "" {
			doc.Metadata.Author = spec.Author
		}
		if err := to.Save(ctx, spec.Key, doc); err != nil {
			return results, fmt.Errorf("import %s: %w", spec.Key, err)
		}
		results = append(results, ImportResult{Key: spec.Key, Verses: len(doc.Verses)})
	}
	return results, nil
}
