package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"versematch/internal/corpus"
	"versematch/internal/logging"
)

var (
	bucketCorpora = []byte("corpora")
	bucketVerses  = []byte("verses")
	keyMetadata   = []byte("meta")
)

// BoltStore keeps corpora in a bbolt file. Each corpus is a nested bucket
// under "corpora" holding its metadata and a "verses" bucket keyed by
// big-endian position, so a cursor walk yields stored order.
type BoltStore struct {
	db   *bbolt.DB
	path string
}

// OpenBolt opens (creating if needed) the bbolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCorpora)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db, path: path}, nil
}

func (s *BoltStore) Name() string { return "bolt:" + s.path }

// Load reads the corpus stored under key.
func (s *BoltStore) Load(ctx context.Context, key string) (corpus.Document, error) {
	var doc corpus.Document
	if err := ctx.Err(); err != nil {
		return doc, err
	}
	err := s.db.View(func(tx *bbolt.Tx) error {
		cb := tx.Bucket(bucketCorpora).Bucket([]byte(key))
		if cb == nil {
			return fmt.Errorf("%s in %s: %w", key, s.path, ErrCorpusNotFound)
		}
		if data := cb.Get(keyMetadata); data != nil {
			if err := json.Unmarshal(data, &doc.Metadata); err != nil {
				return fmt.Errorf("decode metadata of %s: %w", key, err)
			}
		}
		vb := cb.Bucket(bucketVerses)
		if vb == nil {
			return nil
		}
		return vb.ForEach(func(k, v []byte) error {
			var rec corpus.VerseRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode verse %d of %s: %w", binary.BigEndian.Uint64(k), key, err)
			}
			doc.Verses = append(doc.Verses, rec)
			return nil
		})
	})
	return doc, err
}

// Save replaces the corpus stored under key.
func (s *BoltStore) Save(ctx context.Context, key string, doc corpus.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	meta, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata of %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketCorpora)
		if root.Bucket([]byte(key)) != nil {
			if err := root.DeleteBucket([]byte(key)); err != nil {
				return err
			}
		}
		cb, err := root.CreateBucket([]byte(key))
		if err != nil {
			return err
		}
		if err := cb.Put(keyMetadata, meta); err != nil {
			return err
		}
		vb, err := cb.CreateBucket(bucketVerses)
		if err != nil {
			return err
		}
		for i, v := range doc.Verses {
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("encode verse %s of %s: %w", v.VerseNumber, key, err)
			}
			if err := vb.Put(positionKey(i), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save corpus %s: %w", key, err)
	}
	logging.Store("saved corpus %s (%d verses) to %s", key, len(doc.Verses), s.path)
	return nil
}

// Keys lists the stored corpus keys.
func (s *BoltStore) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCorpora).ForEach(func(k, v []byte) error {
			if v == nil {
				keys = append(keys, string(k))
			}
			return nil
		})
	})
	return keys, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func positionKey(i int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(i))
	return k
}
