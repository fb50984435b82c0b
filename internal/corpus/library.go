package corpus

import (
	"math"
	"strings"
)

// Library is the ordered set of corpora. Order is search priority: on equal
// scores the earlier corpus wins.
type Library struct {
	corpora []*Corpus
	byKey   map[string]*Corpus
}

// NewLibrary builds a library. A corpus whose key repeats an earlier one is
// ignored.
func NewLibrary(corpora ...*Corpus) *Library {
	l := &Library{byKey: make(map[string]*Corpus, len(corpora))}
	for _, c := range corpora {
		if c == nil {
			continue
		}
		if _, dup := l.byKey[c.Key]; dup {
			continue
		}
		l.byKey[c.Key] = c
		l.corpora = append(l.corpora, c)
	}
	return l
}

// Corpora returns the corpora in priority order.
func (l *Library) Corpora() []*Corpus {
	return append([]*Corpus(nil), l.corpora...)
}

// Get returns a corpus by key.
func (l *Library) Get(key string) (*Corpus, bool) {
	c, ok := l.byKey[key]
	return c, ok
}

// LookupByNumber is exact-key retrieval, independent of any scoring.
func (l *Library) LookupByNumber(key, number string) (VerseRecord, bool) {
	c, ok := l.byKey[key]
	if !ok {
		return VerseRecord{}, false
	}
	return c.Lookup(number)
}

// BookSummary is the catalogue entry for one corpus.
type BookSummary struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	VerseCount  int    `json:"verse_count"`
	Description string `json:"description"`
}

// Statistics summarizes how much of each work is loaded.
type Statistics struct {
	TotalBooks          int           `json:"total_books"`
	TotalLoadedVerses   int           `json:"total_loaded_verses"`
	TotalExpectedVerses int           `json:"total_expected_verses"`
	CoveragePercent     float64       `json:"coverage_percent"`
	Books               []BookSummary `json:"books"`
}

// Books lists every corpus in priority order.
func (l *Library) Books() []BookSummary {
	books := make([]BookSummary, 0, len(l.corpora))
	for _, c := range l.corpora {
		books = append(books, BookSummary{
			Key:         c.Key,
			Title:       c.Title(),
			Author:      c.Metadata.Author,
			VerseCount:  c.Len(),
			Description: c.Metadata.Description,
		})
	}
	return books
}

// BookMetadata returns the metadata of one corpus.
func (l *Library) BookMetadata(key string) (Metadata, bool) {
	c, ok := l.byKey[key]
	if !ok {
		return Metadata{}, false
	}
	return c.Metadata, true
}

// BooksByAuthor returns the keys of corpora whose author contains author.
func (l *Library) BooksByAuthor(author string) []string {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil
	}
	var keys []string
	for _, c := range l.corpora {
		if strings.Contains(c.Metadata.Author, author) {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// Statistics reports loaded versus expected verse counts.
func (l *Library) Statistics() Statistics {
	s := Statistics{
		TotalBooks: len(l.corpora),
		Books:      l.Books(),
	}
	for _, c := range l.corpora {
		s.TotalLoadedVerses += c.Len()
		s.TotalExpectedVerses += c.ExpectedVerses()
	}
	if s.TotalExpectedVerses > 0 {
		pct := float64(s.TotalLoadedVerses) / float64(s.TotalExpectedVerses) * 100
		s.CoveragePercent = math.Round(pct*100) / 100
	}
	return s
}
