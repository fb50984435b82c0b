// Package corpus defines the verse corpora the matcher searches: verse
// records, per-corpus metadata and the ordered, read-only Library.
//
// Corpora are built once at startup and never mutated afterwards, so any
// number of goroutines may read a Library without locking.
package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"versematch/internal/logging"
)

// Shape is the structural form a corpus's verses usually take.
type Shape string

const (
	ShapeNone      Shape = "none"
	ShapeAphorism  Shape = "aphorism"  // short two-line couplets
	ShapeNarrative Shape = "narrative" // longer multi-line epic verses
)

// ParseShape maps a config string to a Shape. Unknown values are ShapeNone.
func ParseShape(s string) Shape {
	switch Shape(strings.ToLower(strings.TrimSpace(s))) {
	case ShapeAphorism:
		return ShapeAphorism
	case ShapeNarrative:
		return ShapeNarrative
	default:
		return ShapeNone
	}
}

// VerseRecord is one numbered unit of text within a corpus.
type VerseRecord struct {
	VerseNumber    string   `json:"verse_number"`
	Text           string   `json:"verse"`
	Meaning        string   `json:"meaning,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	EnglishMeaning string   `json:"english_meaning,omitempty"`
	Chapter        string   `json:"chapter,omitempty"`
	Section        string   `json:"section,omitempty"`
	Characters     []string `json:"characters,omitempty"`
	Author         string   `json:"author,omitempty"`
	Theme          string   `json:"theme,omitempty"`
	Moral          string   `json:"moral,omitempty"`
	BookName       string   `json:"tamil_book_name,omitempty"`
}

// recordJSON accepts the field aliases found in stored corpora.
type recordJSON struct {
	VerseNumber    json.RawMessage `json:"verse_number"`
	Verse          string          `json:"verse"`
	Text           string          `json:"text"`
	Meaning        string          `json:"meaning"`
	Summary        string          `json:"summary"`
	EnglishMeaning string          `json:"english_meaning"`
	Chapter        string          `json:"chapter"`
	Kandam         string          `json:"kandam"`
	Section        string          `json:"section"`
	Characters     []string        `json:"characters"`
	Author         string          `json:"author"`
	Theme          string          `json:"theme"`
	Moral          string          `json:"moral"`
	BookName       string          `json:"tamil_book_name"`
}

// UnmarshalJSON accepts "text" for "verse", "kandam" for "chapter" and an
// integer or string verse number.
func (v *VerseRecord) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	number, err := parseVerseNumber(raw.VerseNumber)
	if err != nil {
		return err
	}
	*v = VerseRecord{
		VerseNumber:    number,
		Text:           firstNonEmpty(raw.Verse, raw.Text),
		Meaning:        raw.Meaning,
		Summary:        raw.Summary,
		EnglishMeaning: raw.EnglishMeaning,
		Chapter:        firstNonEmpty(raw.Chapter, raw.Kandam),
		Section:        raw.Section,
		Characters:     raw.Characters,
		Author:         raw.Author,
		Theme:          raw.Theme,
		Moral:          raw.Moral,
		BookName:       raw.BookName,
	}
	return nil
}

func parseVerseNumber(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("verse_number: %w", err)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}

// Metadata describes a corpus as a whole.
type Metadata struct {
	Title        string `json:"title,omitempty"`
	TamilTitle   string `json:"tamil_title,omitempty"`
	EnglishTitle string `json:"english_title,omitempty"`
	Author       string `json:"author,omitempty"`
	Period       string `json:"period,omitempty"`
	Category     string `json:"category,omitempty"`
	Description  string `json:"description,omitempty"`
	TotalVerses  int    `json:"total_verses,omitempty"` // expected count; may exceed what is loaded
}

// Document is the persisted form of a corpus.
type Document struct {
	Metadata Metadata      `json:"metadata"`
	Verses   []VerseRecord `json:"verses"`
}

// ParseDocument decodes a JSON corpus document.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse corpus document: %w", err)
	}
	return doc, nil
}

// Corpus is one literary work: metadata plus verses in stored order.
type Corpus struct {
	Key      string
	Shape    Shape
	Metadata Metadata

	verses   []VerseRecord
	byNumber map[string]int
}

// New builds a corpus. Records with empty text are dropped, as are records
// whose verse number repeats an earlier one.
func New(key string, shape Shape, meta Metadata, verses []VerseRecord) *Corpus {
	c := &Corpus{
		Key:      key,
		Shape:    shape,
		Metadata: meta,
		verses:   make([]VerseRecord, 0, len(verses)),
		byNumber: make(map[string]int, len(verses)),
	}
	for i, v := range verses {
		if strings.TrimSpace(v.Text) == "" {
			logging.StoreWarn("corpus %s: dropping record %d (verse %q) with empty text", key, i, v.VerseNumber)
			continue
		}
		if v.VerseNumber != "" {
			if _, dup := c.byNumber[v.VerseNumber]; dup {
				logging.StoreWarn("corpus %s: dropping duplicate verse number %q", key, v.VerseNumber)
				continue
			}
			c.byNumber[v.VerseNumber] = len(c.verses)
		}
		c.verses = append(c.verses, v)
	}
	return c
}

// Empty is a corpus with no verses, used when storage is unavailable.
func Empty(key string, shape Shape, meta Metadata) *Corpus {
	return New(key, shape, meta, nil)
}

// Len is the number of loaded verses.
func (c *Corpus) Len() int { return len(c.verses) }

// Verses returns the verses in stored order. The slice must not be modified.
func (c *Corpus) Verses() []VerseRecord { return c.verses }

// Lookup returns the verse with the given number.
func (c *Corpus) Lookup(number string) (VerseRecord, bool) {
	i, ok := c.byNumber[strings.TrimSpace(number)]
	if !ok {
		return VerseRecord{}, false
	}
	return c.verses[i], true
}

// Title is the display title: metadata title, Tamil title, then key.
func (c *Corpus) Title() string {
	return firstNonEmpty(c.Metadata.Title, c.Metadata.TamilTitle, c.Key)
}

// ExpectedVerses is the declared size of the full work, or the loaded count
// when none is declared.
func (c *Corpus) ExpectedVerses() int {
	if c.Metadata.TotalVerses > 0 {
		return c.Metadata.TotalVerses
	}
	return len(c.verses)
}

// Document returns the persisted form of the corpus.
func (c *Corpus) Document() Document {
	return Document{Metadata: c.Metadata, Verses: append([]VerseRecord(nil), c.verses...)}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
