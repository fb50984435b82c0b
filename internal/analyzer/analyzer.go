// Package analyzer is the query API: it decides whether a text is a verse of
// one of the loaded corpora and describes it either way.
//
// An Analyzer is immutable after New and safe for concurrent use.
package analyzer

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"versematch/internal/classify"
	"versematch/internal/config"
	"versematch/internal/corpus"
	"versematch/internal/fallback"
	"versematch/internal/lexicon"
	"versematch/internal/logging"
	"versematch/internal/matcher"
	"versematch/internal/textnorm"
)

// Result sources other than a corpus key.
const (
	SourceUnknown    = "unknown"
	SourceInvalid    = "invalid"
	SourceRandomText = "random_text"
)

// User-facing messages.
const (
	MessageEmpty   = "வெற்று உரை"
	MessageInvalid = "தமிழ் எழுத்துக்கள் இல்லை"
	GeneralBook    = "பொது தமிழ் உரை"
)

// BookMetadata is the corpus-level metadata attached to a match.
type BookMetadata struct {
	TamilTitle   string `json:"tamil_title"`
	EnglishTitle string `json:"english_title"`
	Author       string `json:"author"`
	Period       string `json:"period"`
	Category     string `json:"category"`
}

// Result is the answer to one query.
type Result struct {
	Found   bool   `json:"found"`
	Source  string `json:"source"`
	Message string `json:"message,omitempty"`

	Book           string   `json:"book,omitempty"`
	Section        string   `json:"section,omitempty"`
	Chapter        string   `json:"chapter,omitempty"`
	Number         string   `json:"number,omitempty"`
	Verse          string   `json:"verse,omitempty"`
	Meaning        string   `json:"meaning,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	EnglishMeaning string   `json:"english_meaning,omitempty"`
	Theme          string   `json:"theme,omitempty"`
	Moral          string   `json:"moral,omitempty"`
	Author         string   `json:"author,omitempty"`
	Characters     []string `json:"characters,omitempty"`
	Confidence     float64  `json:"confidence"`

	BookMetadata *BookMetadata `json:"book_metadata,omitempty"`

	// Set only for texts that matched no verse.
	Sentiment  *fallback.Sentiment `json:"sentiment,omitempty"`
	Gloss      *fallback.Gloss     `json:"gloss,omitempty"`
	Literature string              `json:"literature,omitempty"`
}

// Analyzer answers queries over one library.
type Analyzer struct {
	lib *corpus.Library
	lex *lexicon.Lexicon
	cfg config.MatchingConfig
	arb *matcher.Arbitrator
	fb  *fallback.Analyzer
}

// New builds an analyzer. Every corpus is prepared for scoring here.
func New(lib *corpus.Library, lex *lexicon.Lexicon, cfg config.MatchingConfig) *Analyzer {
	return &Analyzer{
		lib: lib,
		lex: lex,
		cfg: cfg,
		arb: matcher.NewArbitrator(lib, cfg),
		fb:  fallback.New(lex),
	}
}

// Library is the library the analyzer searches.
func (a *Analyzer) Library() *corpus.Library { return a.lib }

// Analyze classifies raw text. It never fails: empty and non-Tamil input
// yield typed results, and unmatched text gets a fallback description.
func (a *Analyzer) Analyze(raw string) Result {
	return a.analyze(raw, logging.Audit())
}

// AnalyzeWithRequest is Analyze with audit events tagged by a request id.
func (a *Analyzer) AnalyzeWithRequest(requestID, raw string) Result {
	return a.analyze(raw, logging.AuditWithRequest(requestID))
}

func (a *Analyzer) analyze(raw string, audit *logging.AuditLogger) Result {
	if strings.TrimSpace(raw) == "" {
		audit.QueryRejected(SourceUnknown, "empty")
		return Result{Source: SourceUnknown, Message: MessageEmpty}
	}

	if number, ok := textnorm.Numeral(raw); ok {
		if m, found := a.arb.LookupNumber(number); found {
			audit.MatchAccepted(m.CorpusKey, m.Verse.VerseNumber, m.RawScore, m.Boost)
			return a.matched(m)
		}
		audit.QueryRejected(SourceInvalid, "number not found")
		return Result{Source: SourceInvalid, Message: MessageInvalid}
	}

	if !textnorm.IsValid(raw) {
		audit.QueryRejected(SourceInvalid, "no tamil text")
		return Result{Source: SourceInvalid, Message: MessageInvalid}
	}

	normalized := textnorm.Normalize(raw)
	verdict := classify.Classify(normalized, a.lex, a.cfg)
	audit.QueryClassified(verdict.Strict, verdict.Threshold, verdict.Words, verdict.Lines)

	out := a.arb.Arbitrate(matcher.NewQuery(normalized), verdict)
	if out.Found {
		audit.MatchAccepted(out.Match.CorpusKey, out.Match.Verse.VerseNumber, out.Match.RawScore, out.Match.Boost)
		return a.matched(out.Match)
	}
	if out.Vetoed {
		audit.MatchVetoed(out.Match.CorpusKey, out.Match.RawScore)
	}

	fb := a.fb.Analyze(textnorm.Flatten(normalized))
	audit.FallbackUsed(fb.Sentiment.Label, fb.Gloss.Hits)
	return unmatched(fb)
}

func (a *Analyzer) matched(m matcher.Match) Result {
	v := m.Verse
	r := Result{
		Found:          true,
		Source:         m.CorpusKey,
		Book:           v.BookName,
		Section:        v.Section,
		Chapter:        v.Chapter,
		Number:         v.VerseNumber,
		Verse:          v.Text,
		Meaning:        v.Meaning,
		Summary:        v.Summary,
		EnglishMeaning: v.EnglishMeaning,
		Theme:          v.Theme,
		Moral:          v.Moral,
		Author:         v.Author,
		Characters:     append([]string(nil), v.Characters...),
		Confidence:     m.Confidence(),
	}
	if c, ok := a.lib.Get(m.CorpusKey); ok {
		if r.Book == "" {
			r.Book = c.Title()
		}
		meta := c.Metadata
		tamil := meta.TamilTitle
		if tamil == "" {
			tamil = meta.Title
		}
		r.BookMetadata = &BookMetadata{
			TamilTitle:   tamil,
			EnglishTitle: meta.EnglishTitle,
			Author:       meta.Author,
			Period:       meta.Period,
			Category:     meta.Category,
		}
	}
	return r
}

func unmatched(fb fallback.Result) Result {
	source := SourceRandomText
	if fb.Degraded {
		source = SourceUnknown
	}
	return Result{
		Source:     source,
		Book:       GeneralBook,
		Meaning:    fb.Gloss.Text,
		Theme:      fb.Theme,
		Moral:      fb.Moral,
		Literature: fb.Literature,
		Sentiment:  &fb.Sentiment,
		Gloss:      &fb.Gloss,
		Message:    fb.Fault,
	}
}

// AnalyzeBatch analyzes texts concurrently. Results keep input order. The
// only error is ctx's.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.Analyze(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// LookupByNumber returns a verse by corpus key and number, bypassing scoring.
func (a *Analyzer) LookupByNumber(key, number string) (corpus.VerseRecord, bool) {
	return a.lib.LookupByNumber(key, number)
}

// Statistics reports loaded and expected verse counts.
func (a *Analyzer) Statistics() corpus.Statistics { return a.lib.Statistics() }

// Books lists every corpus in search order.
func (a *Analyzer) Books() []corpus.BookSummary { return a.lib.Books() }

// BookMetadata returns one corpus's metadata.
func (a *Analyzer) BookMetadata(key string) (corpus.Metadata, bool) {
	return a.lib.BookMetadata(key)
}

// BooksByAuthor returns the keys of corpora whose author contains author.
func (a *Analyzer) BooksByAuthor(author string) []string {
	return a.lib.BooksByAuthor(author)
}
