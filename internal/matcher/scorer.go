// Package matcher scores a classified query against every corpus of a
// library and arbitrates between the per-corpus winners.
package matcher

import (
	"strings"

	"versematch/internal/classify"
	"versematch/internal/config"
	"versematch/internal/corpus"
	"versematch/internal/fuzz"
	"versematch/internal/logging"
	"versematch/internal/textnorm"
)

// Match is the best candidate of one corpus.
type Match struct {
	CorpusKey string
	Verse     corpus.VerseRecord
	RawScore  int
	Boost     float64
	Strategy  string // strategy that produced the verse score, or "number" / "chapter"
}

// Boosted is the raw score scaled by the structural boost.
func (m Match) Boosted() float64 {
	return float64(m.RawScore) * m.Boost
}

// Confidence is the raw score as a fraction.
func (m Match) Confidence() float64 {
	return float64(m.RawScore) / 100
}

// entry is one verse with its comparison forms computed once.
type entry struct {
	verse       corpus.VerseRecord
	text        string // normalized, flattened
	chapter     string // normalized, flattened
	placeholder bool
}

// Scorer scores queries against a single corpus.
type Scorer struct {
	corpus     *corpus.Corpus
	cfg        config.MatchingConfig
	strategies []Strategy
	entries    []entry
}

// NewScorer prepares c for scoring. The corpus's verse and chapter texts are
// normalized once here.
func NewScorer(c *corpus.Corpus, cfg config.MatchingConfig, strategies []Strategy) *Scorer {
	if strategies == nil {
		strategies = DefaultStrategies(cfg)
	}
	s := &Scorer{
		corpus:     c,
		cfg:        cfg,
		strategies: strategies,
		entries:    make([]entry, 0, c.Len()),
	}
	// Records with no Tamil text left after normalization are stubs too.
	for _, v := range c.Verses() {
		text := textnorm.Clean(v.Text)
		s.entries = append(s.entries, entry{
			verse:       v,
			text:        text,
			chapter:     textnorm.Clean(v.Chapter),
			placeholder: text == "" || isPlaceholder(v.Text, cfg.PlaceholderMarkers),
		})
	}
	return s
}

func isPlaceholder(text string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.HasPrefix(text, m) {
			return true
		}
	}
	return false
}

// Corpus is the corpus this scorer searches.
func (s *Scorer) Corpus() *corpus.Corpus { return s.corpus }

// Boost returns the structural multiplier for this corpus and the verdict's
// shape, and the acceptance threshold adjusted for it.
func (s *Scorer) Boost(v classify.Verdict) (float64, int) {
	b := s.cfg.Boost
	threshold := v.Threshold
	switch s.corpus.Shape {
	case corpus.ShapeAphorism:
		if v.ShortAphorism {
			return b.Aphorism, min(threshold, b.AphorismThreshold)
		}
		if v.LongNarrative {
			return b.Mismatch, threshold
		}
	case corpus.ShapeNarrative:
		if v.LongNarrative {
			return b.Narrative, min(threshold, b.NarrativeThreshold)
		}
		if v.ShortAphorism {
			return b.Mismatch, threshold
		}
	}
	return 1.0, threshold
}

// LookupNumber is the numeral query path: an exact verse number scores 100.
func (s *Scorer) LookupNumber(number string) (Match, bool) {
	v, ok := s.corpus.Lookup(number)
	if !ok {
		return Match{}, false
	}
	return Match{CorpusKey: s.corpus.Key, Verse: v, RawScore: 100, Boost: 1.0, Strategy: "number"}, true
}

// Best returns the highest scoring verse that clears this corpus's
// threshold. On equal scores the earlier verse wins.
func (s *Scorer) Best(q Query, v classify.Verdict) (Match, bool) {
	boost, threshold := s.Boost(v)

	var best Match
	found := false
	for i := range s.entries {
		e := &s.entries[i]
		score, strategy := s.score(q, e)
		if v.Strict && score < s.cfg.Strict.MinScore {
			score = 0
		}
		if score > best.RawScore && score >= threshold {
			best = Match{
				CorpusKey: s.corpus.Key,
				Verse:     e.verse,
				RawScore:  score,
				Boost:     boost,
				Strategy:  strategy,
			}
			found = true
		}
	}

	if found {
		logging.MatchDebug("corpus %s: best verse %s raw=%d boost=%.2f threshold=%d via %s",
			s.corpus.Key, best.Verse.VerseNumber, best.RawScore, boost, threshold, best.Strategy)
	}
	return best, found
}

// score is the record's final score: the better of its verse-text score and
// its chapter-label score.
func (s *Scorer) score(q Query, e *entry) (int, string) {
	verseScore, strategy := 0, ""
	if !e.placeholder {
		for _, st := range s.strategies {
			if sc, ok := st.Score(q, e.text); ok {
				verseScore, strategy = sc, st.Name()
				break
			}
		}
	}

	if q.Runes < s.cfg.Chapter.MaxQueryRunes {
		chapterScore := fuzz.PartialRatio(q.Text, e.chapter)
		if chapterScore >= s.cfg.Chapter.Floor && chapterScore > verseScore {
			return chapterScore, "chapter"
		}
	}
	return verseScore, strategy
}
