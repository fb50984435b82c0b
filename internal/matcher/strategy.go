package matcher

import (
	"strings"

	"versematch/internal/config"
	"versematch/internal/fuzz"
	"versematch/internal/textnorm"
)

// Query is a normalized query prepared for scoring.
type Query struct {
	Text  string // normalized, line breaks flattened
	Runes int    // rune length of the normalized query, line breaks included
	words map[string]struct{}
}

// NewQuery prepares a normalized query.
func NewQuery(normalized string) Query {
	flat := textnorm.Flatten(normalized)
	return Query{
		Text:  flat,
		Runes: textnorm.RuneLen(normalized),
		words: textnorm.WordSet(flat),
	}
}

// WordCount is the number of distinct query words.
func (q Query) WordCount() int { return len(q.words) }

// overlap is the fraction of distinct query words present in verse.
func (q Query) overlap(verse string) float64 {
	if len(q.words) == 0 {
		return 0
	}
	v := textnorm.WordSet(verse)
	common := 0
	for w := range q.words {
		if _, ok := v[w]; ok {
			common++
		}
	}
	return float64(common) / float64(len(q.words))
}

// Strategy scores a query against one normalized verse text. decided is
// false when the strategy does not apply and the next one should run.
type Strategy interface {
	Name() string
	Score(q Query, verse string) (score int, decided bool)
}

// DefaultStrategies is the scoring order: exact, then containment, then fuzzy.
func DefaultStrategies(cfg config.MatchingConfig) []Strategy {
	return []Strategy{
		Exact{},
		Containment{cfg: cfg.Containment},
		Fuzzy{cfg: cfg.Fuzzy},
	}
}

// Exact scores identical texts 100.
type Exact struct{}

func (Exact) Name() string { return "exact" }

func (Exact) Score(q Query, verse string) (int, bool) {
	if q.Text == verse {
		return 100, true
	}
	return 0, false
}

// Containment scores texts where one contains the other, banded by how much
// of the verse the query covers.
type Containment struct {
	cfg config.ContainmentConfig
}

func (Containment) Name() string { return "containment" }

func (c Containment) Score(q Query, verse string) (int, bool) {
	if verse == "" || q.Text == "" {
		return 0, true
	}
	if !strings.Contains(verse, q.Text) && !strings.Contains(q.Text, verse) {
		return 0, false
	}
	ql := float64(textnorm.RuneLen(q.Text))
	vl := float64(textnorm.RuneLen(verse))
	switch {
	case ql >= vl*c.cfg.FullLength:
		return c.cfg.FullScore, true
	case ql >= vl*c.cfg.PartialLength:
		return c.cfg.PartialScore, true
	}
	ov := q.overlap(verse)
	if ov >= c.cfg.MinOverlap {
		return c.cfg.OverlapScore, true
	}
	return int(c.cfg.DecayScale * ov), true
}

// Fuzzy takes the better of token-set and partial similarity and then
// validates it against word overlap.
type Fuzzy struct {
	cfg config.FuzzyConfig
}

func (Fuzzy) Name() string { return "fuzzy" }

func (f Fuzzy) Score(q Query, verse string) (int, bool) {
	if verse == "" || q.Text == "" {
		return 0, true
	}
	score := max(fuzz.TokenSetRatio(q.Text, verse), fuzz.PartialRatio(q.Text, verse))
	lengthRatio := 0.0
	if vl := textnorm.RuneLen(verse); vl > 0 {
		lengthRatio = float64(textnorm.RuneLen(q.Text)) / float64(vl)
	}
	return f.Validate(score, q.WordCount(), q.overlap(verse), lengthRatio), true
}

// Validate adjusts a raw fuzzy score for a query of words distinct words
// whose word overlap with the verse is overlap. A near-perfect score is kept
// only when the query is long enough relative to the verse or shares enough
// words with it; lower scores are penalized in overlap bands.
func (f Fuzzy) Validate(score, words int, overlap, lengthRatio float64) int {
	if score >= f.cfg.High {
		if lengthRatio >= f.cfg.MinLengthRatio {
			return score
		}
		need := f.cfg.LongHighOverlap
		if words <= f.cfg.ShortWords {
			need = f.cfg.ShortHighOverlap
		}
		if overlap < need {
			return 0
		}
		return score
	}

	s := float64(score)
	if words <= f.cfg.ShortWords {
		if overlap < f.cfg.ShortMinOverlap {
			return int(s * overlap)
		}
		return score
	}
	if score >= f.cfg.Band {
		switch {
		case overlap < f.cfg.HighLowOverlap:
			return int(s * overlap * f.cfg.HighRescue)
		case overlap < f.cfg.HighMidOverlap:
			return int(s * f.cfg.HighPenalty)
		}
		return score
	}
	switch {
	case overlap < f.cfg.MedLowOverlap:
		return int(s * overlap * f.cfg.MedRescue)
	case overlap < f.cfg.MedMidOverlap:
		return int(s * f.cfg.MedPenalty)
	}
	return score
}
