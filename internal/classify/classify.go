// Package classify decides, once per query, what shape of text the query is
// and how strictly it must be matched.
//
// The decision is structural first: a query shaped like a verse (a two-line
// couplet, or a long or multi-line passage, or one naming an epic character)
// is never treated as a modern sentence, whatever lexical cues it carries.
// Only queries that do not look like verse are checked for modern-sentence
// cues, and those, along with very short queries, are matched in strict mode.
package classify

import (
	"versematch/internal/config"
	"versematch/internal/lexicon"
	"versematch/internal/logging"
	"versematch/internal/textnorm"
)

// Verdict is the classification of one normalized query.
type Verdict struct {
	Words int
	Lines int
	Runes int

	// Lexical cues.
	VerbEnding  bool
	TimeWord    bool
	ModernNoun  bool
	NamedEntity string // first epic character name found, if any

	// Structural shape.
	ShortAphorism bool
	LongNarrative bool

	ModernSentence bool
	LooksLikeVerse bool
	Strict         bool
	Threshold      int
}

// HasNamedEntity reports whether an epic character name was found.
func (v Verdict) HasNamedEntity() bool { return v.NamedEntity != "" }

// Classify inspects a normalized query. query may span several lines.
func Classify(query string, lex *lexicon.Lexicon, cfg config.MatchingConfig) Verdict {
	words := textnorm.Words(query)
	v := Verdict{
		Words: len(words),
		Lines: textnorm.LineCount(query),
		Runes: textnorm.RuneLen(query),
	}

	for _, w := range words {
		if !v.VerbEnding && lex.HasVerbEnding(w) {
			v.VerbEnding = true
		}
		if !v.TimeWord && lex.IsTimeWord(w) {
			v.TimeWord = true
		}
		if !v.ModernNoun && lex.IsModernNoun(w) {
			v.ModernNoun = true
		}
	}
	v.NamedEntity, _ = lex.NamedEntity(query)

	shape := cfg.Shape
	v.ShortAphorism = v.Lines == shape.AphorismLines &&
		v.Words >= shape.AphorismMinWords && v.Words <= shape.AphorismMaxWords
	v.LongNarrative = v.HasNamedEntity() ||
		v.Words > shape.NarrativeWords || v.Lines > shape.NarrativeLines
	v.LooksLikeVerse = v.ShortAphorism || v.LongNarrative

	minWords := cfg.Strict.MinSentenceWords
	v.ModernSentence = v.VerbEnding || (v.TimeWord && v.Words >= minWords) || v.ModernNoun

	switch {
	case v.LooksLikeVerse:
		v.Threshold = baseThreshold(v.Runes, cfg.Thresholds)
	case (v.ModernSentence && v.Words >= minWords) || v.Words <= cfg.Strict.MaxShortWords:
		v.Strict = true
		v.Threshold = cfg.Strict.Threshold
	default:
		v.Threshold = baseThreshold(v.Runes, cfg.Thresholds)
	}

	logging.ClassifyDebug("words=%d lines=%d runes=%d aphorism=%v narrative=%v modern=%v strict=%v threshold=%d",
		v.Words, v.Lines, v.Runes, v.ShortAphorism, v.LongNarrative, v.ModernSentence, v.Strict, v.Threshold)
	return v
}

func baseThreshold(runes int, t config.ThresholdConfig) int {
	switch {
	case runes > t.LongRunes:
		return t.Long
	case runes > t.MediumRunes:
		return t.Medium
	default:
		return t.Short
	}
}
