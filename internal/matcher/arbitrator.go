package matcher

import (
	"versematch/internal/classify"
	"versematch/internal/config"
	"versematch/internal/corpus"
	"versematch/internal/logging"
)

// Outcome is the arbitrator's decision for one query.
type Outcome struct {
	Match      Match
	Found      bool
	Vetoed     bool    // a winner existed but failed the strict final check
	Candidates []Match // per-corpus winners in library order
}

// Arbitrator runs a scorer per corpus and picks one overall winner.
type Arbitrator struct {
	cfg     config.MatchingConfig
	scorers []*Scorer
}

// NewArbitrator prepares a scorer for every corpus of lib, in library order.
func NewArbitrator(lib *corpus.Library, cfg config.MatchingConfig) *Arbitrator {
	a := &Arbitrator{cfg: cfg}
	for _, c := range lib.Corpora() {
		a.scorers = append(a.scorers, NewScorer(c, cfg, nil))
	}
	return a
}

// LookupNumber returns the first corpus, in library order, holding a verse
// with this number.
func (a *Arbitrator) LookupNumber(number string) (Match, bool) {
	for _, s := range a.scorers {
		if m, ok := s.LookupNumber(number); ok {
			logging.Match("numeral %s found in %s", number, m.CorpusKey)
			return m, true
		}
	}
	return Match{}, false
}

// Arbitrate scores q against every corpus and selects the winner by boosted
// score, the earlier corpus winning ties. A strict verdict vetoes a winner
// whose raw score is below the strict minimum.
func (a *Arbitrator) Arbitrate(q Query, v classify.Verdict) Outcome {
	var out Outcome
	bestBoosted := 0.0
	for _, s := range a.scorers {
		m, ok := s.Best(q, v)
		if !ok {
			continue
		}
		out.Candidates = append(out.Candidates, m)
		if !out.Found || m.Boosted() > bestBoosted {
			out.Match, out.Found = m, true
			bestBoosted = m.Boosted()
		}
	}

	if out.Found && v.Strict && out.Match.RawScore < a.cfg.Strict.MinScore {
		logging.Match("vetoed %s/%s: raw %d below strict minimum %d",
			out.Match.CorpusKey, out.Match.Verse.VerseNumber, out.Match.RawScore, a.cfg.Strict.MinScore)
		out.Vetoed = true
		out.Found = false
	}
	return out
}
