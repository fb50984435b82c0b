// Package fallback describes text that matched no verse: a word gloss from
// the static dictionary, a keyword sentiment label and rough theme, moral and
// literature-style hints.
//
// Analyze never fails. A fault while building the description is recovered
// and reported as a degraded result.
package fallback

import (
	"fmt"
	"math"
	"strings"

	"versematch/internal/lexicon"
	"versematch/internal/logging"
)

// Markers shown to users.
const (
	NotInDatabase = "இந்த உரை தரவுத்தளத்தில் இல்லை"
	WordNotFound  = "இந்த சொல் தரவுத்தளத்தில் இல்லை"
	GlossHeader   = "சொற்கள் பொருள்:"
	Unknown       = "unknown"
)

// Sentiment labels.
const (
	LabelNeutral  = "நடுநிலை (Neutral)"
	LabelPositive = "நேர்மறை (Positive)"
	LabelNegative = "எதிர்மறை (Negative)"
	LabelMixed    = "கலப்பு (Mixed)"
)

// GlossEntry is the dictionary meaning of one token.
type GlossEntry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning,omitempty"`
	Found   bool   `json:"found"`
}

// Gloss is the word-by-word meaning of a text.
type Gloss struct {
	Entries []GlossEntry `json:"entries"`
	Hits    int          `json:"hits"`
	Text    string       `json:"text"`
}

// Sentiment is a keyword-count sentiment label.
type Sentiment struct {
	Label    string  `json:"label"`
	Emoji    string  `json:"emoji"`
	Score    float64 `json:"score"`
	Positive int     `json:"positive_words"`
	Negative int     `json:"negative_words"`
	Neutral  int     `json:"neutral_words"`
}

// Result is the fallback description of a text.
type Result struct {
	Gloss      Gloss     `json:"gloss"`
	Sentiment  Sentiment `json:"sentiment"`
	Theme      string    `json:"theme"`
	Moral      string    `json:"moral"`
	Literature string    `json:"literature"`
	Degraded   bool      `json:"degraded,omitempty"`
	Fault      string    `json:"fault,omitempty"`
}

// Analyzer builds fallback descriptions from a lexicon.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New returns an analyzer over lex.
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze describes text, which should already be normalized.
func (a *Analyzer) Analyze(text string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Sprintf("%v", r)
			logging.FallbackError("fallback analysis failed: %s", err)
			logging.Audit().FallbackFault(err)
			res = degraded(err)
		}
	}()

	res = Result{
		Gloss:      a.Gloss(text),
		Sentiment:  a.Sentiment(text),
		Theme:      a.lex.Theme(text),
		Moral:      a.lex.Moral(text),
		Literature: a.lex.LiteratureGuess(text),
	}
	logging.FallbackDebug("gloss hits=%d sentiment=%s", res.Gloss.Hits, res.Sentiment.Label)
	return res
}

func degraded(fault string) Result {
	return Result{
		Gloss:      Gloss{Text: NotInDatabase},
		Sentiment:  neutral(0, 0, 0),
		Theme:      Unknown,
		Moral:      Unknown,
		Literature: Unknown,
		Degraded:   true,
		Fault:      fault,
	}
}

// Gloss looks up every token of text. Tokens lose surrounding punctuation
// before lookup.
func (a *Analyzer) Gloss(text string) Gloss {
	var g Gloss
	for _, tok := range strings.Fields(text) {
		word := strings.Trim(tok, ".,!?;:")
		if word == "" {
			continue
		}
		if m, ok := a.lex.Gloss(word); ok {
			g.Entries = append(g.Entries, GlossEntry{Word: word, Meaning: m, Found: true})
			g.Hits++
			continue
		}
		g.Entries = append(g.Entries, GlossEntry{Word: word})
	}
	g.Text = renderGloss(g.Entries)
	return g
}

func renderGloss(entries []GlossEntry) string {
	var b strings.Builder
	b.WriteString(NotInDatabase)
	if len(entries) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(GlossHeader)
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(e.Word)
		b.WriteString(" = ")
		if e.Found {
			b.WriteString(e.Meaning)
		} else {
			b.WriteString(WordNotFound)
		}
	}
	return b.String()
}

// Sentiment counts the words of text containing a positive, negative or
// neutral keyword. Only positive and negative words decide the label.
func (a *Analyzer) Sentiment(text string) Sentiment {
	var pos, neg, neu int
	for _, w := range strings.Fields(text) {
		p, n, u := a.lex.Polarity(w)
		if p {
			pos++
		}
		if n {
			neg++
		}
		if u {
			neu++
		}
	}

	total := pos + neg
	switch {
	case total == 0:
		return neutral(pos, neg, neu)
	case pos > neg:
		return Sentiment{
			Label: LabelPositive, Emoji: "😊",
			Score:    roundScore(0.7 + float64(pos)/float64(total*2)),
			Positive: pos, Negative: neg, Neutral: neu,
		}
	case neg > pos:
		return Sentiment{
			Label: LabelNegative, Emoji: "😞",
			Score:    roundScore(0.3 - float64(neg)/float64(total*2)),
			Positive: pos, Negative: neg, Neutral: neu,
		}
	default:
		return Sentiment{
			Label: LabelMixed, Emoji: "😐", Score: 0.5,
			Positive: pos, Negative: neg, Neutral: neu,
		}
	}
}

func neutral(pos, neg, neu int) Sentiment {
	return Sentiment{Label: LabelNeutral, Emoji: "😐", Score: 0.5, Positive: pos, Negative: neg, Neutral: neu}
}

// roundScore rounds to two decimals and clamps to [0, 1]. math.Round sends
// halves away from zero (0.125 gives 0.13), not to even as the fuzz scores do.
// Unclamped, an all-positive text would score 1.2.
func roundScore(s float64) float64 {
	s = math.Round(s*100) / 100
	return math.Min(1, math.Max(0, s))
}
