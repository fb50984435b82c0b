package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versematch/internal/lexicon"
)

func newAnalyzer() *Analyzer {
	return New(lexicon.Default())
}

func TestSingleDictionaryWord(t *testing.T) {
	res := newAnalyzer().Analyze("வணக்கம்")

	require.Len(t, res.Gloss.Entries, 1)
	assert.Equal(t, GlossEntry{Word: "வணக்கம்", Meaning: "greetings/hello", Found: true}, res.Gloss.Entries[0])
	assert.Equal(t, 1, res.Gloss.Hits)
	assert.Contains(t, res.Gloss.Text, "வணக்கம் = greetings/hello")
	assert.Contains(t, res.Gloss.Text, NotInDatabase)

	assert.Equal(t, LabelNeutral, res.Sentiment.Label)
	assert.Equal(t, 0.5, res.Sentiment.Score)
	assert.False(t, res.Degraded)
}

func TestGlossMarksUnknownWords(t *testing.T) {
	g := newAnalyzer().Gloss("வணக்கம்! ழழழ ,")
	require.Len(t, g.Entries, 2)
	assert.True(t, g.Entries[0].Found)
	assert.Equal(t, GlossEntry{Word: "ழழழ"}, g.Entries[1])
	assert.Equal(t, 1, g.Hits)

	lines := strings.Split(g.Text, "\n")
	assert.Equal(t, []string{
		NotInDatabase,
		GlossHeader,
		"வணக்கம் = greetings/hello",
		"ழழழ = " + WordNotFound,
	}, lines)
}

func TestGlossEmptyText(t *testing.T) {
	g := newAnalyzer().Gloss("")
	assert.Empty(t, g.Entries)
	assert.Equal(t, NotInDatabase, g.Text)
}

func TestSentiment(t *testing.T) {
	a := newAnalyzer()
	tests := []struct {
		name  string
		text  string
		label string
		score float64
		pos   int
		neg   int
	}{
		{"no sentiment words", "ழழழ", LabelNeutral, 0.5, 0, 0},
		{"tie", "அன்பு கவலை", LabelMixed, 0.5, 1, 1},
		{"positive only clamps", "அன்பு", LabelPositive, 1.0, 1, 0},
		{"positive dominant", "அன்பு வெற்றி புகழ் அமைதி மகிழ்ச்சி கவலை பயம் கோபம் துன்பம்", LabelPositive, 0.98, 5, 4},
		{"negative only clamps", "கவலை", LabelNegative, 0.0, 0, 1},
		{"negative dominant", "கவலை பயம் கோபம் துன்பம் வேதனை அன்பு வெற்றி புகழ் அமைதி", LabelNegative, 0.02, 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := a.Sentiment(tt.text)
			assert.Equal(t, tt.label, s.Label)
			assert.InDelta(t, tt.score, s.Score, 1e-9)
			assert.Equal(t, tt.pos, s.Positive)
			assert.Equal(t, tt.neg, s.Negative)
			assert.GreaterOrEqual(t, s.Score, 0.0)
			assert.LessOrEqual(t, s.Score, 1.0)
		})
	}
}

func TestSentimentCountsNeutralWords(t *testing.T) {
	s := newAnalyzer().Sentiment("நாளை பிறகு")
	assert.Equal(t, LabelNeutral, s.Label)
	assert.Equal(t, 2, s.Neutral)
}

func TestHints(t *testing.T) {
	res := newAnalyzer().Analyze("அறம் செய விரும்பு")
	assert.Equal(t, "அறநெறி (Virtue)", res.Theme)
	assert.Equal(t, "நீதியான வாழ்க்கை வாழ வேண்டும்", res.Moral)
	assert.Equal(t, "திருக்குறள் (அனுமானம்)", res.Literature)

	res = newAnalyzer().Analyze("ழழழ")
	assert.Equal(t, "பொதுவான தமிழ் உரை (General Tamil text)", res.Theme)
	assert.Equal(t, "தமிழ் இலக்கியம் வாழ்க்கைக்கு வழிகாட்டும் ஒளி", res.Moral)
	assert.Equal(t, "தமிழ் இலக்கியம் (பொது)", res.Literature)
}

func TestAnalyzeRecoversFaults(t *testing.T) {
	var a Analyzer // no lexicon
	res := a.Analyze("வணக்கம்")
	assert.True(t, res.Degraded)
	assert.NotEmpty(t, res.Fault)
	assert.Equal(t, Unknown, res.Theme)
	assert.Equal(t, LabelNeutral, res.Sentiment.Label)
	assert.Equal(t, NotInDatabase, res.Gloss.Text)
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.13},
		{0.375, 0.38},
		{0.7 + 1.0/6, 0.87},
		{1.2, 1},
		{-0.2, 0},
		{0.5, 0.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundScore(tt.in), "roundScore(%v)", tt.in)
	}
}
