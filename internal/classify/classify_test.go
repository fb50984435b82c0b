package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"versematch/internal/config"
	"versematch/internal/lexicon"
	"versematch/internal/textnorm"
)

func classify(text string) Verdict {
	return Classify(textnorm.Normalize(text), lexicon.Default(), config.DefaultMatchingConfig())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		aphorism  bool
		narrative bool
		strict    bool
		threshold int
	}{
		{
			name:      "couplet",
			text:      "அகர முதல எழுத்தெல்லாம் ஆதி\nபகவன் முதற்றே உலகு",
			aphorism:  true,
			threshold: 50,
		},
		{
			name:      "modern sentence with verb ending",
			text:      "நான் இன்று பள்ளிக்கு செல்கிறேன்",
			strict:    true,
			threshold: 98,
		},
		{
			name:      "short query",
			text:      "அறம் பொருள்",
			strict:    true,
			threshold: 98,
		},
		{
			name:      "single word",
			text:      "வணக்கம்",
			strict:    true,
			threshold: 98,
		},
		{
			name:      "character name overrides shortness",
			text:      "இராமன் வந்தான்",
			narrative: true,
			threshold: 50,
		},
		{
			name:      "more than two lines",
			text:      "அறம்\nபொருள்\nஇன்பம்",
			narrative: true,
			threshold: 50,
		},
		{
			name:      "plain five words",
			text:      "அறம் செய்ய விரும்பு ஆறுவது சினம்",
			threshold: 50,
		},
		{
			name:      "time word with enough words",
			text:      "அறம் பொருள் இன்று இன்பம்",
			strict:    true,
			threshold: 98,
		},
		{
			name:      "modern noun",
			text:      "அறம் பொருள் பள்ளி இன்பம்",
			strict:    true,
			threshold: 98,
		},
		{
			name:      "couplet shape ignores modern cues",
			text:      "நான் இன்று காலையில் பள்ளிக்கு\nசென்று பாடம் படித்தேன் மகிழ்ந்தேன்",
			aphorism:  true,
			threshold: 48,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := classify(tt.text)
			assert.Equal(t, tt.aphorism, v.ShortAphorism, "short aphorism")
			assert.Equal(t, tt.narrative, v.LongNarrative, "long narrative")
			assert.Equal(t, tt.aphorism || tt.narrative, v.LooksLikeVerse, "looks like verse")
			assert.Equal(t, tt.strict, v.Strict, "strict")
			assert.Equal(t, tt.threshold, v.Threshold, "threshold")
		})
	}
}

func TestClassifyCounts(t *testing.T) {
	v := classify("அகர முதல எழுத்தெல்லாம் ஆதி\nபகவன் முதற்றே உலகு")
	assert.Equal(t, 7, v.Words)
	assert.Equal(t, 2, v.Lines)

	v = classify("நான் இன்று பள்ளிக்கு செல்கிறேன்")
	assert.True(t, v.VerbEnding)
	assert.True(t, v.TimeWord)
	assert.True(t, v.ModernSentence)
	assert.Equal(t, 1, v.Lines)

	v = classify("சீதை")
	assert.Equal(t, "சீதை", v.NamedEntity)
	assert.True(t, v.HasNamedEntity())
}

func TestEightWordCoupletIsAphorismNotNarrative(t *testing.T) {
	v := classify("கற்க கசடறக் கற்பவை கற்றபின் நன்று\nநிற்க அதற்குத் தக")
	assert.Equal(t, 8, v.Words)
	assert.True(t, v.ShortAphorism)
	assert.False(t, v.LongNarrative)
	assert.False(t, v.Strict)
}

func TestBaseThreshold(t *testing.T) {
	th := config.DefaultMatchingConfig().Thresholds
	assert.Equal(t, 50, baseThreshold(10, th))
	assert.Equal(t, 50, baseThreshold(50, th))
	assert.Equal(t, 48, baseThreshold(51, th))
	assert.Equal(t, 48, baseThreshold(100, th))
	assert.Equal(t, 50, baseThreshold(101, th))
}

func TestClassifyUsesConfig(t *testing.T) {
	cfg := config.DefaultMatchingConfig()
	cfg.Strict.Threshold = 90
	cfg.Strict.MaxShortWords = 1
	lex := lexicon.Default()

	v := Classify("அறம் பொருள்", lex, cfg)
	assert.False(t, v.Strict)

	v = Classify("அறம்", lex, cfg)
	assert.True(t, v.Strict)
	assert.Equal(t, 90, v.Threshold)
}
