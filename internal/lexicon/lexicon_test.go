package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCues(t *testing.T) {
	lx := Default()

	assert.True(t, lx.HasVerbEnding("செல்கிறேன்"))
	assert.True(t, lx.HasVerbEnding("படிப்பேன்"))
	assert.False(t, lx.HasVerbEnding("உலகு"))

	assert.True(t, lx.IsTimeWord("இன்று"))
	assert.False(t, lx.IsTimeWord("இன்றே"))

	assert.True(t, lx.IsModernNoun("பள்ளி"))
	assert.False(t, lx.IsModernNoun("பள்ளிக்கு"))

	name, ok := lx.NamedEntity("அந்த இராமன் வந்தான்")
	assert.True(t, ok)
	assert.Equal(t, "இராமன்", name)
	_, ok = lx.NamedEntity("அகர முதல எழுத்தெல்லாம்")
	assert.False(t, ok)
}

func TestGloss(t *testing.T) {
	lx := Default()
	m, ok := lx.Gloss("வணக்கம்")
	require.True(t, ok)
	assert.Equal(t, "greetings/hello", m)

	_, ok = lx.Gloss("அகர")
	assert.False(t, ok)
	assert.Greater(t, lx.GlossSize(), 500)
}

func TestPolarity(t *testing.T) {
	lx := Default()
	pos, neg, _ := lx.Polarity("மகிழ்ச்சியாக")
	assert.True(t, pos)
	assert.False(t, neg)

	pos, neg, neu := lx.Polarity("அகர")
	assert.False(t, pos)
	assert.False(t, neg)
	assert.False(t, neu)
}

func TestRules(t *testing.T) {
	lx := Default()
	assert.Equal(t, "கல்வி (Education)", lx.Theme("நான் பள்ளிக்கு செல்கிறேன்"))
	assert.Equal(t, "பொதுவான தமிழ் உரை (General Tamil text)", lx.Theme("அகர"))

	assert.Equal(t, "நீதியான வாழ்க்கை வாழ வேண்டும்", lx.Moral("அறம் செய"))
	assert.Equal(t, "தமிழ் இலக்கியம் வாழ்க்கைக்கு வழிகாட்டும் ஒளி", lx.Moral("அகர"))

	assert.Equal(t, "திருக்குறள் (அனுமானம்)", lx.LiteratureGuess("கற்க கசடற"))
	assert.Equal(t, "தமிழ் இலக்கியம் (பொது)", lx.LiteratureGuess("அகர"))
}

func TestLiteratureGuessLengthLimit(t *testing.T) {
	lx := New(Tables{
		Literature:    []Rule{{Keywords: []string{"அ"}, MaxRunes: 3, Label: "short"}},
		DefaultSource: "none",
	})
	assert.Equal(t, "short", lx.LiteratureGuess("அ"))
	assert.Equal(t, "none", lx.LiteratureGuess("அஅஅ"))
}

func TestNewCopiesTables(t *testing.T) {
	tables := Tables{TimeWords: []string{"இன்று"}, Gloss: map[string]string{"அ": "a"}}
	lx := New(tables)
	tables.Gloss["அ"] = "changed"
	tables.TimeWords[0] = "நாளை"

	m, _ := lx.Gloss("அ")
	assert.Equal(t, "a", m)
	assert.True(t, lx.IsTimeWord("இன்று"))
}
