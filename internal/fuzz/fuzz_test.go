package fuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "அகர முதல", "அகர முதல", 100},
		{"both empty", "", "", 100},
		{"one empty", "", "அ", 0},
		{"three of four", "abcd", "abce", 75},
		{"half rounds to even", "abcdefgh", "aijklmno", 12},
		{"disjoint", "abc", "xyz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.a, tt.b))
			assert.Equal(t, tt.want, Ratio(tt.b, tt.a))
		})
	}
}

func TestPartialRatio(t *testing.T) {
	assert.Equal(t, 100, PartialRatio("abc", "xxabcxx"))
	assert.Equal(t, 100, PartialRatio("xxabcxx", "abc"))
	assert.Equal(t, 50, PartialRatio("ab", "ac"))
	assert.Equal(t, 0, PartialRatio("", "abc"))
	assert.Equal(t, 100, PartialRatio("கடவுள்", "கடவுள் வாழ்த்து"))
}

func TestTokenSetRatio(t *testing.T) {
	assert.Equal(t, 100, TokenSetRatio("b a", "a b"))
	assert.Equal(t, 100, TokenSetRatio("a b", "a b c d"), "subset scores full")
	assert.Equal(t, 0, TokenSetRatio("", "a"))
	assert.Equal(t, 0, TokenSetRatio("!!!", "a"))
	assert.Equal(t, 100, TokenSetRatio("அகர முதல", "அகர முதல எழுத்தெல்லாம்"))
}

func TestProcessSplitsOnCombiningMarks(t *testing.T) {
	// ு is a vowel sign, not a letter, so it becomes a boundary.
	assert.Equal(t, "ம தல", process("முதல"))
	assert.Equal(t, "abc", process("  ABC!  "))
	assert.Equal(t, "", process("é"))
}

func TestScoresStayInRange(t *testing.T) {
	pairs := [][2]string{
		{"அகர முதல எழுத்தெல்லாம்", "ஆதி பகவன் முதற்றே உலகு"},
		{"கற்க", "கற்க கசடறக் கற்பவை கற்றபின் நிற்க அதற்குத் தக"},
		{"a", "b"},
	}
	for _, p := range pairs {
		for _, s := range []int{Ratio(p[0], p[1]), PartialRatio(p[0], p[1]), TokenSetRatio(p[0], p[1])} {
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, 100)
		}
	}
}
