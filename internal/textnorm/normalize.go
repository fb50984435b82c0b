// Package textnorm normalizes Tamil text for comparison.
//
// Every other package compares text only after it has been through Normalize,
// so the functions here must stay total and deterministic: the same input
// always yields the same output and nothing ever fails.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Tamil Unicode block.
const (
	BlockStart = '\u0B80'
	BlockEnd   = '\u0BFF'
)

// InScript reports whether r belongs to the Tamil block.
func InScript(r rune) bool {
	return r >= BlockStart && r <= BlockEnd
}

// Normalize drops every rune outside the Tamil block, collapses runs of
// horizontal whitespace to a single space and runs of whitespace containing a
// line break to a single "\n", then trims. Line structure is preserved so the
// query classifier can count lines; use Flatten for comparisons.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	pendingBreak := false
	for _, r := range text {
		switch {
		case InScript(r):
			if b.Len() > 0 {
				if pendingBreak {
					b.WriteByte('\n')
				} else if pendingSpace {
					b.WriteByte(' ')
				}
			}
			pendingSpace, pendingBreak = false, false
			b.WriteRune(r)
		case r == '\n' || r == '\r':
			pendingBreak = true
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	// Composition runs after filtering: stripping can bring a vowel sign next
	// to its consonant, and a second pass must not change the result.
	return norm.NFC.String(b.String())
}

// Flatten turns a normalized, possibly multi-line string into a single line.
func Flatten(normalized string) string {
	return strings.ReplaceAll(normalized, "\n", " ")
}

// Clean is Normalize followed by Flatten.
func Clean(text string) string {
	return Flatten(Normalize(text))
}

// IsValid reports whether text carries any Tamil content at all.
func IsValid(text string) bool {
	if Normalize(text) == "" {
		return false
	}
	return strings.IndexFunc(text, InScript) >= 0
}

// Numeral returns the trimmed text when it is made only of ASCII digits.
func Numeral(text string) (string, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	return s, true
}

// Words splits on whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// LineCount is the number of line breaks plus one.
func LineCount(normalized string) int {
	return strings.Count(normalized, "\n") + 1
}

// RuneLen is the length of s in code points.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// WordSet returns the distinct whitespace-separated words of s.
func WordSet(s string) map[string]struct{} {
	words := strings.Fields(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Overlap is the fraction of distinct query words that also appear in the
// verse. An empty query yields 0.
func Overlap(query, verse string) float64 {
	q := WordSet(query)
	if len(q) == 0 {
		return 0
	}
	v := WordSet(verse)
	common := 0
	for w := range q {
		if _, ok := v[w]; ok {
			common++
		}
	}
	return float64(common) / float64(len(q))
}
