// Package fuzz implements the approximate string similarity metrics used by
// the verse scorer. Scores are integers in [0, 100].
//
// The metrics are built on difflib's SequenceMatcher (the same algorithm as
// Python's difflib), operating on code points rather than bytes so that Tamil
// text is compared letter by letter. Results are fully deterministic.
package fuzz

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio is the plain similarity of a and b: 2*M/T scaled to 100.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	return ratioOf(codePoints(a), codePoints(b))
}

// PartialRatio is the best Ratio between the shorter string and any
// equally long window of the longer one, where windows are anchored on the
// matching blocks of the two strings.
func PartialRatio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	shorter, longer := codePoints(a), codePoints(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	m := difflib.NewMatcher(shorter, longer)
	best := 0.0
	for _, block := range m.GetMatchingBlocks() {
		start := block.B - block.A
		if start < 0 {
			start = 0
		}
		end := start + len(shorter)
		if end > len(longer) {
			end = len(longer)
		}
		r := difflib.NewMatcher(shorter, longer[start:end]).Ratio()
		if r > 0.995 {
			return 100
		}
		if r > best {
			best = r
		}
	}
	return roundScore(best)
}

// TokenSetRatio compares the sorted intersection and differences of the two
// token sets. Both inputs are first reduced to letters and numbers; every
// other rune (including Tamil vowel signs and the virama) becomes a token
// boundary.
func TokenSetRatio(a, b string) int {
	pa, pb := process(a), process(b)
	if pa == "" || pb == "" {
		return 0
	}

	ta, tb := tokenSet(pa), tokenSet(pb)
	var sect, onlyA, onlyB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			sect = append(sect, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(sect)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sorted := strings.Join(sect, " ")
	combinedA := strings.TrimSpace(sorted + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(sorted + " " + strings.Join(onlyB, " "))
	sorted = strings.TrimSpace(sorted)

	return max(
		Ratio(sorted, combinedA),
		Ratio(sorted, combinedB),
		Ratio(combinedA, combinedB),
	)
}

func ratioOf(a, b []string) int {
	return roundScore(difflib.NewMatcher(a, b).Ratio())
}

// roundScore rounds half to even, matching the reference scorer.
func roundScore(r float64) int {
	return int(math.RoundToEven(100 * r))
}

func codePoints(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// process lower-cases s, drops Latin-1 supplement runes and replaces every
// rune that is not a letter, number or underscore with a space.
func process(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 128 && r <= 255:
			continue
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
