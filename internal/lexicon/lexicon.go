// Package lexicon holds the static word tables the classifier and the
// fallback analyzer consult: modern-usage cues, narrative character names,
// sentiment keyword sets, the bilingual gloss dictionary and the keyword
// rules behind theme, moral and literature hints.
//
// A Lexicon is immutable once built and safe for concurrent use. Components
// receive one explicitly instead of reaching for package state.
package lexicon

import (
	"strings"
	"unicode/utf8"
)

// Rule maps a set of substring keywords to a label. MaxRunes, when non-zero,
// restricts the rule to texts shorter than that many code points.
type Rule struct {
	Keywords []string
	MaxRunes int
	Label    string
}

// Tables is the raw material for a Lexicon.
type Tables struct {
	VerbEndings    []string
	TimeWords      []string
	ModernNouns    []string
	NarrativeNames []string
	Positive       []string
	Negative       []string
	Neutral        []string
	Gloss          map[string]string
	Themes         []Rule
	DefaultTheme   string
	Morals         []Rule
	DefaultMoral   string
	Literature     []Rule
	DefaultSource  string
}

// Lexicon answers membership questions over a fixed set of tables.
type Lexicon struct {
	verbEndings    []string
	timeWords      map[string]struct{}
	modernNouns    map[string]struct{}
	narrativeNames []string
	positive       []string
	negative       []string
	neutral        []string
	gloss          map[string]string
	themes         []Rule
	defaultTheme   string
	morals         []Rule
	defaultMoral   string
	literature     []Rule
	defaultSource  string
}

// New copies t into a Lexicon.
func New(t Tables) *Lexicon {
	g := make(map[string]string, len(t.Gloss))
	for k, v := range t.Gloss {
		g[k] = v
	}
	return &Lexicon{
		verbEndings:    clone(t.VerbEndings),
		timeWords:      toSet(t.TimeWords),
		modernNouns:    toSet(t.ModernNouns),
		narrativeNames: clone(t.NarrativeNames),
		positive:       clone(t.Positive),
		negative:       clone(t.Negative),
		neutral:        clone(t.Neutral),
		gloss:          g,
		themes:         cloneRules(t.Themes),
		defaultTheme:   t.DefaultTheme,
		morals:         cloneRules(t.Morals),
		defaultMoral:   t.DefaultMoral,
		literature:     cloneRules(t.Literature),
		defaultSource:  t.DefaultSource,
	}
}

// Default returns the built-in Tamil lexicon.
func Default() *Lexicon {
	return New(DefaultTables())
}

// HasVerbEnding reports whether word ends in a modern finite-verb suffix.
func (l *Lexicon) HasVerbEnding(word string) bool {
	for _, end := range l.verbEndings {
		if strings.HasSuffix(word, end) {
			return true
		}
	}
	return false
}

// IsTimeWord reports whether word is a modern time expression.
func (l *Lexicon) IsTimeWord(word string) bool {
	_, ok := l.timeWords[word]
	return ok
}

// IsModernNoun reports whether word names a thing of modern life.
func (l *Lexicon) IsModernNoun(word string) bool {
	_, ok := l.modernNouns[word]
	return ok
}

// NamedEntity returns the first narrative character name found anywhere in
// text.
func (l *Lexicon) NamedEntity(text string) (string, bool) {
	for _, name := range l.narrativeNames {
		if strings.Contains(text, name) {
			return name, true
		}
	}
	return "", false
}

// Gloss looks up the meaning of a single word.
func (l *Lexicon) Gloss(word string) (string, bool) {
	m, ok := l.gloss[word]
	return m, ok
}

// GlossSize is the number of dictionary entries.
func (l *Lexicon) GlossSize() int { return len(l.gloss) }

// Polarity reports which sentiment sets have a keyword contained in word.
func (l *Lexicon) Polarity(word string) (positive, negative, neutral bool) {
	return containsAny(word, l.positive), containsAny(word, l.negative), containsAny(word, l.neutral)
}

// Theme returns the label of the first theme rule whose keywords occur in
// text.
func (l *Lexicon) Theme(text string) string {
	return firstRule(l.themes, text, l.defaultTheme)
}

// Moral returns the lesson associated with the first moral keyword in text.
func (l *Lexicon) Moral(text string) string {
	return firstRule(l.morals, text, l.defaultMoral)
}

// LiteratureGuess names the literary tradition text most resembles.
func (l *Lexicon) LiteratureGuess(text string) string {
	return firstRule(l.literature, text, l.defaultSource)
}

func firstRule(rules []Rule, text, fallback string) string {
	n := utf8.RuneCountInString(text)
	for _, r := range rules {
		if r.MaxRunes > 0 && n >= r.MaxRunes {
			continue
		}
		if containsAny(text, r.Keywords) {
			return r.Label
		}
	}
	return fallback
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Keywords: clone(r.Keywords), MaxRunes: r.MaxRunes, Label: r.Label}
	}
	return out
}
