package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"versematch/internal/analyzer"
	"versematch/internal/corpus"
)

var (
	accent  = lipgloss.Color("#8BC34A")
	muted   = lipgloss.Color("#6b7785")
	warning = lipgloss.Color("#FFC107")
)

type styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Verse   lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Warning: lipgloss.NewStyle().Foreground(warning),
		Verse: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}

func (s styles) field(label, value string) string {
	if value == "" {
		return ""
	}
	return s.Label.Render(label+":") + " " + value
}

// joinLines stacks non-empty blocks.
func joinLines(blocks ...string) string {
	kept := blocks[:0]
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}

func (s styles) renderResult(r analyzer.Result) string {
	if r.Found {
		header := s.Title.Render(fmt.Sprintf("✓ %s #%s", r.Book, r.Number)) +
			"  " + s.Muted.Render(fmt.Sprintf("%.0f%%", r.Confidence*100))
		var characters string
		if len(r.Characters) > 0 {
			characters = s.field("Characters", strings.Join(r.Characters, ", "))
		}
		var period string
		if r.BookMetadata != nil {
			period = s.field("Period", r.BookMetadata.Period)
		}
		return joinLines(
			header,
			s.field("Section", r.Section),
			s.field("Chapter", r.Chapter),
			s.Verse.Render(r.Verse),
			s.field("Meaning", r.Meaning),
			s.field("English", r.EnglishMeaning),
			s.field("Author", r.Author),
			characters,
			period,
		)
	}

	// Empty and invalid input carry only a message.
	if r.Sentiment == nil {
		return s.Warning.Render(fmt.Sprintf("✗ %s (%s)", r.Message, r.Source))
	}

	return joinLines(
		s.Title.Render("✗ "+r.Book),
		r.Meaning,
		s.field("Sentiment", fmt.Sprintf("%s %s %.2f", r.Sentiment.Emoji, r.Sentiment.Label, r.Sentiment.Score)),
		s.field("Theme", r.Theme),
		s.field("Moral", r.Moral),
		s.field("Literature", r.Literature),
	)
}

func (s styles) renderVerse(key string, v corpus.VerseRecord) string {
	return joinLines(
		s.Title.Render(fmt.Sprintf("%s #%s", key, v.VerseNumber)),
		s.field("Section", v.Section),
		s.field("Chapter", v.Chapter),
		s.Verse.Render(v.Text),
		s.field("Meaning", v.Meaning),
		s.field("Summary", v.Summary),
		s.field("English", v.EnglishMeaning),
	)
}

func (s styles) renderBooks(books []corpus.BookSummary) string {
	lines := make([]string, 0, len(books))
	for _, b := range books {
		line := s.Title.Render(b.Title) + " " + s.Muted.Render("("+b.Key+")")
		if b.Author != "" {
			line += " " + b.Author
		}
		line += s.Muted.Render(fmt.Sprintf(" %d verses", b.VerseCount))
		lines = append(lines, line)
	}
	return joinLines(lines...)
}

func (s styles) renderStats(st corpus.Statistics) string {
	lines := []string{
		s.Title.Render("Library"),
		s.field("Books", fmt.Sprint(st.TotalBooks)),
		s.field("Loaded verses", fmt.Sprint(st.TotalLoadedVerses)),
		s.field("Expected verses", fmt.Sprint(st.TotalExpectedVerses)),
		s.field("Coverage", fmt.Sprintf("%.2f%%", st.CoveragePercent)),
	}
	for _, b := range st.Books {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("  %s: %d", b.Key, b.VerseCount)))
	}
	return joinLines(lines...)
}
