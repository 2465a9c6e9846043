package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanWeeks renders a fractional week count such as "2.5 weeks" or "1 week".
func HumanWeeks(weeks float64) string {
	if weeks == 1 {
		return "1 week"
	}
	if weeks == float64(int(weeks)) {
		return fmt.Sprintf("%d weeks", int(weeks))
	}
	return fmt.Sprintf("%.1f weeks", weeks)
}

// FormatScore renders a 0-100 score colored by its value.
func FormatScore(score float64) string {
	return ScoreStyle(score).Render(fmt.Sprintf("%.0f", score))
}

// SkillLabel capitalizes a skill or category name for display.
func SkillLabel(s string) string {
	if s == "" {
		return "--"
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

// warningLines renders service warnings, one indented yellow line each.
func warningLines(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
}
