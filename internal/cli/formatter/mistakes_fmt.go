package formatter

import (
	"fmt"
	"strings"

	"github.com/ninaorlova/lingua/internal/classifier"
	"github.com/ninaorlova/lingua/internal/domain"
)

// severityOrder lists severities worst-first for display.
var severityOrder = []domain.Severity{
	domain.SeverityCritical, domain.SeverityImportant,
	domain.SeverityModerate, domain.SeverityMinor,
}

// FormatClassification renders a single classification result.
func FormatClassification(c classifier.Classification) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Category:"), StylePurple.Render(SkillLabel(string(c.Category)))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Severity:"), severityBadge(c.Severity)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Pattern: "), StyleFg.Render(c.Pattern)))
	return b.String()
}

// FormatMistakeSummary renders the aggregated mistake picture: category
// and severity histograms plus the most frequent patterns with examples.
func FormatMistakeSummary(s *classifier.Summary) string {
	var b strings.Builder

	if s.Total == 0 {
		b.WriteString(Dim("No mistakes recorded in this window.") + "\n")
		return RenderBox("Mistakes", b.String())
	}

	b.WriteString(Bold(fmt.Sprintf("%d mistakes", s.Total)) + "\n\n")

	headers := []string{"CATEGORY", "COUNT"}
	rows := make([][]string, 0, len(s.CategoryCounts))
	for _, cat := range []domain.ErrorCategory{
		domain.CategoryArticles, domain.CategoryPrepositions, domain.CategoryTenses,
		domain.CategoryWordOrder, domain.CategoryVocabulary, domain.CategoryGrammar,
	} {
		if count := s.CategoryCounts[cat]; count > 0 {
			rows = append(rows, []string{
				StyleFg.Render(SkillLabel(string(cat))),
				Bold(fmt.Sprintf("%d", count)),
			})
		}
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	sevParts := make([]string, 0, len(severityOrder))
	for _, sev := range severityOrder {
		if count := s.SeverityCounts[sev]; count > 0 {
			sevParts = append(sevParts, severityBadge(sev)+Dim(fmt.Sprintf(" %d", count)))
		}
	}
	if len(sevParts) > 0 {
		b.WriteString(strings.Join(sevParts, "  ") + "\n")
	}

	if len(s.Patterns) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recurring patterns"))
		b.WriteString("\n\n")
		for i, p := range s.Patterns {
			if i >= 5 {
				break
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				Bold(fmt.Sprintf("%d×", p.Count)),
				StyleFg.Render(p.Pattern),
				Dim(fmt.Sprintf("(%s)", SkillLabel(string(p.Category)))),
			))
			for _, ex := range p.Examples {
				b.WriteString(fmt.Sprintf("   %s %s %s\n",
					StyleRed.Render(ex.Original),
					Dim("→"),
					StyleGreen.Render(ex.Corrected),
				))
			}
		}
	}

	return RenderBox("Mistakes", b.String())
}

func severityBadge(sev domain.Severity) string {
	switch sev {
	case domain.SeverityCritical:
		return StyleRed.Render("● critical")
	case domain.SeverityImportant:
		return StyleYellow.Render("● important")
	case domain.SeverityModerate:
		return StyleBlue.Render("● moderate")
	default:
		return StyleDim.Render("● minor")
	}
}
