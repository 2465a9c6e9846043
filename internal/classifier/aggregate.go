package classifier

import (
	"sort"

	"github.com/ninaorlova/lingua/internal/domain"
)

// maxExamplesPerPattern bounds the examples kept on each pattern roll-up.
const maxExamplesPerPattern = 3

// MistakeExample is one concrete original/corrected pair behind a pattern.
type MistakeExample struct {
	Original  string
	Corrected string
}

// PatternStat is the roll-up of one recurring mistake shape.
type PatternStat struct {
	Pattern  string
	Category domain.ErrorCategory
	Count    int
	Examples []MistakeExample
}

// Summary aggregates a set of classified mistakes: histograms by category
// and severity, plus per-pattern roll-ups ordered by frequency.
type Summary struct {
	Total          int
	CategoryCounts map[domain.ErrorCategory]int
	SeverityCounts map[domain.Severity]int
	Patterns       []PatternStat
}

// Aggregate rolls up classified mistakes. The result is deterministic:
// patterns are ordered by count descending, ties broken by pattern string.
func Aggregate(mistakes []domain.MistakeRecord) Summary {
	s := Summary{
		Total:          len(mistakes),
		CategoryCounts: make(map[domain.ErrorCategory]int),
		SeverityCounts: make(map[domain.Severity]int),
	}

	byPattern := make(map[string]*PatternStat)
	for _, m := range mistakes {
		s.CategoryCounts[m.Category]++
		s.SeverityCounts[m.Severity]++

		stat, ok := byPattern[m.Pattern]
		if !ok {
			stat = &PatternStat{Pattern: m.Pattern, Category: m.Category}
			byPattern[m.Pattern] = stat
		}
		stat.Count++
		if len(stat.Examples) < maxExamplesPerPattern {
			stat.Examples = append(stat.Examples, MistakeExample{
				Original:  m.OriginalText,
				Corrected: m.CorrectedText,
			})
		}
	}

	s.Patterns = make([]PatternStat, 0, len(byPattern))
	for _, stat := range byPattern {
		s.Patterns = append(s.Patterns, *stat)
	}
	sort.Slice(s.Patterns, func(i, j int) bool {
		if s.Patterns[i].Count != s.Patterns[j].Count {
			return s.Patterns[i].Count > s.Patterns[j].Count
		}
		return s.Patterns[i].Pattern < s.Patterns[j].Pattern
	})
	return s
}

// Recurring filters the summary's patterns to those seen at least
// minCount times, preserving order.
func (s Summary) Recurring(minCount int) []PatternStat {
	var out []PatternStat
	for _, p := range s.Patterns {
		if p.Count >= minCount {
			out = append(out, p)
		}
	}
	return out
}
