package classifier

import (
	"strings"

	"github.com/ninaorlova/lingua/internal/domain"
)

// articles and prepositions are the closed word sets the category and
// pattern passes inspect, in their canonical check order.
var (
	articles     = []string{"a", "an", "the"}
	prepositions = []string{"in", "on", "at", "to", "for", "with", "from"}
)

// Classification is the result of classifying one original/corrected pair.
type Classification struct {
	Category domain.ErrorCategory
	Severity domain.Severity
	Pattern  string
}

// Classify derives (category, severity, pattern) from a mistake. It is a
// pure function: identical inputs always produce identical output.
//
// Category detection is first-match-wins, in this order: articles,
// prepositions, tenses, word order, vocabulary, grammar. The explanation
// hint is checked before the text heuristic at each step.
func Classify(original, corrected, explanation string) Classification {
	origTokens := tokenize(original)
	corrTokens := tokenize(corrected)
	hint := strings.ToLower(explanation)

	category := detectCategory(origTokens, corrTokens, hint)
	return Classification{
		Category: category,
		Severity: detectSeverity(origTokens, corrTokens),
		Pattern:  extractPattern(category, origTokens, corrTokens),
	}
}

func detectCategory(origTokens, corrTokens []string, hint string) domain.ErrorCategory {
	origSet := multiset(origTokens)
	corrSet := multiset(corrTokens)

	if containsAny(hint, "article", "a/an/the") || countsDiffer(origSet, corrSet, articles) {
		return domain.CategoryArticles
	}
	if strings.Contains(hint, "preposition") || countsDiffer(origSet, corrSet, prepositions) {
		return domain.CategoryPrepositions
	}
	if containsAny(hint, "tense", "past", "present", "future") {
		return domain.CategoryTenses
	}
	if containsAny(hint, "word order", "placement") ||
		(sameMultiset(origSet, corrSet) && !sameOrder(origTokens, corrTokens)) {
		return domain.CategoryWordOrder
	}
	if containsAny(hint, "word choice", "vocabulary", "better word") {
		return domain.CategoryVocabulary
	}
	return domain.CategoryGrammar
}

// detectSeverity grades the edit distance between the two token sequences.
// Positional mismatches are counted over the shared prefix length; the
// length difference is graded separately.
func detectSeverity(origTokens, corrTokens []string) domain.Severity {
	longest := max(len(origTokens), len(corrTokens))
	if longest == 0 {
		return domain.SeverityMinor
	}

	shared := min(len(origTokens), len(corrTokens))
	mismatches := 0
	for i := 0; i < shared; i++ {
		if origTokens[i] != corrTokens[i] {
			mismatches++
		}
	}

	diffRatio := float64(mismatches) / float64(longest)
	lenDiff := len(origTokens) - len(corrTokens)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}

	switch {
	case diffRatio > 0.5 || lenDiff > 3:
		return domain.SeverityCritical
	case diffRatio > 0.3 || lenDiff > 1:
		return domain.SeverityImportant
	case diffRatio > 0.1:
		return domain.SeverityModerate
	default:
		return domain.SeverityMinor
	}
}

// containsAny reports whether s contains any of the needles.
func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// countsDiffer reports whether any word from the set occurs a different
// number of times in the two multisets.
func countsDiffer(origSet, corrSet map[string]int, words []string) bool {
	for _, w := range words {
		if origSet[w] != corrSet[w] {
			return true
		}
	}
	return false
}
