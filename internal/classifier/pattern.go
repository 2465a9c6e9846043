package classifier

import (
	"strings"

	"github.com/ninaorlova/lingua/internal/domain"
)

// extractPattern encodes the specific shape of a mistake as a short stable
// string, suitable for exact-match aggregation across sessions.
func extractPattern(category domain.ErrorCategory, origTokens, corrTokens []string) string {
	switch category {
	case domain.CategoryArticles:
		return articlePattern(origTokens, corrTokens)
	case domain.CategoryPrepositions:
		return prepositionPattern(origTokens, corrTokens)
	case domain.CategoryTenses:
		return tensePattern(corrTokens)
	default:
		return string(category) + "_error"
	}
}

// articlePattern records each article transition in canonical article order.
func articlePattern(origTokens, corrTokens []string) string {
	origSet := multiset(origTokens)
	corrSet := multiset(corrTokens)

	var transitions []string
	for _, art := range articles {
		switch {
		case corrSet[art] > origSet[art]:
			transitions = append(transitions, "added_"+art)
		case corrSet[art] < origSet[art]:
			transitions = append(transitions, "removed_"+art)
		}
	}
	if len(transitions) == 0 {
		return "article_general"
	}
	return "article_" + strings.Join(transitions, "_")
}

// prepositionPattern names the first preposition dropped from the original,
// then the first one introduced by the correction, then falls back to a
// generic substitution. The removed check runs first, which keeps the
// result deterministic when a correction swaps one preposition for another.
func prepositionPattern(origTokens, corrTokens []string) string {
	origSet := multiset(origTokens)
	corrSet := multiset(corrTokens)

	for _, p := range prepositions {
		if origSet[p] > 0 && corrSet[p] == 0 {
			return "preposition_removed_" + p
		}
	}
	for _, p := range prepositions {
		if origSet[p] == 0 && corrSet[p] > 0 {
			return "preposition_added_" + p
		}
	}
	return "preposition_substitution"
}

// tensePattern classifies by the strongest tense marker in the correction.
func tensePattern(corrTokens []string) string {
	corrSet := multiset(corrTokens)
	if corrSet["have"] > 0 || corrSet["has"] > 0 || corrSet["had"] > 0 {
		return "tense_perfect"
	}
	if corrSet["will"] > 0 || corrSet["would"] > 0 {
		return "tense_future"
	}
	for _, t := range corrTokens {
		if strings.HasSuffix(t, "ing") {
			return "tense_continuous"
		}
	}
	for _, t := range corrTokens {
		if strings.HasSuffix(t, "ed") {
			return "tense_past"
		}
	}
	return "tense_general"
}
