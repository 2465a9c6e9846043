package recommend

import (
	"sort"
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// maxRecommendations caps the merged list.
const maxRecommendations = 10

// FallbackRecommendation is returned as the priority pick when nothing
// else qualifies.
func FallbackRecommendation() domain.Recommendation {
	return domain.Recommendation{
		Kind:     domain.RecPracticeFocus,
		Priority: domain.PriorityInfo,
		Title:    "Free choice",
		Message:  "Nothing urgent. Pick any exercise you enjoy.",
		Action:   "free_choice",
		Reason:   "no higher-priority signal",
	}
}

// Result is the merged recommendation list plus the single priority pick.
type Result struct {
	Recommendations []domain.Recommendation
	Priority        domain.Recommendation
	// Fallback is true when the priority pick is the free-choice default.
	Fallback bool
}

// Build runs every generator over the input, merges the candidates by
// priority (descending) then generation step (ascending), drops kinds
// dismissed within the suppression window, and caps the list. The output
// is deterministic for a given input.
func Build(in Input, dismissals []domain.Dismissal, suppressionDays int) Result {
	var candidates []domain.Recommendation
	for _, gen := range generators {
		candidates = append(candidates, gen(in)...)
	}
	return merge(candidates, dismissals, in.Now, suppressionDays, in.MinNotifyPriority)
}

func merge(candidates []domain.Recommendation, dismissals []domain.Dismissal, now time.Time, suppressionDays int, minNotify domain.Priority) Result {
	suppressed := suppressedKinds(dismissals, now, suppressionDays)

	kept := make([]domain.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if !suppressed[c.Kind] {
			kept = append(kept, c)
		}
	}

	// Candidates arrive in generation order, so the stable sort keeps
	// step order inside each priority band.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Priority != kept[j].Priority {
			return kept[i].Priority > kept[j].Priority
		}
		return kept[i].Step < kept[j].Step
	})

	if len(kept) > maxRecommendations {
		kept = kept[:maxRecommendations]
	}

	// The list is sorted, so the head either clears the notify gate or
	// nothing does.
	res := Result{Recommendations: kept}
	if len(kept) > 0 && kept[0].Priority >= minNotify {
		res.Priority = kept[0]
	} else {
		res.Priority = FallbackRecommendation()
		res.Fallback = true
	}
	return res
}

func suppressedKinds(dismissals []domain.Dismissal, now time.Time, suppressionDays int) map[domain.RecommendationKind]bool {
	suppressed := make(map[domain.RecommendationKind]bool, len(dismissals))
	cutoff := now.AddDate(0, 0, -suppressionDays)
	for _, d := range dismissals {
		if d.DismissedAt.After(cutoff) {
			suppressed[d.Kind] = true
		}
	}
	return suppressed
}
