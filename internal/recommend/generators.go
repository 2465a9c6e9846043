package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// Generation step numbers. Within a priority, earlier steps rank first.
const (
	stepSkillBalance = iota + 1
	stepPracticeFrequency
	stepDifficulty
	stepErrorPatterns
	stepReviewReminder
	stepAvoidedVocabulary
	stepTimeOptimization
	stepRecovery
	stepMilestones
)

// skillSpreadThreshold is the max-min gap that marks an unbalanced radar.
const skillSpreadThreshold = 30

// correctionStrategies maps an error category to a fixed study strategy.
var correctionStrategies = map[domain.ErrorCategory]string{
	domain.CategoryArticles:     "Review the rules for a/an/the and read short texts aloud, naming why each article is there.",
	domain.CategoryPrepositions: "Learn prepositions inside whole phrases (arrive in, depend on) rather than as single words.",
	domain.CategoryTenses:       "Drill one tense contrast at a time with timeline drawings before mixing them.",
	domain.CategoryWordOrder:    "Practice rebuilding scrambled sentences, keeping subject-verb-object as the anchor.",
	domain.CategoryVocabulary:   "Keep a confusion list of near-synonyms with one example sentence each.",
	domain.CategoryGrammar:      "Isolate the failing construction and write five fresh sentences using it correctly.",
}

type generator func(Input) []domain.Recommendation

// generators runs in step order; the index in this slice is informational
// only, each generator stamps its own step.
var generators = []generator{
	genSkillBalance,
	genPracticeFrequency,
	genDifficulty,
	genErrorPatterns,
	genReviewReminder,
	genAvoidedVocabulary,
	genTimeOptimization,
	genRecovery,
	genMilestones,
}

func genSkillBalance(in Input) []domain.Recommendation {
	if len(in.Radar.Scores) == 0 || in.Radar.Spread <= skillSpreadThreshold {
		return nil
	}
	weakest := in.Radar.Weakest
	return []domain.Recommendation{{
		Kind:     domain.RecSkillBalance,
		Priority: domain.PriorityHigh,
		Step:     stepSkillBalance,
		Title:    "Balance your skills",
		Message:  fmt.Sprintf("Your %s lags %.0f points behind your strongest skill.", weakest, in.Radar.Spread),
		Action:   fmt.Sprintf("practice_%s", weakest),
		Reason:   fmt.Sprintf("%s at %.0f vs %s at %.0f", weakest, in.Radar.Scores[weakest], in.Radar.Strongest, in.Radar.Scores[in.Radar.Strongest]),
	}}
}

func genPracticeFrequency(in Input) []domain.Recommendation {
	var recs []domain.Recommendation

	if gap := in.daysSinceLastActivity(); gap >= 2 {
		recs = append(recs, domain.Recommendation{
			Kind:     domain.RecPracticeFocus,
			Priority: domain.PriorityHigh,
			Step:     stepPracticeFrequency,
			Title:    "Get back on track",
			Message:  fmt.Sprintf("It has been %d days since your last practice. Five minutes is enough to restart.", gap),
			Action:   "quick_session",
			Reason:   fmt.Sprintf("%d-day practice gap", gap),
		})
	}
	if in.AttemptsToday >= 10 {
		recs = append(recs, domain.Recommendation{
			Kind:     domain.RecEnergyBased,
			Priority: domain.PriorityMedium,
			Step:     stepPracticeFrequency,
			Title:    "Take a break",
			Message:  fmt.Sprintf("You already did %d exercises today. Rest consolidates what you learned.", in.AttemptsToday),
			Action:   "rest",
			Reason:   fmt.Sprintf("%d attempts today", in.AttemptsToday),
		})
	}
	if in.Streak != nil && in.Streak.CurrentStreak < 3 && in.TotalAttempts > 10 {
		recs = append(recs, domain.Recommendation{
			Kind:     domain.RecPracticeFocus,
			Priority: domain.PriorityMedium,
			Step:     stepPracticeFrequency,
			Title:    "Build consistency",
			Message:  "Short daily sessions beat occasional long ones. Aim for three days in a row.",
			Action:   "daily_goal",
			Reason:   fmt.Sprintf("streak %d with %d total attempts", in.Streak.CurrentStreak, in.TotalAttempts),
		})
	}
	return recs
}

func genDifficulty(in Input) []domain.Recommendation {
	if len(in.Attempts) < 5 {
		return nil
	}
	var sum float64
	for _, a := range in.Attempts {
		sum += a.Score
	}
	mean := sum / float64(len(in.Attempts))

	switch {
	case mean >= 90:
		return []domain.Recommendation{{
			Kind:     domain.RecDifficultyAdjustment,
			Priority: domain.PriorityHigh,
			Step:     stepDifficulty,
			Title:    "Raise the difficulty",
			Message:  fmt.Sprintf("You average %.0f on recent exercises. Harder material will keep you growing.", mean),
			Action:   "increase_difficulty",
			Reason:   fmt.Sprintf("mean score %.1f over %d attempts", mean, len(in.Attempts)),
		}}
	case mean < 50:
		return []domain.Recommendation{{
			Kind:     domain.RecDifficultyAdjustment,
			Priority: domain.PriorityHigh,
			Step:     stepDifficulty,
			Title:    "Ease off the difficulty",
			Message:  fmt.Sprintf("Recent scores average %.0f. Easier exercises will rebuild the foundation.", mean),
			Action:   "decrease_difficulty",
			Reason:   fmt.Sprintf("mean score %.1f over %d attempts", mean, len(in.Attempts)),
		}}
	}
	return nil
}

func genErrorPatterns(in Input) []domain.Recommendation {
	recurring := in.Mistakes.Recurring(in.MinRecurringCount)
	if len(recurring) > 3 {
		recurring = recurring[:3]
	}

	var recs []domain.Recommendation
	for _, p := range recurring {
		evidence := make([]string, 0, 2)
		for i, ex := range p.Examples {
			if i == 2 {
				break
			}
			evidence = append(evidence, fmt.Sprintf("%q should be %q", ex.Original, ex.Corrected))
		}
		recs = append(recs, domain.Recommendation{
			Kind:     domain.RecErrorPattern,
			Priority: domain.PriorityHigh,
			Step:     stepErrorPatterns,
			Title:    fmt.Sprintf("Recurring mistake: %s", strings.ReplaceAll(p.Pattern, "_", " ")),
			Message:  correctionStrategies[p.Category],
			Action:   fmt.Sprintf("drill_%s", p.Pattern),
			Reason:   fmt.Sprintf("%s occurred %d times", p.Pattern, p.Count),
			Evidence: evidence,
		})
	}
	return recs
}

func genReviewReminder(in Input) []domain.Recommendation {
	if in.DueWordCount <= 0 {
		return nil
	}
	return []domain.Recommendation{{
		Kind:     domain.RecReviewReminder,
		Priority: domain.PriorityMedium,
		Step:     stepReviewReminder,
		Title:    "Words are due for review",
		Message:  fmt.Sprintf("%d words are waiting for a review before they fade.", in.DueWordCount),
		Action:   "review_vocabulary",
		Reason:   fmt.Sprintf("%d words past their review date", in.DueWordCount),
	}}
}

// avoidedWordMinAge is how long a word must be known before silence about
// it counts as avoidance.
const avoidedWordMinAge = 7 * 24 * time.Hour

func genAvoidedVocabulary(in Input) []domain.Recommendation {
	responses := make([]string, 0, len(in.Attempts))
	for _, a := range in.Attempts {
		if a.UserResponse != "" {
			responses = append(responses, strings.ToLower(a.UserResponse))
		}
	}

	// Vocabulary is kept oldest-first by the caller, so the first three
	// hits are the longest-avoided words.
	var avoided []string
	for _, v := range in.Vocabulary {
		if in.Now.Sub(v.FirstLearned) < avoidedWordMinAge {
			continue
		}
		word := strings.ToLower(v.Word)
		used := false
		for _, r := range responses {
			if strings.Contains(r, word) {
				used = true
				break
			}
		}
		if !used {
			avoided = append(avoided, v.Word)
			if len(avoided) == 3 {
				break
			}
		}
	}
	if len(avoided) == 0 {
		return nil
	}

	return []domain.Recommendation{{
		Kind:     domain.RecVocabularyUse,
		Priority: domain.PriorityMedium,
		Step:     stepAvoidedVocabulary,
		Title:    "Use what you know",
		Message:  fmt.Sprintf("Try working these words into your next answers: %s.", strings.Join(avoided, ", ")),
		Action:   "use_vocabulary",
		Reason:   fmt.Sprintf("%d learned words never used in responses", len(avoided)),
		Evidence: avoided,
	}}
}

func genTimeOptimization(in Input) []domain.Recommendation {
	if in.OptimalTime.InsufficientData || in.OptimalTime.Best == nil || !in.OptimalTime.StrictlyBest {
		return nil
	}
	best := in.OptimalTime.Best
	return []domain.Recommendation{{
		Kind:     domain.RecTimeOptimization,
		Priority: domain.PriorityLow,
		Step:     stepTimeOptimization,
		Title:    "You have a golden hour",
		Message:  fmt.Sprintf("Your scores peak in the %s. Schedule harder exercises then.", strings.ReplaceAll(string(best.Bucket), "_", " ")),
		Action:   fmt.Sprintf("schedule_%s", best.Bucket),
		Reason:   fmt.Sprintf("%s combined score %.1f over %d samples", best.Bucket, best.Combined, best.Samples),
	}}
}

func genRecovery(in Input) []domain.Recommendation {
	attempts := in.Attempts
	if len(attempts) > 5 {
		attempts = attempts[len(attempts)-5:]
	}
	low := 0
	for _, a := range attempts {
		if a.Score < 40 {
			low++
		}
	}
	if low < 3 {
		return nil
	}
	return []domain.Recommendation{{
		Kind:     domain.RecRecovery,
		Priority: domain.PriorityCritical,
		Step:     stepRecovery,
		Title:    "Rough patch, reset gently",
		Message:  "Several recent attempts scored low. Switch to something easy you enjoy and rebuild momentum.",
		Action:   "easy_win",
		Reason:   fmt.Sprintf("%d of the last %d attempts scored below 40", low, len(attempts)),
	}}
}

// milestoneTarget is one trackable goal line for the milestone generator.
type milestoneTarget struct {
	label   string
	target  int
	current int
}

func genMilestones(in Input) []domain.Recommendation {
	streak := 0
	if in.Streak != nil {
		streak = in.Streak.CurrentStreak
	}
	targets := []milestoneTarget{
		{"100 mastered words", 100, in.MasteredWords},
		{"500 mastered words", 500, in.MasteredWords},
		{"7-day streak", 7, streak},
		{"30-day streak", 30, streak},
		{"100 exercises", 100, in.TotalAttempts},
		{"proficiency 60", 60, int(in.Radar.Proficiency)},
		{"proficiency 80", 80, int(in.Radar.Proficiency)},
	}

	var recs []domain.Recommendation
	for _, t := range targets {
		remaining := t.target - t.current
		if remaining <= 0 || remaining > 10 {
			continue
		}
		priority := domain.PriorityMedium
		if remaining <= 2 {
			priority = domain.PriorityHigh
		}
		recs = append(recs, domain.Recommendation{
			Kind:     domain.RecMilestoneProgress,
			Priority: priority,
			Step:     stepMilestones,
			Title:    fmt.Sprintf("Almost there: %s", t.label),
			Message:  fmt.Sprintf("Only %d to go until %s.", remaining, t.label),
			Action:   "push_milestone",
			Reason:   fmt.Sprintf("%d of %d toward %s", t.current, t.target, t.label),
		})
	}
	return recs
}
