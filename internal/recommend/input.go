// Package recommend turns the full derived user state into a ranked list
// of next-step recommendations. Nine independent generators each inspect
// one slice of the state; their candidates are merged, filtered against
// recent dismissals, and capped.
package recommend

import (
	"time"

	"github.com/ninaorlova/lingua/internal/analytics"
	"github.com/ninaorlova/lingua/internal/classifier"
	"github.com/ninaorlova/lingua/internal/domain"
)

// Input is the read-only state every generator works from. All fields are
// snapshots; generators never mutate anything.
type Input struct {
	Now time.Time

	Radar       analytics.SkillRadar
	Velocity    analytics.VelocityReport
	OptimalTime analytics.OptimalTimeReport
	Mistakes    classifier.Summary

	Streak *domain.StreakState

	// Attempts is the recent attempt history, oldest first.
	Attempts      []domain.ExerciseAttempt
	AttemptsToday int
	TotalAttempts int

	Vocabulary    []domain.VocabularyMastery
	DueWordCount  int
	MasteredWords int

	// MinRecurringCount is the pattern-recurrence threshold for error
	// pattern recommendations.
	MinRecurringCount int

	// MinNotifyPriority gates the priority pick: candidates below it
	// stay in the ranked list but never become the pick. The zero value
	// disables the gate.
	MinNotifyPriority domain.Priority
}

// daysSinceLastActivity counts calendar days from the last recorded
// activity to now, or -1 when there is no activity at all.
func (in Input) daysSinceLastActivity() int {
	if in.Streak == nil || in.Streak.LastActivityDate == nil {
		return -1
	}
	last := *in.Streak.LastActivityDate
	lastDate := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, in.Now.Location())
	nowDate := time.Date(in.Now.Year(), in.Now.Month(), in.Now.Day(), 0, 0, 0, 0, in.Now.Location())
	days := 0
	for cur := lastDate; cur.Before(nowDate); cur = cur.AddDate(0, 0, 1) {
		days++
	}
	return days
}
