package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
)

// userLocks serializes state-mutating operations per user. Analytics
// reads stay lock-free; only ingest and replay take the lock.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (ul *userLocks) forUser(userID string) *sync.Mutex {
	ul.mu.Lock()
	defer ul.mu.Unlock()
	l, ok := ul.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		ul.locks[userID] = l
	}
	return l
}

// attemptsFromEvents maps ExerciseCompleted events onto analytics attempts,
// oldest first.
func attemptsFromEvents(events []*domain.Event) []domain.ExerciseAttempt {
	attempts := make([]domain.ExerciseAttempt, 0, len(events))
	for _, e := range events {
		p, ok := e.Payload.(domain.ExerciseCompletedPayload)
		if !ok {
			continue
		}
		attempts = append(attempts, domain.ExerciseAttempt{
			ExerciseID:   p.ExerciseID,
			ExerciseType: p.ExerciseType,
			Score:        p.Score,
			UserResponse: p.UserResponse,
			CompletedAt:  e.Timestamp,
			DurationSec:  p.DurationSec,
			TimeOfDay:    p.TimeOfDay,
		})
	}
	return attempts
}

func mistakesFromEvents(events []*domain.Event) []domain.MistakeRecord {
	mistakes := make([]domain.MistakeRecord, 0, len(events))
	for _, e := range events {
		p, ok := e.Payload.(domain.MistakeRecordedPayload)
		if !ok {
			continue
		}
		mistakes = append(mistakes, domain.MistakeRecord{
			MistakeID:     p.MistakeID,
			OriginalText:  p.OriginalText,
			CorrectedText: p.CorrectedText,
			Explanation:   p.Explanation,
			OccurredAt:    e.Timestamp,
			Category:      p.Category,
			Severity:      p.Severity,
			Pattern:       p.Pattern,
		})
	}
	return mistakes
}

func sessionsFromEvents(events []*domain.Event) []domain.SessionPerformance {
	sessions := make([]domain.SessionPerformance, 0, len(events))
	for _, e := range events {
		p, ok := e.Payload.(domain.SessionEndedPayload)
		if !ok {
			continue
		}
		sessions = append(sessions, domain.SessionPerformance{
			SessionID:    p.SessionID,
			StartedAt:    p.StartedAt,
			EndedAt:      e.Timestamp,
			AverageScore: p.AverageScore,
			FocusQuality: p.FocusQuality,
			TimeOfDay:    p.TimeOfDay,
		})
	}
	return sessions
}

// skillForExercise maps an exercise type to the radar axis it trains.
// Micro drills and "other" train no single axis.
func skillForExercise(t domain.ExerciseType) (domain.SkillType, bool) {
	switch t {
	case domain.ExerciseVocabulary:
		return domain.SkillVocabulary, true
	case domain.ExerciseGrammar:
		return domain.SkillGrammar, true
	case domain.ExerciseWriting:
		return domain.SkillWriting, true
	case domain.ExerciseConversation, domain.ExerciseShadowing:
		return domain.SkillSpeaking, true
	case domain.ExerciseImmersion:
		return domain.SkillListening, true
	default:
		return "", false
	}
}

// skillEMAWeight is the smoothing factor for the materialized skill score.
const skillEMAWeight = 0.2

// foldScoreIntoSkills folds one attempt score into the materialized skill
// record. A zero prior score snaps to the attempt score instead of
// averaging from nothing.
func foldScoreIntoSkills(scores *domain.SkillScore, t domain.ExerciseType, score float64) bool {
	skill, ok := skillForExercise(t)
	if !ok {
		return false
	}
	prev := scores.Scores[skill]
	if prev == 0 {
		scores.Scores[skill] = clampScore(int(score + 0.5))
		return true
	}
	updated := float64(prev)*(1-skillEMAWeight) + score*skillEMAWeight
	scores.Scores[skill] = clampScore(int(updated + 0.5))
	return true
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// sameCalendarDay compares two instants in the location of the first.
func sameCalendarDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// pageWarnings surfaces the partial-read signals of an event query:
// corrupt rows that were skipped and scans cut short by the query bound.
func pageWarnings(page *repository.EventPage) []string {
	if page == nil {
		return nil
	}
	var warnings []string
	if page.SkippedCorrupt > 0 {
		warnings = append(warnings, fmt.Sprintf("skipped %d events with corrupt payloads", page.SkippedCorrupt))
	}
	if page.TimedOut {
		warnings = append(warnings, "event query timed out; results are partial")
	}
	return warnings
}
