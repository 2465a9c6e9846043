package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/ninaorlova/lingua/internal/domain"
)

// Exercise event options
type ExerciseOption func(*domain.ExerciseCompletedPayload)

func WithExerciseType(t domain.ExerciseType) ExerciseOption {
	return func(p *domain.ExerciseCompletedPayload) {
		p.ExerciseType = t
	}
}

func WithResponse(text string) ExerciseOption {
	return func(p *domain.ExerciseCompletedPayload) {
		p.UserResponse = text
	}
}

func WithTimeOfDay(tod domain.TimeOfDay) ExerciseOption {
	return func(p *domain.ExerciseCompletedPayload) {
		p.TimeOfDay = tod
	}
}

// NewExerciseEvent builds an ExerciseCompleted event at the given instant.
func NewExerciseEvent(userID string, score float64, at time.Time, opts ...ExerciseOption) *domain.Event {
	payload := domain.ExerciseCompletedPayload{
		ExerciseID:   uuid.New().String(),
		ExerciseType: domain.ExerciseGrammar,
		Score:        score,
		TimeOfDay:    domain.BucketForHour(at.Hour()),
	}
	for _, opt := range opts {
		opt(&payload)
	}
	return &domain.Event{
		ID:        uuid.New().String(),
		UserID:    userID,
		Timestamp: at,
		Kind:      domain.EventExerciseCompleted,
		Payload:   payload,
	}
}

// NewMistakeEvent builds a MistakeRecorded event with explicit classification.
func NewMistakeEvent(userID string, at time.Time, category domain.ErrorCategory, severity domain.Severity, pattern string) *domain.Event {
	return &domain.Event{
		ID:        uuid.New().String(),
		UserID:    userID,
		Timestamp: at,
		Kind:      domain.EventMistakeRecorded,
		Payload: domain.MistakeRecordedPayload{
			MistakeID:     uuid.New().String(),
			OriginalText:  "original",
			CorrectedText: "corrected",
			Category:      category,
			Severity:      severity,
			Pattern:       pattern,
		},
	}
}

// NewVocabularyEvent builds a VocabularyReviewed event.
func NewVocabularyEvent(userID, word string, level int, at time.Time, due *time.Time) *domain.Event {
	return &domain.Event{
		ID:        uuid.New().String(),
		UserID:    userID,
		Timestamp: at,
		Kind:      domain.EventVocabularyReviewed,
		Payload: domain.VocabularyReviewedPayload{
			Word:          word,
			MasteryLevel:  level,
			NextReviewDue: due,
		},
	}
}

// NewSessionEvent builds a SessionEnded event.
func NewSessionEvent(userID string, avgScore, focus float64, at time.Time) *domain.Event {
	return &domain.Event{
		ID:        uuid.New().String(),
		UserID:    userID,
		Timestamp: at,
		Kind:      domain.EventSessionEnded,
		Payload: domain.SessionEndedPayload{
			SessionID:    uuid.New().String(),
			StartedAt:    at.Add(-20 * time.Minute),
			AverageScore: avgScore,
			FocusQuality: focus,
			TimeOfDay:    domain.BucketForHour(at.Hour()),
		},
	}
}

// NewAttempt builds an in-memory ExerciseAttempt for pure analytics tests.
func NewAttempt(score float64, at time.Time, opts ...AttemptOption) domain.ExerciseAttempt {
	a := domain.ExerciseAttempt{
		ExerciseID:   uuid.New().String(),
		ExerciseType: domain.ExerciseGrammar,
		Score:        score,
		CompletedAt:  at,
		TimeOfDay:    domain.BucketForHour(at.Hour()),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

type AttemptOption func(*domain.ExerciseAttempt)

func AttemptType(t domain.ExerciseType) AttemptOption {
	return func(a *domain.ExerciseAttempt) {
		a.ExerciseType = t
	}
}

func AttemptTimeOfDay(tod domain.TimeOfDay) AttemptOption {
	return func(a *domain.ExerciseAttempt) {
		a.TimeOfDay = tod
	}
}

func AttemptResponse(text string) AttemptOption {
	return func(a *domain.ExerciseAttempt) {
		a.UserResponse = text
	}
}
