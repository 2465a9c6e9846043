package domain

import "time"

// ExerciseAttempt is the analytics view of an ExerciseCompleted event.
type ExerciseAttempt struct {
	ExerciseID   string
	ExerciseType ExerciseType
	Score        float64
	UserResponse string
	CompletedAt  time.Time
	DurationSec  int
	TimeOfDay    TimeOfDay
}

// MistakeRecord is the analytics view of a MistakeRecorded event.
type MistakeRecord struct {
	MistakeID     string
	OriginalText  string
	CorrectedText string
	Explanation   string
	OccurredAt    time.Time
	Category      ErrorCategory
	Severity      Severity
	Pattern       string
}

// SkillScore maps each skill to an integer score in [0,100].
type SkillScore struct {
	UserID    string
	Scores    map[SkillType]int
	UpdatedAt time.Time
}

// VocabularyMastery tracks one word's review state. FirstLearned is set
// when the word first appears and never moves afterwards.
type VocabularyMastery struct {
	Word          string
	MasteryLevel  int
	LastReviewed  time.Time
	NextReviewDue *time.Time
	FirstLearned  time.Time
}

// SessionPerformance is the analytics view of a SessionEnded event.
type SessionPerformance struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      time.Time
	AverageScore float64
	FocusQuality float64
	TimeOfDay    TimeOfDay
}

// Dismissal suppresses a recommendation kind for a fixed window.
type Dismissal struct {
	Kind        RecommendationKind
	DismissedAt time.Time
}

// AchievementGrant records a single unlock. At most one grant exists per
// (user, key); grants are monotone.
type AchievementGrant struct {
	AchievementKey string
	GrantedAt      time.Time
}
