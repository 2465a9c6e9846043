package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event is the immutable unit of the append-only practice log. Events are
// the source of truth; streak and achievement state are materializations
// rebuilt from them, everything else is computed on read.
type Event struct {
	ID        string
	UserID    string
	Timestamp time.Time
	Kind      EventKind
	Payload   any // one of the *Payload structs below, matching Kind
}

// ExerciseCompletedPayload carries a finished exercise attempt.
type ExerciseCompletedPayload struct {
	ExerciseID   string       `json:"exercise_id"`
	ExerciseType ExerciseType `json:"exercise_type"`
	Score        float64      `json:"score"`
	UserResponse string       `json:"user_response,omitempty"`
	DurationSec  int          `json:"duration_sec,omitempty"`
	TimeOfDay    TimeOfDay    `json:"time_of_day"`
}

// MistakeRecordedPayload carries a classified mistake. Classification
// fields are computed on ingest and stored for aggregation.
type MistakeRecordedPayload struct {
	MistakeID     string        `json:"mistake_id"`
	OriginalText  string        `json:"original_text"`
	CorrectedText string        `json:"corrected_text"`
	Explanation   string        `json:"explanation,omitempty"`
	Category      ErrorCategory `json:"category"`
	Severity      Severity      `json:"severity"`
	Pattern       string        `json:"pattern"`
}

// VocabularyReviewedPayload carries one spaced-repetition review outcome.
type VocabularyReviewedPayload struct {
	Word          string     `json:"word"`
	MasteryLevel  int        `json:"mastery_level"`
	NextReviewDue *time.Time `json:"next_review_due,omitempty"`
}

// SessionEndedPayload carries a completed practice session summary.
type SessionEndedPayload struct {
	SessionID    string    `json:"session_id"`
	StartedAt    time.Time `json:"started_at"`
	AverageScore float64   `json:"average_score"`
	FocusQuality float64   `json:"focus_quality"`
	TimeOfDay    TimeOfDay `json:"time_of_day"`
}

// AchievementGrantedPayload records an achievement unlock.
type AchievementGrantedPayload struct {
	AchievementKey string `json:"achievement_key"`
}

// StreakUpdatedPayload checkpoints the streak machine after a transition.
type StreakUpdatedPayload struct {
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	ActivityDate  string `json:"activity_date"` // YYYY-MM-DD, user-local
	FreezeUsed    bool   `json:"freeze_used"`
}

// Validate checks structural invariants before an event enters the log.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event ID is required")
	}
	if e.UserID == "" {
		return fmt.Errorf("event user ID is required")
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("event timestamp is required")
	}
	if !ValidEventKinds[e.Kind] {
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}
	if e.Payload == nil {
		return fmt.Errorf("event payload is required")
	}
	return nil
}

// MarshalPayload encodes the typed payload for storage.
func (e *Event) MarshalPayload() ([]byte, error) {
	raw, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", e.Kind, err)
	}
	return raw, nil
}

// DecodePayload decodes a stored payload into the typed struct for kind.
// A decode failure here is the ParseError case: callers skip the event
// and continue rather than failing the whole read.
func DecodePayload(kind EventKind, raw []byte) (any, error) {
	var (
		payload any
		err     error
	)
	switch kind {
	case EventExerciseCompleted:
		var p ExerciseCompletedPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case EventMistakeRecorded:
		var p MistakeRecordedPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case EventVocabularyReviewed:
		var p VocabularyReviewedPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case EventSessionEnded:
		var p SessionEndedPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case EventAchievementGranted:
		var p AchievementGrantedPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case EventStreakUpdated:
		var p StreakUpdatedPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	default:
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", kind, err)
	}
	return payload, nil
}
