package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for event-history import,
// the format app exports use for backfilling a practice log.
type ImportSchema struct {
	UserID string        `json:"user_id"`
	Events []EventImport `json:"events"`
}

// EventImport is one practice event in the import file. Only the fields
// matching the kind are read; the rest stay empty.
type EventImport struct {
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"` // RFC3339

	// exercise_completed
	ExerciseType string   `json:"exercise_type,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	UserResponse string   `json:"user_response,omitempty"`
	DurationSec  int      `json:"duration_sec,omitempty"`

	// mistake_recorded
	OriginalText  string `json:"original_text,omitempty"`
	CorrectedText string `json:"corrected_text,omitempty"`
	Explanation   string `json:"explanation,omitempty"`

	// vocabulary_reviewed
	Word          string  `json:"word,omitempty"`
	MasteryLevel  *int    `json:"mastery_level,omitempty"`
	NextReviewDue *string `json:"next_review_due,omitempty"` // YYYY-MM-DD

	// session_ended
	AverageScore *float64 `json:"average_score,omitempty"`
	FocusQuality *float64 `json:"focus_quality,omitempty"`
	StartedAt    *string  `json:"started_at,omitempty"` // RFC3339
}

// LoadImportSchema reads and parses an event-history import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
