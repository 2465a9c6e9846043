package importer

import (
	"fmt"
	"time"

	"github.com/ninaorlova/lingua/internal/domain"
)

// importableKinds are the source event kinds an import file may contain.
// Derived kinds (streak_updated, achievement_granted) are rejected: the
// ingest pipeline regenerates them.
var importableKinds = map[string]bool{
	string(domain.EventExerciseCompleted):  true,
	string(domain.EventMistakeRecorded):    true,
	string(domain.EventVocabularyReviewed): true,
	string(domain.EventSessionEnded):       true,
}

var validExerciseTypes = map[string]bool{
	string(domain.ExerciseVocabulary): true, string(domain.ExerciseGrammar): true,
	string(domain.ExerciseWriting): true, string(domain.ExerciseConversation): true,
	string(domain.ExerciseMicro): true, string(domain.ExerciseShadowing): true,
	string(domain.ExerciseImmersion): true, string(domain.ExerciseOther): true,
}

// ValidateImportSchema checks the import schema before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.UserID == "" {
		errs = append(errs, fmt.Errorf("user_id is required"))
	}
	if len(schema.Events) == 0 {
		errs = append(errs, fmt.Errorf("events list is empty"))
	}

	for i, e := range schema.Events {
		errs = append(errs, validateEvent(fmt.Sprintf("events[%d]", i), &e)...)
	}

	return errs
}

func validateEvent(prefix string, e *EventImport) []error {
	var errs []error

	if e.Kind == "" {
		errs = append(errs, fmt.Errorf("%s.kind is required", prefix))
	} else if !importableKinds[e.Kind] {
		errs = append(errs, fmt.Errorf("%s.kind: %q is not importable", prefix, e.Kind))
	}

	if e.Timestamp == "" {
		errs = append(errs, fmt.Errorf("%s.timestamp is required", prefix))
	} else if _, err := time.Parse(time.RFC3339, e.Timestamp); err != nil {
		errs = append(errs, fmt.Errorf("%s.timestamp: invalid value %q (expected RFC3339)", prefix, e.Timestamp))
	}

	switch e.Kind {
	case string(domain.EventExerciseCompleted):
		if e.Score == nil {
			errs = append(errs, fmt.Errorf("%s.score is required for exercise_completed", prefix))
		} else if *e.Score < 0 || *e.Score > 100 {
			errs = append(errs, fmt.Errorf("%s.score: %g is out of range [0, 100]", prefix, *e.Score))
		}
		if e.ExerciseType != "" && !validExerciseTypes[e.ExerciseType] {
			errs = append(errs, fmt.Errorf("%s.exercise_type: invalid value %q", prefix, e.ExerciseType))
		}

	case string(domain.EventMistakeRecorded):
		if e.OriginalText == "" {
			errs = append(errs, fmt.Errorf("%s.original_text is required for mistake_recorded", prefix))
		}
		if e.CorrectedText == "" {
			errs = append(errs, fmt.Errorf("%s.corrected_text is required for mistake_recorded", prefix))
		}

	case string(domain.EventVocabularyReviewed):
		if e.Word == "" {
			errs = append(errs, fmt.Errorf("%s.word is required for vocabulary_reviewed", prefix))
		}
		if e.MasteryLevel == nil {
			errs = append(errs, fmt.Errorf("%s.mastery_level is required for vocabulary_reviewed", prefix))
		} else if *e.MasteryLevel < 0 || *e.MasteryLevel > 100 {
			errs = append(errs, fmt.Errorf("%s.mastery_level: %d is out of range [0, 100]", prefix, *e.MasteryLevel))
		}
		if e.NextReviewDue != nil && *e.NextReviewDue != "" {
			if _, err := time.Parse(domain.DateLayout, *e.NextReviewDue); err != nil {
				errs = append(errs, fmt.Errorf("%s.next_review_due: invalid date %q (expected YYYY-MM-DD)", prefix, *e.NextReviewDue))
			}
		}

	case string(domain.EventSessionEnded):
		if e.AverageScore != nil && (*e.AverageScore < 0 || *e.AverageScore > 100) {
			errs = append(errs, fmt.Errorf("%s.average_score: %g is out of range [0, 100]", prefix, *e.AverageScore))
		}
		if e.FocusQuality != nil && (*e.FocusQuality < 0 || *e.FocusQuality > 100) {
			errs = append(errs, fmt.Errorf("%s.focus_quality: %g is out of range [0, 100]", prefix, *e.FocusQuality))
		}
		if e.StartedAt != nil && *e.StartedAt != "" {
			if _, err := time.Parse(time.RFC3339, *e.StartedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.started_at: invalid value %q (expected RFC3339)", prefix, *e.StartedAt))
			}
		}
	}

	return errs
}
