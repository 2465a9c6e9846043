package importer

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ninaorlova/lingua/internal/domain"
)

// ConvertToEvents turns a validated import schema into domain events,
// ordered oldest first so streak transitions replay correctly on ingest.
func ConvertToEvents(schema *ImportSchema) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(schema.Events))

	for i, e := range schema.Events {
		ts, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("events[%d].timestamp: %w", i, err)
		}

		payload, err := convertPayload(&e, ts)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}

		events = append(events, &domain.Event{
			ID:        uuid.New().String(),
			UserID:    schema.UserID,
			Timestamp: ts,
			Kind:      domain.EventKind(e.Kind),
			Payload:   payload,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	return events, nil
}

func convertPayload(e *EventImport, ts time.Time) (any, error) {
	switch domain.EventKind(e.Kind) {
	case domain.EventExerciseCompleted:
		exerciseType := domain.CoalesceStr(e.ExerciseType, string(domain.ExerciseOther))
		return domain.ExerciseCompletedPayload{
			ExerciseID:   uuid.New().String(),
			ExerciseType: domain.ExerciseType(exerciseType),
			Score:        domain.Float64FromPtrWithDefault(0, e.Score),
			UserResponse: e.UserResponse,
			DurationSec:  e.DurationSec,
			TimeOfDay:    domain.BucketForHour(ts.Hour()),
		}, nil

	case domain.EventMistakeRecorded:
		return domain.MistakeRecordedPayload{
			OriginalText:  e.OriginalText,
			CorrectedText: e.CorrectedText,
			Explanation:   e.Explanation,
		}, nil

	case domain.EventVocabularyReviewed:
		payload := domain.VocabularyReviewedPayload{
			Word:         e.Word,
			MasteryLevel: domain.IntFromPtrWithDefault(0, e.MasteryLevel),
		}
		if e.NextReviewDue != nil && *e.NextReviewDue != "" {
			due, err := time.Parse(domain.DateLayout, *e.NextReviewDue)
			if err != nil {
				return nil, fmt.Errorf("next_review_due: %w", err)
			}
			payload.NextReviewDue = &due
		}
		return payload, nil

	case domain.EventSessionEnded:
		payload := domain.SessionEndedPayload{
			SessionID:    uuid.New().String(),
			StartedAt:    ts,
			AverageScore: domain.Float64FromPtrWithDefault(0, e.AverageScore),
			FocusQuality: domain.Float64FromPtrWithDefault(0, e.FocusQuality),
			TimeOfDay:    domain.BucketForHour(ts.Hour()),
		}
		if e.StartedAt != nil && *e.StartedAt != "" {
			started, err := time.Parse(time.RFC3339, *e.StartedAt)
			if err != nil {
				return nil, fmt.Errorf("started_at: %w", err)
			}
			payload.StartedAt = started
		}
		return payload, nil

	default:
		return nil, fmt.Errorf("kind %q is not importable", e.Kind)
	}
}
