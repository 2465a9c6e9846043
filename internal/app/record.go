package app

import (
	"github.com/ninaorlova/lingua/internal/domain"
)

// RecordRequest carries one event into the store.
type RecordRequest struct {
	Event *domain.Event
}

/// RecordResponse reports what the ingest did beyond the append itself:
// the streak transition and any achievements it unlocked.
type RecordResponse struct {
	EventID         string
	Streak          *domain.StreakState
	NewAchievements []string
	Warnings        []string
}

type RecordErrorCode string

const (
	RecordErrInvalidEvent RecordErrorCode = "INVALID_EVENT"
	RecordErrStorage      RecordErrorCode = "STORAGE_ERROR"
)

type RecordError struct {
	Code    RecordErrorCode
	Message string
}

func (e *RecordError) Error() string {
	return string(e.Code) + ": " + e.Message
}
