package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- Request constructor defaults ---

func TestNewVelocityRequest_SetsDefaults(t *testing.T) {
	req := NewVelocityRequest("u1")

	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, 30, req.WindowDays)
	assert.Nil(t, req.Now)
}

func TestNewHeatmapRequest_SetsDefaults(t *testing.T) {
	req := NewHeatmapRequest("u1")

	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, 90, req.Days)
	assert.Nil(t, req.Now)
}

func TestNewRecommendRequest_SetsDefaults(t *testing.T) {
	req := NewRecommendRequest("u1")

	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, 10, req.Limit)
	assert.Nil(t, req.Now)
}

// --- Error types ---

func TestRecordError_ErrorString(t *testing.T) {
	err := &RecordError{
		Code:    RecordErrInvalidEvent,
		Message: "unknown event kind",
	}
	assert.Equal(t, "INVALID_EVENT: unknown event kind", err.Error())
}

func TestRecommendError_ErrorString(t *testing.T) {
	err := &RecommendError{
		Code:    RecommendErrInvalidUser,
		Message: "user id is required",
	}
	assert.Equal(t, "INVALID_USER: user id is required", err.Error())
}

func TestAnalyticsErrorCodes_AreDistinct(t *testing.T) {
	codes := []AnalyticsErrorCode{
		AnalyticsErrInvalidUser,
		AnalyticsErrInvalidWindow,
		AnalyticsErrInvalidTarget,
		AnalyticsErrStorage,
	}
	seen := make(map[AnalyticsErrorCode]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate error code: %s", c)
		seen[c] = true
	}
}
