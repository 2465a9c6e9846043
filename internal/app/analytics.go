package app

import (
	"time"

	"github.com/ninaorlova/lingua/internal/analytics"
	"github.com/ninaorlova/lingua/internal/domain"
)

type VelocityRequest struct {
	UserID     string
	WindowDays int
	Now        *time.Time
}

func NewVelocityRequest(userID string) VelocityRequest {
	return VelocityRequest{UserID: userID, WindowDays: 30}
}

type VelocityResponse struct {
	Report      analytics.VelocityReport
	OptimalTime analytics.OptimalTimeReport
	Warnings    []string
}

type HeatmapRequest struct {
	UserID string
	Days   int
	Now    *time.Time
}

func NewHeatmapRequest(userID string) HeatmapRequest {
	return HeatmapRequest{UserID: userID, Days: 90}
}

type HeatmapResponse struct {
	Heatmap  analytics.Heatmap
	Warnings []string
}

type SkillsRequest struct {
	UserID string
}

type SkillsResponse struct {
	Radar    analytics.SkillRadar
	CEFR     analytics.CEFRReport
	Warnings []string
}

type ProjectionRequest struct {
	UserID      string
	TargetScore float64
	Now         *time.Time
}

type ProjectionResponse struct {
	Projection analytics.TimelineProjection
	Warnings   []string
}

// MistakesRequest asks for the aggregated mistake picture over a window.
type MistakesRequest struct {
	UserID string
	Since  *time.Time
}

type AnalyticsErrorCode string

const (
	AnalyticsErrInvalidUser   AnalyticsErrorCode = "INVALID_USER"
	AnalyticsErrInvalidWindow AnalyticsErrorCode = "INVALID_WINDOW"
	AnalyticsErrInvalidTarget AnalyticsErrorCode = "INVALID_TARGET"
	AnalyticsErrStorage       AnalyticsErrorCode = "STORAGE_ERROR"
)

type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
}

func (e *AnalyticsError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// StatusResponse is the combined dashboard view: streak, radar, CEFR
// placement, and recent activity in one call.
type StatusResponse struct {
	GeneratedAt   time.Time
	Streak        *domain.StreakState
	Radar         analytics.SkillRadar
	CEFR          analytics.CEFRReport
	Velocity      analytics.VelocityReport
	AttemptsToday int
	DueWords      int
	Achievements  []*domain.AchievementGrant
	Warnings      []string
}
