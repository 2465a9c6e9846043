// Package contract re-exports the application request/response types for
// consumers outside the service layer (the CLI and its tests).
package contract

import "github.com/ninaorlova/lingua/internal/app"

type RecordRequest = app.RecordRequest

type RecordResponse = app.RecordResponse

type RecordErrorCode = app.RecordErrorCode

const (
	RecordErrInvalidEvent RecordErrorCode = app.RecordErrInvalidEvent
	RecordErrStorage      RecordErrorCode = app.RecordErrStorage
)

type RecordError = app.RecordError

type VelocityRequest = app.VelocityRequest

type VelocityResponse = app.VelocityResponse

func NewVelocityRequest(userID string) VelocityRequest { return app.NewVelocityRequest(userID) }

type HeatmapRequest = app.HeatmapRequest

type HeatmapResponse = app.HeatmapResponse

func NewHeatmapRequest(userID string) HeatmapRequest { return app.NewHeatmapRequest(userID) }

type SkillsRequest = app.SkillsRequest

type SkillsResponse = app.SkillsResponse

type ProjectionRequest = app.ProjectionRequest

type ProjectionResponse = app.ProjectionResponse

type MistakesRequest = app.MistakesRequest

type StatusResponse = app.StatusResponse

type AnalyticsErrorCode = app.AnalyticsErrorCode

const (
	AnalyticsErrInvalidUser   AnalyticsErrorCode = app.AnalyticsErrInvalidUser
	AnalyticsErrInvalidWindow AnalyticsErrorCode = app.AnalyticsErrInvalidWindow
	AnalyticsErrInvalidTarget AnalyticsErrorCode = app.AnalyticsErrInvalidTarget
	AnalyticsErrStorage       AnalyticsErrorCode = app.AnalyticsErrStorage
)

type AnalyticsError = app.AnalyticsError

type RecommendRequest = app.RecommendRequest

type RecommendResponse = app.RecommendResponse

func NewRecommendRequest(userID string) RecommendRequest { return app.NewRecommendRequest(userID) }

type RecommendErrorCode = app.RecommendErrorCode

const (
	RecommendErrInvalidUser RecommendErrorCode = app.RecommendErrInvalidUser
	RecommendErrStorage     RecommendErrorCode = app.RecommendErrStorage
	RecommendErrInternal    RecommendErrorCode = app.RecommendErrInternal
)

type RecommendError = app.RecommendError
