package app

import (
	"context"
	"time"

	"github.com/ninaorlova/lingua/internal/classifier"
	"github.com/ninaorlova/lingua/internal/domain"
)

type RecordEventUseCase interface {
	Record(ctx context.Context, req RecordRequest) (*RecordResponse, error)
}

type ClassifyUseCase interface {
	Classify(original, corrected, explanation string) classifier.Classification
	Summarize(ctx context.Context, req MistakesRequest) (*classifier.Summary, error)
}

type AnalyticsUseCase interface {
	Velocity(ctx context.Context, req VelocityRequest) (*VelocityResponse, error)
	Heatmap(ctx context.Context, req HeatmapRequest) (*HeatmapResponse, error)
	Skills(ctx context.Context, req SkillsRequest) (*SkillsResponse, error)
	Projection(ctx context.Context, req ProjectionRequest) (*ProjectionResponse, error)
	Status(ctx context.Context, userID string) (*StatusResponse, error)
}

type StreakUseCase interface {
	Snapshot(ctx context.Context, userID string) (*domain.StreakState, error)
	OnActivity(ctx context.Context, userID string, at time.Time) (*domain.StreakState, error)
}

type AchievementUseCase interface {
	Evaluate(ctx context.Context, userID string) ([]string, error)
	List(ctx context.Context, userID string) ([]*domain.AchievementGrant, error)
}

type RecommendUseCase interface {
	Build(ctx context.Context, req RecommendRequest) (*RecommendResponse, error)
	Dismiss(ctx context.Context, userID string, kind domain.RecommendationKind) error
}
