package service

import (
	"context"
	"time"

	"github.com/ninaorlova/lingua/internal/classifier"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
)

type EventService interface {
	Record(ctx context.Context, req contract.RecordRequest) (*contract.RecordResponse, error)
	// ReplayDerivedState rebuilds streak, achievement, vocabulary, and
	// skill materializations from the event log alone.
	ReplayDerivedState(ctx context.Context, userID string) (*ReplayResult, error)
}

// ReplayResult summarizes a derived-state rebuild.
type ReplayResult struct {
	EventsReplayed  int
	SkippedCorrupt  int
	Streak          *domain.StreakState
	AchievementKeys []string
}

type ClassifierService interface {
	Classify(original, corrected, explanation string) classifier.Classification
	ClassifyBatch(pairs []ClassifyPair) []classifier.Classification
	Summarize(ctx context.Context, req contract.MistakesRequest) (*classifier.Summary, error)
}

// ClassifyPair is one raw mistake for batch classification.
type ClassifyPair struct {
	Original    string
	Corrected   string
	Explanation string
}

type AnalyticsService interface {
	Velocity(ctx context.Context, req contract.VelocityRequest) (*contract.VelocityResponse, error)
	Heatmap(ctx context.Context, req contract.HeatmapRequest) (*contract.HeatmapResponse, error)
	Skills(ctx context.Context, req contract.SkillsRequest) (*contract.SkillsResponse, error)
	Projection(ctx context.Context, req contract.ProjectionRequest) (*contract.ProjectionResponse, error)
	Status(ctx context.Context, userID string) (*contract.StatusResponse, error)
}

type StreakService interface {
	Snapshot(ctx context.Context, userID string) (*domain.StreakState, error)
	OnActivity(ctx context.Context, userID string, at time.Time) (*domain.StreakState, error)
}

type AchievementService interface {
	Evaluate(ctx context.Context, userID string) ([]string, error)
	List(ctx context.Context, userID string) ([]*domain.AchievementGrant, error)
}

type RecommendService interface {
	Build(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error)
	Dismiss(ctx context.Context, userID string, kind domain.RecommendationKind) error
}
