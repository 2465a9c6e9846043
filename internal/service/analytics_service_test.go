package service

import (
	"context"
	"testing"
	"time"

	"github.com/ninaorlova/lingua/internal/app"
	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocity_ImprovingScores(t *testing.T) {
	env := newTestEnv(t)
	for i, score := range []float64{60, 60, 60, 70, 70, 70} {
		record(t, env, testutil.NewExerciseEvent("u1", score, day(1+i)))
	}

	now := day(10)
	req := contract.NewVelocityRequest("u1")
	req.Now = &now
	resp, err := env.analytics.Velocity(context.Background(), req)
	require.NoError(t, err)

	// Half-over-half delta of 10 points over a 30-day window.
	assert.InDelta(t, 10.0/30*7, resp.Report.PointsPerWeek, 1e-9)
	assert.Equal(t, domain.TrendImproving, resp.Report.Trend)
	assert.Equal(t, 6, resp.Report.SampleCount)
}

func TestVelocity_NoHistoryIsInsufficientData(t *testing.T) {
	env := newTestEnv(t)

	now := day(10)
	req := contract.NewVelocityRequest("u1")
	req.Now = &now
	resp, err := env.analytics.Velocity(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.TrendInsufficientData, resp.Report.Trend)
	assert.Zero(t, resp.Report.SampleCount)
}

func TestHeatmap_CountsPracticeDays(t *testing.T) {
	env := newTestEnv(t)
	record(t, env, testutil.NewExerciseEvent("u1", 70, day(2)))
	record(t, env, testutil.NewExerciseEvent("u1", 80, day(3)))
	record(t, env, testutil.NewExerciseEvent("u1", 90, day(3).Add(time.Hour)))
	record(t, env, testutil.NewExerciseEvent("u1", 60, day(9)))

	now := day(10)
	req := contract.NewHeatmapRequest("u1")
	req.Now = &now
	resp, err := env.analytics.Heatmap(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 90, resp.Heatmap.WindowDays)
	assert.Len(t, resp.Heatmap.Days, 90)
	assert.Equal(t, 3, resp.Heatmap.PracticeDays)
	assert.Equal(t, 2, resp.Heatmap.LongestStreak)
}

func TestSkills_PlacesMaterializedScoresOnRadar(t *testing.T) {
	env := newTestEnv(t)
	record(t, env, testutil.NewExerciseEvent("u1", 80, day(2)))
	record(t, env, testutil.NewExerciseEvent("u1", 90, day(3), testutil.WithExerciseType(domain.ExerciseVocabulary)))

	resp, err := env.analytics.Skills(context.Background(), contract.SkillsRequest{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, 80.0, resp.Radar.Scores[domain.SkillGrammar])
	assert.Equal(t, 90.0, resp.Radar.Scores[domain.SkillVocabulary])
	assert.Equal(t, domain.SkillVocabulary, resp.Radar.Strongest)

	// Two strong axes against four empty ones: the placement stays low and
	// both scored skills read as outliers above it.
	above := make([]domain.SkillType, 0, 2)
	for _, o := range resp.CEFR.Outliers {
		if o.Status == "above_level" {
			above = append(above, o.Skill)
		}
	}
	assert.Contains(t, above, domain.SkillGrammar)
	assert.Contains(t, above, domain.SkillVocabulary)
}

func TestProjection_RejectsOutOfRangeTarget(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []float64{0, -5, 150} {
		_, err := env.analytics.Projection(context.Background(), contract.ProjectionRequest{
			UserID:      "u1",
			TargetScore: target,
		})
		var anErr *app.AnalyticsError
		require.ErrorAs(t, err, &anErr)
		assert.Equal(t, app.AnalyticsErrInvalidTarget, anErr.Code)
	}
}

func TestProjection_ImprovingUserGetsTimeline(t *testing.T) {
	env := newTestEnv(t)
	for i, score := range []float64{60, 60, 60, 70, 70, 70} {
		record(t, env, testutil.NewExerciseEvent("u1", score, day(4+i)))
	}

	now := day(10)
	resp, err := env.analytics.Projection(context.Background(), contract.ProjectionRequest{
		UserID:      "u1",
		TargetScore: 40,
		Now:         &now,
	})
	require.NoError(t, err)

	proj := resp.Projection
	assert.True(t, proj.Achievable)
	assert.False(t, proj.AlreadyReached)
	assert.Positive(t, proj.Weeks)
	assert.True(t, proj.ETA.After(now))
	assert.GreaterOrEqual(t, proj.Confidence, 10)
	assert.LessOrEqual(t, proj.Confidence, 95)
	assert.Len(t, proj.Milestones, 4)
}

func TestStatus_CombinesDashboardView(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()
	record(t, env, testutil.NewExerciseEvent("u1", 85, now.Add(-2*time.Second)))
	due := now.Add(-time.Minute)
	record(t, env, testutil.NewVocabularyEvent("u1", "meticulous", 50, now.Add(-time.Second), &due))

	resp, err := env.analytics.Status(context.Background(), "u1")
	require.NoError(t, err)

	require.NotNil(t, resp.Streak)
	assert.Equal(t, 1, resp.Streak.CurrentStreak)
	assert.Equal(t, 1, resp.AttemptsToday)
	assert.Equal(t, 1, resp.DueWords)
	assert.NotEmpty(t, resp.Achievements)
	assert.NotEmpty(t, resp.CEFR.Level)
}

func TestAnalytics_RequireUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.analytics.Velocity(ctx, contract.VelocityRequest{})
	assert.Error(t, err)
	_, err = env.analytics.Heatmap(ctx, contract.HeatmapRequest{})
	assert.Error(t, err)
	_, err = env.analytics.Skills(ctx, contract.SkillsRequest{})
	assert.Error(t, err)
	_, err = env.analytics.Status(ctx, "")
	assert.Error(t, err)
}
