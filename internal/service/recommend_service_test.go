package service

import (
	"context"
	"testing"
	"time"

	"github.com/ninaorlova/lingua/internal/contract"
	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/ninaorlova/lingua/internal/repository"
	"github.com/ninaorlova/lingua/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAt(t *testing.T, env *testEnv, userID string, now time.Time) *contract.RecommendResponse {
	t.Helper()
	req := contract.NewRecommendRequest(userID)
	req.Now = &now
	resp, err := env.recommends.Build(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func TestBuild_EmptyUserGetsFallback(t *testing.T) {
	env := newTestEnv(t)

	resp := buildAt(t, env, "u1", day(10))

	assert.True(t, resp.Fallback)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, "free_choice", resp.Priority.Action)
	assert.False(t, resp.Aborted)
}

func TestBuild_LowScoresRaiseRecovery(t *testing.T) {
	env := newTestEnv(t)
	for i, score := range []float64{30, 20, 35, 40, 30} {
		record(t, env, testutil.NewExerciseEvent("u1", score, day(9).Add(time.Duration(i)*time.Hour)))
	}

	resp := buildAt(t, env, "u1", day(10))

	require.NotEmpty(t, resp.Recommendations)
	assert.Equal(t, domain.RecRecovery, resp.Recommendations[0].Kind)
	assert.Equal(t, domain.PriorityCritical, resp.Recommendations[0].Priority)
}

func TestBuild_DismissalSuppressesForSevenDays(t *testing.T) {
	env := newTestEnv(t)
	// Dismissals are stamped with wall-clock time, so this test anchors
	// its build instants to the clock as well.
	now := time.Now().UTC()
	for i, score := range []float64{30, 20, 35, 40, 30} {
		record(t, env, testutil.NewExerciseEvent("u1", score, now.Add(time.Duration(-5+i)*time.Hour)))
	}

	ctx := context.Background()
	require.NoError(t, env.recommends.Dismiss(ctx, "u1", domain.RecRecovery))

	// Within the suppression window the kind is gone.
	resp := buildAt(t, env, "u1", now)
	for _, r := range resp.Recommendations {
		assert.NotEqual(t, domain.RecRecovery, r.Kind)
	}

	// Dismissals expire: the same state far enough in the future
	// surfaces the kind again. Attempts must stay in the window, so we
	// only move past the dismissal, not past the attempts.
	later := now.AddDate(0, 0, env.cfg.DismissalSuppressionDays+1)
	resp = buildAt(t, env, "u1", later)
	kinds := make([]domain.RecommendationKind, 0, len(resp.Recommendations))
	for _, r := range resp.Recommendations {
		kinds = append(kinds, r.Kind)
	}
	assert.Contains(t, kinds, domain.RecRecovery)
}

func TestBuild_ReviewReminderFromDueWords(t *testing.T) {
	env := newTestEnv(t)
	due := day(8)
	record(t, env, testutil.NewVocabularyEvent("u1", "meticulous", 50, day(2), &due))

	resp := buildAt(t, env, "u1", day(10))

	kinds := make([]domain.RecommendationKind, 0, len(resp.Recommendations))
	for _, r := range resp.Recommendations {
		kinds = append(kinds, r.Kind)
	}
	assert.Contains(t, kinds, domain.RecReviewReminder)
}

func TestBuild_MinNotifyPriorityGatesPick(t *testing.T) {
	env := newTestEnv(t)
	due := day(8)
	record(t, env, testutil.NewVocabularyEvent("u1", "meticulous", 50, day(2), &due))

	// Default threshold (MEDIUM): the practice-gap nudge is the pick.
	resp := buildAt(t, env, "u1", day(10))
	require.NotEmpty(t, resp.Recommendations)
	assert.False(t, resp.Fallback)
	assert.Equal(t, domain.RecPracticeFocus, resp.Priority.Kind)
	assert.Equal(t, domain.PriorityHigh, resp.Priority.Priority)

	// Raising the threshold above every candidate keeps the list but
	// drops the pick to free choice.
	strict := env.cfg
	strict.MinNotifyPriority = domain.PriorityCritical
	recommends := NewRecommendService(
		repository.NewSQLiteEventRepo(env.db),
		repository.NewSQLiteSkillScoreRepo(env.db),
		repository.NewSQLiteVocabularyRepo(env.db),
		repository.NewSQLiteStreakRepo(env.db),
		repository.NewSQLiteDismissalRepo(env.db),
		strict,
	)

	now := day(10)
	req := contract.NewRecommendRequest("u1")
	req.Now = &now
	strictResp, err := recommends.Build(context.Background(), req)
	require.NoError(t, err)

	require.NotEmpty(t, strictResp.Recommendations)
	assert.True(t, strictResp.Fallback)
	assert.Equal(t, "free_choice", strictResp.Priority.Action)
}

// timedOutEventRepo simulates an event log whose every scan hits the
// query bound.
type timedOutEventRepo struct{}

func (timedOutEventRepo) Append(context.Context, *domain.Event) error { return nil }
func (timedOutEventRepo) Query(context.Context, string, repository.EventQuery) (*repository.EventPage, error) {
	return &repository.EventPage{TimedOut: true}, nil
}
func (timedOutEventRepo) CountByKind(context.Context, string, domain.EventKind) (int, error) {
	return 0, nil
}

func TestBuild_TimedOutQuerySurfacesAsWarning(t *testing.T) {
	env := newTestEnv(t)
	recommends := NewRecommendService(
		timedOutEventRepo{},
		repository.NewSQLiteSkillScoreRepo(env.db),
		repository.NewSQLiteVocabularyRepo(env.db),
		repository.NewSQLiteStreakRepo(env.db),
		repository.NewSQLiteDismissalRepo(env.db),
		env.cfg,
	)

	now := day(10)
	req := contract.NewRecommendRequest("u1")
	req.Now = &now
	resp, err := recommends.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, resp.Warnings, "event query timed out; results are partial")
}

func TestBuild_CancelledContextReturnsPartialResult(t *testing.T) {
	env := newTestEnv(t)
	record(t, env, testutil.NewExerciseEvent("u1", 70, day(2)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	now := day(10)
	req := contract.NewRecommendRequest("u1")
	req.Now = &now
	resp, err := env.recommends.Build(ctx, req)

	require.NoError(t, err)
	assert.True(t, resp.Aborted)
}

func TestBuild_InvalidUserRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.recommends.Build(context.Background(), contract.RecommendRequest{})
	assert.Error(t, err)
}

func TestDismiss_RequiresKind(t *testing.T) {
	env := newTestEnv(t)

	assert.Error(t, env.recommends.Dismiss(context.Background(), "u1", ""))
	assert.Error(t, env.recommends.Dismiss(context.Background(), "", domain.RecRecovery))
}
